// Package gviz fetches sheet tabs from the Google Visualization API
// ("gviz") endpoint and parses the two transport encodings it speaks:
// plain CSV and the callback-padded tabular JSON envelope.
package gviz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/freejk/campscope/internal/utils"
)

const DefaultBaseURL = "https://docs.google.com/spreadsheets/d"

// Transport selects the wire encoding requested from the gviz endpoint.
type Transport string

const (
	TransportCSV  Transport = "csv"
	TransportJSON Transport = "json"
)

// Col is one column of a parsed table. Labels are lower-cased and
// trimmed at parse time so lookups are case-insensitive.
type Col struct {
	Label string
	Type  string
}

// Table is a parsed sheet tab, transport-independent.
type Table struct {
	Sheet string
	Cols  []Col
	Rows  [][]Cell
}

// ProjectColumns resolves each required column name to its physical
// index. A single missing column fails the whole sheet.
func (t *Table) ProjectColumns(names []string) (map[string]int, error) {
	indices := make(map[string]int, len(names))
	for _, name := range names {
		found := -1
		for i, col := range t.Cols {
			if col.Label == name {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, &MissingColumnError{Sheet: t.Sheet, Column: name}
		}
		indices[name] = found
	}
	return indices, nil
}

// ColumnIndex returns the physical index of an optional column, or -1
// when the sheet doesn't carry it.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Cols {
		if col.Label == name {
			return i
		}
	}
	return -1
}

// Client fetches sheet tabs for one spreadsheet.
type Client struct {
	SheetID string
	BaseURL string
	HTTP    *retryablehttp.Client
}

// NewClient builds a client for the given spreadsheet ID. Retries are
// off by default; the caller opts in via the retries knob.
func NewClient(sheetID string, timeout time.Duration, retries int) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = log.New(io.Discard, "", 0)
	rc.RetryMax = retries
	rc.HTTPClient.Timeout = timeout

	return &Client{
		SheetID: sheetID,
		BaseURL: DefaultBaseURL,
		HTTP:    rc,
	}
}

// FetchTable retrieves one named sheet tab over the chosen transport
// and parses it into a Table.
func (c *Client) FetchTable(ctx context.Context, sheet string, transport Transport) (*Table, error) {
	var endpoint string
	switch transport {
	case TransportCSV:
		endpoint = fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s", c.BaseURL, c.SheetID, url.QueryEscape(sheet))
	case TransportJSON:
		endpoint = fmt.Sprintf("%s/%s/gviz/tq?tqx=out:json&headers=1&sheet=%s", c.BaseURL, c.SheetID, url.QueryEscape(sheet))
	default:
		return nil, fmt.Errorf("unknown transport %q", transport)
	}

	utils.Log.Debug("Fetching sheet ", sheet, ": ", endpoint)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Sheet: sheet, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	switch transport {
	case TransportCSV:
		return ParseCSVTable(sheet, string(body))
	default:
		return ParseJSONTable(sheet, string(body))
	}
}

// ParseJSONTable strips the callback padding around the gviz JSON
// envelope and parses the {table: {cols, rows}} structure inside it.
func ParseJSONTable(sheet, body string) (*Table, error) {
	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end < start {
		return nil, &ParseError{Sheet: sheet, Err: errors.New("no JSON object found in response body")}
	}
	raw := body[start : end+1]

	if !gjson.Valid(raw) {
		return nil, &ParseError{Sheet: sheet, Err: errors.New("padded payload is not valid JSON")}
	}

	table := gjson.Parse(raw).Get("table")
	if !table.Exists() || !table.Get("rows").Exists() {
		return nil, &ParseError{Sheet: sheet, Err: errors.New("response has no table.rows")}
	}

	t := &Table{Sheet: sheet}
	for _, col := range table.Get("cols").Array() {
		label := strings.ToLower(strings.TrimSpace(col.Get("label").String()))
		typ := col.Get("type").String()
		if typ == "" {
			typ = "string"
		}
		t.Cols = append(t.Cols, Col{Label: label, Type: typ})
	}

	for _, row := range table.Get("rows").Array() {
		cells := row.Get("c").Array()
		if len(cells) == 0 {
			continue
		}
		parsed := make([]Cell, 0, len(cells))
		for _, cell := range cells {
			parsed = append(parsed, cellFromJSON(cell))
		}
		t.Rows = append(t.Rows, parsed)
	}

	utils.Log.Debug("Parsed sheet ", sheet, ": ", len(t.Rows), " rows, ", len(t.Cols), " columns")
	return t, nil
}

func cellFromJSON(cell gjson.Result) Cell {
	c := Cell{Formatted: cell.Get("f").String()}
	switch v := cell.Get("v"); v.Type {
	case gjson.String:
		c.Kind = CellText
		c.Text = v.Str
	case gjson.Number:
		c.Kind = CellNumber
		c.Number = v.Num
	case gjson.True:
		c.Kind = CellBool
		c.Bool = true
	case gjson.False:
		c.Kind = CellBool
	default:
		c.Kind = CellEmpty
	}
	return c
}
