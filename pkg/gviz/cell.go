package gviz

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CellKind is the value type a cell carried on the wire.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellBool
)

// Cell is one raw cell. Formatted holds the optional display string
// the JSON transport attaches to date cells ("f" in the envelope).
type Cell struct {
	Kind      CellKind
	Text      string
	Number    float64
	Bool      bool
	Formatted string
}

// Sheets day-serials count days since 1899-12-30, which is 25569 days
// before the Unix epoch.
const serialEpochOffsetDays = 25569

var dateCtorRE = regexp.MustCompile(`Date\((\d+),(\d+),(\d+)\)`)

// Normalize converts a raw cell into canonical text. Date-typed
// columns go through the three-way date decoding first; everything is
// then run through the common text cleanup.
func (c Cell) Normalize(colType string) string {
	if colType == "date" {
		return CleanValue(c.dateText())
	}
	return CleanValue(c.text())
}

func (c Cell) text() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

func (c Cell) dateText() string {
	// A pre-formatted display string wins over the raw value.
	if c.Formatted != "" {
		return c.Formatted
	}

	if c.Kind == CellText && strings.HasPrefix(c.Text, "Date(") {
		if m := dateCtorRE.FindStringSubmatch(c.Text); m != nil {
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2]) // zero-based in the envelope
			day, _ := strconv.Atoi(m[3])
			return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		}
		return c.Text
	}

	if c.Kind == CellNumber {
		seconds := int64((c.Number - serialEpochOffsetDays) * 86400)
		return time.Unix(seconds, 0).UTC().Format("2006-01-02")
	}

	return c.text()
}

// CleanValue trims whitespace and folds the escaped and
// platform-specific newline spellings down to a single "\n".
func CleanValue(value string) string {
	if value == "" {
		return ""
	}

	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, `\n`, "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")

	return cleaned
}
