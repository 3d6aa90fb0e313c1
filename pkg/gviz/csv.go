package gviz

import (
	"errors"
	"strings"
)

// ParseCSVTable parses the CSV transport. The first non-blank line is
// the header row; every column is typed "string" since CSV carries no
// schema.
func ParseCSVTable(sheet, body string) (*Table, error) {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, &ParseError{Sheet: sheet, Err: errors.New("empty response body")}
	}

	t := &Table{Sheet: sheet}
	for _, h := range TokenizeCSVRow(lines[0]) {
		t.Cols = append(t.Cols, Col{Label: strings.ToLower(strings.TrimSpace(h)), Type: "string"})
	}

	for _, line := range lines[1:] {
		fields := TokenizeCSVRow(line)
		row := make([]Cell, 0, len(fields))
		for _, f := range fields {
			if f == "" {
				row = append(row, Cell{Kind: CellEmpty})
				continue
			}
			row = append(row, Cell{Kind: CellText, Text: f})
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// TokenizeCSVRow splits one line into fields. Commas inside quotes are
// not separators, surrounding quotes are unwrapped, and a doubled
// quote inside a quoted field resolves to a single quote character.
func TokenizeCSVRow(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++ // skip the escaping quote
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	result = append(result, current.String())
	return result
}
