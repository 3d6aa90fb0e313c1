package records

import (
	"errors"
	"testing"

	"github.com/freejk/campscope/pkg/gviz"
)

func textRow(values ...string) []gviz.Cell {
	row := make([]gviz.Cell, 0, len(values))
	for _, v := range values {
		if v == "" {
			row = append(row, gviz.Cell{Kind: gviz.CellEmpty})
			continue
		}
		row = append(row, gviz.Cell{Kind: gviz.CellText, Text: v})
	}
	return row
}

func dataTable(withIdentifier bool, rows ...[]gviz.Cell) *gviz.Table {
	t := &gviz.Table{Sheet: "data"}
	cols := DataColumns
	if withIdentifier {
		cols = append([]string{}, cols...)
		cols = append(cols, "identifier")
	}
	for _, c := range cols {
		t.Cols = append(t.Cols, gviz.Col{Label: c, Type: "string"})
	}
	t.Rows = rows
	return t
}

func TestRecordsFromTable(t *testing.T) {
	table := dataTable(false,
		textRow("X", "Acme, Inc.", "Downtown", "acme.com", "a@acme.com", "555-1111", "", "2024-01-15", "", "true"),
		textRow("", "Skipped Row", "Midtown", "", "", "", "", "", "", "true"),
		textRow("X", "Beta Org", "Midtown", "beta.org", "", "", "", "", "", "false"),
	)

	recs, err := RecordsFromTable(table)
	if err != nil {
		t.Fatalf("RecordsFromTable failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records (blank leading column skipped), got %d", len(recs))
	}
	if recs[0].CompanyName != "Acme, Inc." || recs[0].Market != "Downtown" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[0].Identifier != "" {
		t.Fatalf("identifier should be empty when the column is absent, got %q", recs[0].Identifier)
	}
	if recs[1].Enabled != "false" {
		t.Fatalf("builder must not filter by enabled, got %+v", recs[1])
	}
}

func TestRecordsFromTableOptionalIdentifier(t *testing.T) {
	table := dataTable(true,
		textRow("X", "Acme", "Downtown", "", "", "", "", "", "", "true", "custom-id"),
		textRow("X", "Beta", "Midtown", "", "", "", "", "", "", "true", ""),
	)

	recs, err := RecordsFromTable(table)
	if err != nil {
		t.Fatalf("RecordsFromTable failed: %v", err)
	}
	if recs[0].Identifier != "custom-id" {
		t.Fatalf("supplied identifier not kept: %q", recs[0].Identifier)
	}
	if recs[1].Identifier != "" {
		t.Fatalf("missing identifier cell should stay empty at build time, got %q", recs[1].Identifier)
	}
}

func TestRecordsFromTableMissingColumn(t *testing.T) {
	table := &gviz.Table{Sheet: "data"}
	for _, c := range []string{"campaign", "company_name"} { // no market etc.
		table.Cols = append(table.Cols, gviz.Col{Label: c, Type: "string"})
	}
	table.Rows = [][]gviz.Cell{textRow("X", "Acme")}

	recs, err := RecordsFromTable(table)
	if recs != nil {
		t.Fatalf("no records may be produced on a missing column, got %d", len(recs))
	}
	var missing *gviz.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingColumnError, got %T: %v", err, err)
	}
	if missing.Column != "market" {
		t.Fatalf("expected the error to name \"market\", got %q", missing.Column)
	}
}

func TestRecordsFromTableEmpty(t *testing.T) {
	table := dataTable(false,
		textRow("", "only blank rows", "", "", "", "", "", "", "", ""),
	)

	_, err := RecordsFromTable(table)
	var empty *EmptyDatasetError
	if !errors.As(err, &empty) {
		t.Fatalf("expected *EmptyDatasetError, got %T: %v", err, err)
	}
	if empty.Sheet != "data" {
		t.Fatalf("error should carry the sheet name, got %q", empty.Sheet)
	}
}

func TestCampaignsFromTableSortsByName(t *testing.T) {
	table := &gviz.Table{Sheet: "campaigns"}
	for _, c := range CampaignColumns {
		table.Cols = append(table.Cols, gviz.Col{Label: c, Type: "string"})
	}
	table.Rows = [][]gviz.Cell{
		textRow("Zeta", "<p>z</p>", ""),
		textRow("Alpha", "<p>a</p>", "Hello {company_name}"),
	}

	campaigns, err := CampaignsFromTable(table)
	if err != nil {
		t.Fatalf("CampaignsFromTable failed: %v", err)
	}
	if len(campaigns) != 2 || campaigns[0].Name != "Alpha" || campaigns[1].Name != "Zeta" {
		t.Fatalf("campaigns not sorted by name: %+v", campaigns)
	}
	if campaigns[0].ContactTemplate != "Hello {company_name}" {
		t.Fatalf("contact template not carried: %q", campaigns[0].ContactTemplate)
	}
}
