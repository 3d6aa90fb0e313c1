package records

import (
	"sort"
	"strings"

	"github.com/freejk/campscope/pkg/gviz"
)

// RecordsFromTable builds data-sheet records from a parsed table.
// Rows whose leading column is blank after trimming are skipped
// entirely; they are the sheet's blank-row sentinel.
func RecordsFromTable(t *gviz.Table) ([]Record, error) {
	indices, err := t.ProjectColumns(DataColumns)
	if err != nil {
		return nil, err
	}
	idIdx := t.ColumnIndex("identifier")

	var out []Record
	for _, row := range t.Rows {
		if leadingColumnBlank(t, row) {
			continue
		}

		get := func(name string) string {
			return cellValue(t, row, indices[name])
		}

		rec := Record{
			Campaign:          get("campaign"),
			CompanyName:       get("company_name"),
			Market:            get("market"),
			URL:               get("url"),
			ContactEmail:      get("contact_email"),
			ContactPhone:      get("contact_phone"),
			ContactURL:        get("contact_url"),
			ObservedOn:        get("observed_on"),
			ObservedSourceURL: get("observed_source_url"),
			Enabled:           get("enabled"),
		}
		if idIdx >= 0 {
			rec.Identifier = cellValue(t, row, idIdx)
		}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, &EmptyDatasetError{Sheet: t.Sheet}
	}
	return out, nil
}

// CampaignsFromTable builds campaign entries from a parsed table,
// sorted by name.
func CampaignsFromTable(t *gviz.Table) ([]Campaign, error) {
	indices, err := t.ProjectColumns(CampaignColumns)
	if err != nil {
		return nil, err
	}

	var out []Campaign
	for _, row := range t.Rows {
		if leadingColumnBlank(t, row) {
			continue
		}
		out = append(out, Campaign{
			Name:            cellValue(t, row, indices["name"]),
			DescriptionHTML: cellValue(t, row, indices["description_html"]),
			ContactTemplate: cellValue(t, row, indices["contact_template"]),
		})
	}

	if len(out) == 0 {
		return nil, &EmptyDatasetError{Sheet: t.Sheet}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func cellValue(t *gviz.Table, row []gviz.Cell, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx].Normalize(t.Cols[idx].Type)
}

func leadingColumnBlank(t *gviz.Table, row []gviz.Cell) bool {
	if len(row) == 0 {
		return true
	}
	return strings.TrimSpace(cellValue(t, row, 0)) == ""
}
