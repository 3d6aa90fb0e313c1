package records

import (
	"sort"
	"time"
)

// Dataset is the processed, canonical record list for one load.
type Dataset struct {
	Campaign Campaign
	Records  []Record // enabled records across all campaigns, sorted
	Markets  []string // distinct markets of the active campaign, sorted
}

// observedOnLayouts are the date spellings we accept when ordering
// records. The canonical form comes first.
var observedOnLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
}

func observedTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range observedOnLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Process filters to enabled records, fills in missing identifiers,
// derives the active campaign's market set, and sorts.
//
// A record is enabled iff its enabled cell normalized to exactly
// "true"; anything else excludes the row.
func Process(recs []Record, campaign Campaign) *Dataset {
	enabled := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.Enabled == "true" {
			enabled = append(enabled, r)
		}
	}

	AssignIdentifiers(enabled)

	marketSet := make(map[string]bool)
	for _, r := range enabled {
		if r.Market != "" && r.Campaign == campaign.Name {
			marketSet[r.Market] = true
		}
	}
	markets := make([]string, 0, len(marketSet))
	for m := range marketSet {
		markets = append(markets, m)
	}
	sort.Strings(markets)

	// Dated records first, most recent first; company name ascending
	// breaks ties and orders the undated tail.
	sort.SliceStable(enabled, func(i, j int) bool {
		ti, okI := observedTime(enabled[i].ObservedOn)
		tj, okJ := observedTime(enabled[j].ObservedOn)

		switch {
		case okI && okJ:
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
		case okI:
			return true
		case okJ:
			return false
		}
		return enabled[i].CompanyName < enabled[j].CompanyName
	})

	return &Dataset{Campaign: campaign, Records: enabled, Markets: markets}
}
