package records

import (
	"regexp"
	"strings"
)

var nonAlphanumericRE = regexp.MustCompile(`[^a-z0-9]+`)

// SlugIdentifier derives a stable slug from campaign, market, and
// company name. Deterministic and idempotent: slugging an existing
// slug is a no-op.
func SlugIdentifier(campaign, market, companyName string) string {
	joined := strings.ToLower(campaign + " " + market + " " + companyName)
	slug := nonAlphanumericRE.ReplaceAllString(joined, "-")
	return strings.Trim(slug, "-")
}

// AssignIdentifiers fills in a synthesized identifier for every record
// that doesn't already carry one.
func AssignIdentifiers(recs []Record) {
	for i := range recs {
		if recs[i].Identifier == "" {
			recs[i].Identifier = SlugIdentifier(recs[i].Campaign, recs[i].Market, recs[i].CompanyName)
		}
	}
}
