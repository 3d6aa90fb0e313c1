package records

// ContactFilter selects records by contact status.
type ContactFilter string

const (
	ContactAny          ContactFilter = "any"
	ContactContacted    ContactFilter = "contacted"
	ContactNotContacted ContactFilter = "not-contacted"
)

// ValidContactFilter reports whether value names a known filter. The
// empty string means "any".
func ValidContactFilter(value string) bool {
	switch ContactFilter(value) {
	case "", ContactAny, ContactContacted, ContactNotContacted:
		return true
	}
	return false
}

// Filter returns the records of the active campaign matching the
// market selection (empty = all) and the contact-status predicate.
// The underlying dataset is never mutated; an empty result is a valid
// outcome, not an error.
func (d *Dataset) Filter(market string, status ContactFilter, isContacted func(identifier string) bool) []Record {
	out := []Record{}
	for _, r := range d.Records {
		if r.Campaign != d.Campaign.Name {
			continue
		}
		if market != "" && r.Market != market {
			continue
		}
		switch status {
		case ContactContacted:
			if isContacted == nil || !isContacted(r.Identifier) {
				continue
			}
		case ContactNotContacted:
			if isContacted != nil && isContacted(r.Identifier) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
