// Package records turns parsed sheet tables into the normalized,
// sorted, filterable outreach dataset.
package records

// DataColumns are the columns the data sheet must carry. The
// identifier column is optional and handled separately.
var DataColumns = []string{
	"campaign",
	"company_name",
	"market",
	"url",
	"contact_email",
	"contact_phone",
	"contact_url",
	"observed_on",
	"observed_source_url",
	"enabled",
}

// CampaignColumns are the columns the campaigns sheet must carry.
var CampaignColumns = []string{"name", "description_html", "contact_template"}

// Record is one normalized row of the data sheet.
type Record struct {
	Identifier        string `json:"identifier"`
	Campaign          string `json:"campaign"`
	CompanyName       string `json:"company_name"`
	Market            string `json:"market"`
	URL               string `json:"url"`
	ContactEmail      string `json:"contact_email"`
	ContactPhone      string `json:"contact_phone"`
	ContactURL        string `json:"contact_url"`
	ObservedOn        string `json:"observed_on"`
	ObservedSourceURL string `json:"observed_source_url"`
	Enabled           string `json:"enabled"`
}

// Field looks a record field up by its sheet column name. Unknown
// names resolve to the empty string, which is what template rendering
// relies on.
func (r Record) Field(name string) string {
	switch name {
	case "identifier":
		return r.Identifier
	case "campaign":
		return r.Campaign
	case "company_name":
		return r.CompanyName
	case "market":
		return r.Market
	case "url":
		return r.URL
	case "contact_email":
		return r.ContactEmail
	case "contact_phone":
		return r.ContactPhone
	case "contact_url":
		return r.ContactURL
	case "observed_on":
		return r.ObservedOn
	case "observed_source_url":
		return r.ObservedSourceURL
	case "enabled":
		return r.Enabled
	}
	return ""
}

// Campaign is one row of the campaigns sheet.
type Campaign struct {
	Name            string `json:"name"`
	DescriptionHTML string `json:"description_html"`
	ContactTemplate string `json:"contact_template"`
}

// FindCampaign selects the active campaign by exact name match.
func FindCampaign(campaigns []Campaign, name string) (Campaign, error) {
	for _, c := range campaigns {
		if c.Name == name {
			return c, nil
		}
	}
	return Campaign{}, &CampaignNotFoundError{Name: name}
}
