package source

import (
	"context"

	"github.com/freejk/campscope/pkg/records"
)

// FixtureCampaignName is the campaign the built-in sample data belongs
// to, used as the default active campaign when none is configured.
const FixtureCampaignName = "Free Jimmy Kimmel"

// FixtureSource serves built-in sample data, used when no spreadsheet
// is configured. Handy for demos and for exercising the pipeline
// offline.
type FixtureSource struct{}

func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

func (s *FixtureSource) Campaigns(ctx context.Context) ([]records.Campaign, error) {
	out := make([]records.Campaign, len(fixtureCampaigns))
	copy(out, fixtureCampaigns)
	return out, nil
}

func (s *FixtureSource) Records(ctx context.Context) ([]records.Record, error) {
	out := make([]records.Record, len(fixtureRecords))
	copy(out, fixtureRecords)
	return out, nil
}

var fixtureCampaigns = []records.Campaign{
	{
		Name:            FixtureCampaignName,
		DescriptionHTML: "A campaign to support organizations that provide resources and aid.",
		ContactTemplate: `Subject: Partnership Inquiry - {company_name}

Dear {company_name} Team,

I hope this message finds you well. I'm reaching out regarding a potential partnership opportunity with your organization.

We are particularly interested in collaborating with {company_name} to support community initiatives in the {market} area. Your work in this field aligns perfectly with our mission.

I would love to schedule a brief conversation to discuss how we might work together. Would you be available for a 15-20 minute call in the coming week?

You can reach me at the contact information below, or feel free to reach out directly to {contact_email} or {contact_phone}.

Looking forward to connecting with you soon.

Best regards,
[Your Name]
[Your Title]
[Your Organization]`,
	},
}

var fixtureRecords = []records.Record{
	{
		Campaign:          FixtureCampaignName,
		CompanyName:       "Community Resource Center",
		Market:            "Downtown",
		URL:               "example.com/resource-center",
		ContactEmail:      "info@resourcecenter.org",
		ContactPhone:      "(555) 123-4567",
		ContactURL:        "https://example.com/resource-center/contact",
		ObservedOn:        "2024-01-15",
		ObservedSourceURL: "https://news.example.com/community-resource-story",
		Identifier:        "free-jimmy-kimmel-downtown-community-resource-center",
		Enabled:           "true",
	},
	{
		Campaign:          FixtureCampaignName,
		CompanyName:       "Legal Aid Society",
		Market:            "Midtown",
		URL:               "legalaid-example.org",
		ContactEmail:      "help@legalaid.org",
		ContactPhone:      "(555) 234-5678",
		ContactURL:        "https://legalaid-example.org/contact",
		ObservedOn:        "2024-01-10",
		ObservedSourceURL: "https://blog.example.com/legal-aid-coverage",
		Identifier:        "free-jimmy-kimmel-midtown-legal-aid-society",
		Enabled:           "true",
	},
	{
		Campaign:     FixtureCampaignName,
		CompanyName:  "Food Bank Network",
		Market:       "Suburbs",
		URL:          "foodbank-network.org",
		ContactEmail: "contact@foodbank.org",
		ContactPhone: "(555) 345-6789",
		ContactURL:   "https://foodbank-network.org/contact",
		ObservedOn:   "2024-01-20",
		Enabled:      "true",
	},
	{
		Campaign:          FixtureCampaignName,
		CompanyName:       "Housing Authority",
		Market:            "Downtown",
		URL:               "housing-authority.gov",
		ContactEmail:      "housing@city.gov",
		ContactPhone:      "(555) 456-7890",
		ContactURL:        "https://housing-authority.gov/contact",
		ObservedOn:        "2024-01-12",
		ObservedSourceURL: "https://local.example.com/housing-news",
		Identifier:        "free-jimmy-kimmel-downtown-housing-authority",
		Enabled:           "true",
	},
	{
		// Stays out of every processed dataset; exercises the enabled filter.
		Campaign:     FixtureCampaignName,
		CompanyName:  "Disabled Test Company",
		Market:       "Downtown",
		URL:          "disabled-company.example.com",
		ContactEmail: "test@disabled.example.com",
		ContactPhone: "(555) 999-9999",
		ContactURL:   "https://disabled-company.example.com/contact",
		ObservedOn:   "2024-01-01",
		Identifier:   "free-jimmy-kimmel-downtown-disabled-test-company",
		Enabled:      "false",
	},
	{
		// No observed_on date; sorts after every dated record.
		Campaign:     FixtureCampaignName,
		CompanyName:  "ABC No Date Company",
		Market:       "Midtown",
		URL:          "abc-nodate.example.com",
		ContactEmail: "contact@abc-nodate.example.com",
		ContactPhone: "(555) 111-2222",
		ContactURL:   "https://abc-nodate.example.com/contact",
		Identifier:   "free-jimmy-kimmel-midtown-abc-no-date-company",
		Enabled:      "true",
	},
}
