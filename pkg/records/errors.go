package records

import "fmt"

// CampaignNotFoundError reports that the configured campaign name has
// no row in the campaigns sheet.
type CampaignNotFoundError struct {
	Name string
}

func (e *CampaignNotFoundError) Error() string {
	return fmt.Sprintf("campaign %q not found in campaigns sheet", e.Name)
}

// EmptyDatasetError reports a sheet that parsed fine but yielded zero
// usable rows.
type EmptyDatasetError struct {
	Sheet string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no data found in sheet %q", e.Sheet)
}
