// Package source abstracts where the campaign directory comes from: a
// remote spreadsheet or the built-in fixture data.
package source

import (
	"context"

	"github.com/freejk/campscope/pkg/records"
)

// Sheet tab names on the remote spreadsheet.
const (
	CampaignsSheet = "campaigns"
	DataSheet      = "data"
)

// DataSource provides the two sheets of the directory. Implementations
// are selected by configuration, never by subclassing behavior.
type DataSource interface {
	Campaigns(ctx context.Context) ([]records.Campaign, error)
	Records(ctx context.Context) ([]records.Record, error)
}
