package source

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/freejk/campscope/internal/utils"
	"github.com/freejk/campscope/pkg/records"
)

// Loader runs one full load: both sheets fetched concurrently, the
// active campaign resolved, and the dataset processed. Either fetch
// failing aborts the whole load; there is no partial data.
type Loader struct {
	Source       DataSource
	CampaignName string
}

func (l *Loader) Load(ctx context.Context) (*records.Dataset, error) {
	var (
		campaigns []records.Campaign
		recs      []records.Record
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = l.Source.Campaigns(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recs, err = l.Source.Records(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	campaign, err := records.FindCampaign(campaigns, l.CampaignName)
	if err != nil {
		return nil, err
	}

	dataset := records.Process(recs, campaign)
	utils.Log.Debug("Loaded ", len(dataset.Records), " records, ", len(dataset.Markets), " markets for campaign ", campaign.Name)
	return dataset, nil
}
