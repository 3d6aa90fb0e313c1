package source

import (
	"context"
	"errors"
	"testing"

	"github.com/freejk/campscope/pkg/records"
)

type stubSource struct {
	campaigns    []records.Campaign
	recs         []records.Record
	campaignsErr error
	recordsErr   error
}

func (s *stubSource) Campaigns(ctx context.Context) ([]records.Campaign, error) {
	return s.campaigns, s.campaignsErr
}

func (s *stubSource) Records(ctx context.Context) ([]records.Record, error) {
	return s.recs, s.recordsErr
}

func TestLoaderLoad(t *testing.T) {
	src := &stubSource{
		campaigns: []records.Campaign{{Name: "X", ContactTemplate: "Hi {company_name}"}},
		recs: []records.Record{
			{Campaign: "X", CompanyName: "Acme", Market: "Downtown", Enabled: "true"},
			{Campaign: "X", CompanyName: "Off", Market: "Downtown", Enabled: "false"},
		},
	}

	dataset, err := (&Loader{Source: src, CampaignName: "X"}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if dataset.Campaign.Name != "X" {
		t.Fatalf("wrong active campaign: %+v", dataset.Campaign)
	}
	if len(dataset.Records) != 1 || dataset.Records[0].Identifier == "" {
		t.Fatalf("dataset not processed: %+v", dataset.Records)
	}
}

func TestLoaderJoinSemantics(t *testing.T) {
	sheetErr := errors.New("boom")

	tests := []struct {
		name string
		src  *stubSource
	}{
		{
			name: "campaigns fetch fails",
			src:  &stubSource{campaignsErr: sheetErr, recs: []records.Record{{Campaign: "X", Enabled: "true"}}},
		},
		{
			name: "records fetch fails",
			src:  &stubSource{campaigns: []records.Campaign{{Name: "X"}}, recordsErr: sheetErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataset, err := (&Loader{Source: tt.src, CampaignName: "X"}).Load(context.Background())
			if !errors.Is(err, sheetErr) {
				t.Fatalf("expected the fetch error to surface, got %v", err)
			}
			if dataset != nil {
				t.Fatal("no partial dataset may be returned on a failed load")
			}
		})
	}
}

func TestLoaderCampaignNotFound(t *testing.T) {
	src := &stubSource{
		campaigns: []records.Campaign{{Name: "Other"}},
		recs:      []records.Record{{Campaign: "X", CompanyName: "Acme", Enabled: "true"}},
	}

	_, err := (&Loader{Source: src, CampaignName: "X"}).Load(context.Background())
	var notFound *records.CampaignNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *CampaignNotFoundError, got %T: %v", err, err)
	}
	if notFound.Name != "X" {
		t.Fatalf("error should carry the campaign name, got %q", notFound.Name)
	}
}

func TestFixtureSource(t *testing.T) {
	src := NewFixtureSource()

	dataset, err := (&Loader{Source: src, CampaignName: FixtureCampaignName}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, r := range dataset.Records {
		if r.Enabled != "true" {
			t.Fatalf("disabled fixture record leaked: %+v", r)
		}
		if r.Identifier == "" {
			t.Fatalf("fixture record without identifier: %+v", r)
		}
	}

	if len(dataset.Markets) != 3 {
		t.Fatalf("expected 3 fixture markets, got %v", dataset.Markets)
	}

	// The undated fixture record sorts last.
	last := dataset.Records[len(dataset.Records)-1]
	if last.ObservedOn != "" {
		t.Fatalf("undated record should sort last, got %+v", last)
	}
}
