package source

import (
	"context"

	"github.com/freejk/campscope/pkg/gviz"
	"github.com/freejk/campscope/pkg/records"
)

// RemoteSource reads both sheets from the gviz endpoint over the
// configured transport.
type RemoteSource struct {
	Client    *gviz.Client
	Transport gviz.Transport
}

func NewRemoteSource(client *gviz.Client, transport gviz.Transport) *RemoteSource {
	return &RemoteSource{Client: client, Transport: transport}
}

func (s *RemoteSource) Campaigns(ctx context.Context) ([]records.Campaign, error) {
	table, err := s.Client.FetchTable(ctx, CampaignsSheet, s.Transport)
	if err != nil {
		return nil, err
	}
	return records.CampaignsFromTable(table)
}

func (s *RemoteSource) Records(ctx context.Context) ([]records.Record, error) {
	table, err := s.Client.FetchTable(ctx, DataSheet, s.Transport)
	if err != nil {
		return nil, err
	}
	return records.RecordsFromTable(table)
}
