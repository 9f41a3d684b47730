package queries

import (
	"context"

	"booking-flow/internal/domain/catalog"
)

type CatalogReadStore interface {
	Services() []*catalog.Service
	Providers() []*catalog.Provider
}

type CatalogQueries interface {
	ListServices(ctx context.Context) []*ServiceView
	ListProviders(ctx context.Context) []*ProviderView
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListServices(_ context.Context) []*ServiceView {
	services := q.store.Services()
	out := make([]*ServiceView, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceView(s))
	}
	return out
}

func (q *catalogQueriesImpl) ListProviders(_ context.Context) []*ProviderView {
	providers := q.store.Providers()
	out := make([]*ProviderView, 0, len(providers))
	for _, p := range providers {
		out = append(out, toProviderView(p))
	}
	return out
}
