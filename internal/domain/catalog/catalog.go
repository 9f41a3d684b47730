package catalog

import "errors"

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrProviderNotFound = errors.New("provider not found")
)

// Catalog is a read-only lookup over the fixed service and provider lists.
type Catalog struct {
	services  []*Service
	providers []*Provider
}

func New(services []*Service, providers []*Provider) *Catalog {
	return &Catalog{
		services:  append([]*Service(nil), services...),
		providers: append([]*Provider(nil), providers...),
	}
}

func (c *Catalog) Services() []*Service {
	return append([]*Service(nil), c.services...)
}

func (c *Catalog) Providers() []*Provider {
	return append([]*Provider(nil), c.providers...)
}

func (c *Catalog) Service(id int) (*Service, error) {
	for _, s := range c.services {
		if s.id == id {
			return s, nil
		}
	}
	return nil, ErrServiceNotFound
}

func (c *Catalog) Provider(id int) (*Provider, error) {
	for _, p := range c.providers {
		if p.id == id {
			return p, nil
		}
	}
	return nil, ErrProviderNotFound
}
