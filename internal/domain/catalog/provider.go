package catalog

import (
	"strings"

	"booking-flow/internal/pkg/money"
)

type ProviderAttrs struct {
	ID             int
	Name           string
	Title          string
	Image          string
	Rating         float64
	Reviews        int
	Experience     int
	Location       string
	Specialties    []string
	Available      bool
	Featured       bool
	NextAvailable  string
	// BasePriceCents is nil when the provider charges the default slot price.
	BasePriceCents *int64
	VenueImages    []string
}

// Provider is an immutable catalog entry.
type Provider struct {
	id            int
	name          string
	title         string
	image         string
	rating        float64
	reviews       int
	experience    int
	location      string
	specialties   []string
	available     bool
	featured      bool
	nextAvailable string
	basePrice     *money.Money
	venueImages   []string
}

func NewProvider(a ProviderAttrs) (*Provider, error) {
	if a.ID <= 0 {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(a.Name) == "" {
		return nil, ErrEmptyName
	}
	if err := validateRating(a.Rating); err != nil {
		return nil, err
	}

	p := &Provider{
		id:            a.ID,
		name:          strings.TrimSpace(a.Name),
		title:         a.Title,
		image:         a.Image,
		rating:        a.Rating,
		reviews:       a.Reviews,
		experience:    a.Experience,
		location:      a.Location,
		specialties:   append([]string(nil), a.Specialties...),
		available:     a.Available,
		featured:      a.Featured,
		nextAvailable: a.NextAvailable,
		venueImages:   append([]string(nil), a.VenueImages...),
	}
	if a.BasePriceCents != nil {
		base, err := money.NewNonNegative(*a.BasePriceCents)
		if err != nil {
			return nil, ErrNegativePrice
		}
		p.basePrice = &base
	}
	return p, nil
}

// BasePrice reports the provider's base price and whether one is set.
func (p *Provider) BasePrice() (money.Money, bool) {
	if p.basePrice == nil {
		return money.Money{}, false
	}
	return *p.basePrice, true
}

func (p *Provider) ID() int               { return p.id }
func (p *Provider) Name() string          { return p.name }
func (p *Provider) Title() string         { return p.title }
func (p *Provider) Image() string         { return p.image }
func (p *Provider) Rating() float64       { return p.rating }
func (p *Provider) Reviews() int          { return p.reviews }
func (p *Provider) Experience() int       { return p.experience }
func (p *Provider) Location() string      { return p.location }
func (p *Provider) Specialties() []string { return append([]string(nil), p.specialties...) }
func (p *Provider) Available() bool       { return p.available }
func (p *Provider) Featured() bool        { return p.featured }
func (p *Provider) NextAvailable() string { return p.nextAvailable }
func (p *Provider) VenueImages() []string { return append([]string(nil), p.venueImages...) }
