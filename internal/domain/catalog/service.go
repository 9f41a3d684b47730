package catalog

import (
	"errors"
	"strings"

	"booking-flow/internal/pkg/money"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrInvalidID     = errors.New("id must be positive")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

type ServiceAttrs struct {
	ID            int
	Name          string
	Description   string
	Image         string
	PriceCents    int64
	OriginalCents *int64
	Duration      string
	Popular       bool
	Features      []string
	Rating        float64
	Reviews       int
	Bookings      int
}

// Service is an immutable catalog entry.
type Service struct {
	id            int
	name          string
	description   string
	image         string
	price         money.Money
	originalPrice *money.Money
	duration      string
	popular       bool
	features      []string
	rating        float64
	reviews       int
	bookings      int
}

func NewService(a ServiceAttrs) (*Service, error) {
	if a.ID <= 0 {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(a.Name) == "" {
		return nil, ErrEmptyName
	}
	price, err := money.NewNonNegative(a.PriceCents)
	if err != nil {
		return nil, ErrNegativePrice
	}
	if err := validateRating(a.Rating); err != nil {
		return nil, err
	}

	s := &Service{
		id:          a.ID,
		name:        strings.TrimSpace(a.Name),
		description: a.Description,
		image:       a.Image,
		price:       price,
		duration:    a.Duration,
		popular:     a.Popular,
		features:    append([]string(nil), a.Features...),
		rating:      a.Rating,
		reviews:     a.Reviews,
		bookings:    a.Bookings,
	}
	if a.OriginalCents != nil {
		orig, err := money.NewNonNegative(*a.OriginalCents)
		if err != nil {
			return nil, ErrNegativePrice
		}
		s.originalPrice = &orig
	}
	return s, nil
}

func validateRating(r float64) error {
	if r < 0 || r > 5 {
		return ErrInvalidRating
	}
	return nil
}

func (s *Service) ID() int                     { return s.id }
func (s *Service) Name() string                { return s.name }
func (s *Service) Description() string         { return s.description }
func (s *Service) Image() string               { return s.image }
func (s *Service) Price() money.Money          { return s.price }
func (s *Service) OriginalPrice() *money.Money { return s.originalPrice }
func (s *Service) Duration() string            { return s.duration }
func (s *Service) Popular() bool               { return s.popular }
func (s *Service) Features() []string          { return append([]string(nil), s.features...) }
func (s *Service) Rating() float64             { return s.rating }
func (s *Service) Reviews() int                { return s.reviews }
func (s *Service) Bookings() int               { return s.bookings }
