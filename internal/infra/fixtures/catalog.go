package fixtures

import (
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/pkg/ptr"
)

var serviceAttrs = []catalog.ServiceAttrs{
	{
		ID:            1,
		Name:          "Deep Tissue Massage",
		Description:   "Therapeutic massage targeting deep muscle layers to relieve chronic tension and pain. Perfect for athletes and those with muscle knots.",
		Image:         "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=400",
		PriceCents:    12000,
		OriginalCents: ptr.Of(int64(15000)),
		Duration:      "90 minutes",
		Popular:       true,
		Features:      []string{"Deep muscle work", "Pain relief", "Stress reduction", "Improved circulation"},
		Rating:        4.8,
		Reviews:       234,
		Bookings:      1250,
	},
	{
		ID:          2,
		Name:        "Swedish Relaxation Massage",
		Description: "Gentle, flowing massage techniques designed to promote relaxation and improve circulation. Ideal for stress relief and general wellness.",
		Image:       "https://images.unsplash.com/photo-1515377905703-c4788e51af15?w=400",
		PriceCents:  8500,
		Duration:    "60 minutes",
		Features:    []string{"Relaxation", "Stress relief", "Gentle pressure", "Full body"},
		Rating:      4.7,
		Reviews:     189,
		Bookings:    890,
	},
	{
		ID:          3,
		Name:        "Hot Stone Therapy",
		Description: "Luxurious treatment using heated stones to melt away tension and promote deep relaxation. Combines heat therapy with massage.",
		Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
		PriceCents:  14000,
		Duration:    "75 minutes",
		Features:    []string{"Hot stone therapy", "Deep relaxation", "Muscle tension relief", "Luxury experience"},
		Rating:      4.9,
		Reviews:     156,
		Bookings:    567,
	},
	{
		ID:          4,
		Name:        "Prenatal Massage",
		Description: "Specialized massage for expecting mothers, focusing on comfort and safety. Helps reduce pregnancy-related discomfort.",
		Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400",
		PriceCents:  9500,
		Duration:    "60 minutes",
		Features:    []string{"Pregnancy safe", "Comfort focused", "Reduces swelling", "Stress relief"},
		Rating:      4.8,
		Reviews:     98,
		Bookings:    345,
	},
	{
		ID:          5,
		Name:        "Sports Massage",
		Description: "Performance-focused massage for athletes and active individuals. Helps prevent injuries and improve recovery time.",
		Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
		PriceCents:  11000,
		Duration:    "75 minutes",
		Features:    []string{"Athletic performance", "Injury prevention", "Recovery focused", "Flexibility improvement"},
		Rating:      4.7,
		Reviews:     167,
		Bookings:    678,
	},
	{
		ID:          6,
		Name:        "Couples Massage",
		Description: "Romantic massage experience for two people in the same room. Perfect for special occasions and bonding.",
		Image:       "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=400",
		PriceCents:  22000,
		Duration:    "60 minutes",
		Features:    []string{"Side by side", "Romantic atmosphere", "Shared experience", "Special occasion"},
		Rating:      4.9,
		Reviews:     89,
		Bookings:    234,
	},
}

var providerAttrs = []catalog.ProviderAttrs{
	{
		ID:             1,
		Name:           "Sarah Johnson",
		Title:          "Licensed Massage Therapist",
		Image:          "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400",
		Rating:         4.9,
		Reviews:        245,
		Experience:     8,
		Location:       "Downtown Spa Center",
		Specialties:    []string{"Deep Tissue", "Swedish", "Hot Stone"},
		Available:      true,
		Featured:       true,
		NextAvailable:  "Today 2:00 PM",
		BasePriceCents: ptr.Of(int64(12000)),
		VenueImages: []string{
			"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			"https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=400",
			"https://images.unsplash.com/photo-1515377905703-c4788e51af15?w=400",
		},
	},
	{
		ID:             2,
		Name:           "Michael Chen",
		Title:          "Sports Massage Specialist",
		Image:          "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
		Rating:         4.8,
		Reviews:        189,
		Experience:     6,
		Location:       "Athletic Recovery Center",
		Specialties:    []string{"Sports Massage", "Deep Tissue", "Injury Recovery"},
		Available:      true,
		NextAvailable:  "Tomorrow 9:00 AM",
		BasePriceCents: ptr.Of(int64(11000)),
		VenueImages: []string{
			"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			"https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=400",
		},
	},
	{
		ID:             3,
		Name:           "Emma Rodriguez",
		Title:          "Prenatal & Wellness Specialist",
		Image:          "https://images.unsplash.com/photo-1594824804732-ca8db7d1e3d8?w=400",
		Rating:         4.9,
		Reviews:        156,
		Experience:     10,
		Location:       "Wellness Sanctuary",
		Specialties:    []string{"Prenatal", "Swedish", "Aromatherapy"},
		Available:      false,
		Featured:       true,
		NextAvailable:  "Jan 3, 10:00 AM",
		BasePriceCents: ptr.Of(int64(9500)),
		VenueImages: []string{
			"https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400",
			"https://images.unsplash.com/photo-1515377905703-c4788e51af15?w=400",
		},
	},
	{
		ID:             4,
		Name:           "David Kim",
		Title:          "Therapeutic Massage Expert",
		Image:          "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400",
		Rating:         4.7,
		Reviews:        198,
		Experience:     12,
		Location:       "Healing Hands Clinic",
		Specialties:    []string{"Therapeutic", "Hot Stone", "Reflexology"},
		Available:      true,
		NextAvailable:  "Today 4:30 PM",
		BasePriceCents: ptr.Of(int64(13000)),
		VenueImages: []string{
			"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
		},
	},
}

// NewCatalog builds the static massage catalog served by the API.
func NewCatalog() (*catalog.Catalog, error) {
	services := make([]*catalog.Service, 0, len(serviceAttrs))
	for _, a := range serviceAttrs {
		s, err := catalog.NewService(a)
		if err != nil {
			return nil, errs.Wrap(err, "invalid service fixture")
		}
		services = append(services, s)
	}

	providers := make([]*catalog.Provider, 0, len(providerAttrs))
	for _, a := range providerAttrs {
		p, err := catalog.NewProvider(a)
		if err != nil {
			return nil, errs.Wrap(err, "invalid provider fixture")
		}
		providers = append(providers, p)
	}

	return catalog.New(services, providers), nil
}
