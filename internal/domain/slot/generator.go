package slot

import (
	"fmt"
	"time"

	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/pkg/money"
)

type GeneratorConfig struct {
	WindowDays           int
	OpenHour             int
	CloseHour            int
	IntervalMinutes      int
	PresenceProbability  float64
	AvailableProbability float64
	DefaultPrice         money.Money
	Location             *time.Location
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		WindowDays:           30,
		OpenHour:             9,
		CloseHour:            17,
		IntervalMinutes:      30,
		PresenceProbability:  0.7,
		AvailableProbability: 0.9,
		DefaultPrice:         money.New(7500),
		Location:             time.UTC,
	}
}

type Generator struct {
	cfg GeneratorConfig
	rnd RandSource
}

func NewGenerator(cfg GeneratorConfig, rnd RandSource) *Generator {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.IntervalMinutes <= 0 {
		cfg.IntervalMinutes = 30
	}
	return &Generator{cfg: cfg, rnd: rnd}
}

// Generate builds a fresh calendar for p covering WindowDays dates starting at
// the current date of now in the configured location.
func (g *Generator) Generate(p *catalog.Provider, now time.Time) *Calendar {
	price := g.cfg.DefaultPrice
	if base, ok := p.BasePrice(); ok {
		price = base
	}

	today := now.In(g.cfg.Location)
	dates := make([]DateKey, 0, g.cfg.WindowDays)
	days := make(map[DateKey][]TimeSlot, g.cfg.WindowDays)

	for i := 0; i < g.cfg.WindowDays; i++ {
		day := time.Date(today.Year(), today.Month(), today.Day()+i, 0, 0, 0, 0, g.cfg.Location)
		key := NewDateKey(day)
		dates = append(dates, key)

		var slots []TimeSlot
		for minutes := g.cfg.OpenHour * 60; minutes < g.cfg.CloseHour*60; minutes += g.cfg.IntervalMinutes {
			if g.rnd.Float64() >= g.cfg.PresenceProbability {
				continue
			}
			slots = append(slots, TimeSlot{
				time:      fmt.Sprintf("%02d:%02d", minutes/60, minutes%60),
				available: g.rnd.Float64() < g.cfg.AvailableProbability,
				price:     price,
			})
		}
		days[key] = slots
	}

	return NewCalendar(p.ID(), dates, days)
}

func (g *Generator) Location() *time.Location {
	return g.cfg.Location
}
