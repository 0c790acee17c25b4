package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Photographer is a studio photographer with an hourly rate.
type Photographer struct {
	Person
	ExperienceYears int             `json:"ExperienceYears"`
	Specialization  string          `json:"Specialization"`
	RatePerHour     decimal.Decimal `json:"RatePerHour"`
}

// NewPhotographer creates a photographer, rejecting a non-positive id and
// clamping negative experience and rate to zero.
func NewPhotographer(id int, name, phone, email string, experienceYears int, specialization string, ratePerHour decimal.Decimal) (*Photographer, error) {
	p := &Photographer{
		Person:          Person{ID: id, Name: name, Phone: phone, Email: email},
		ExperienceYears: experienceYears,
		Specialization:  specialization,
		RatePerHour:     ratePerHour,
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Normalize re-applies field clamps.
func (p *Photographer) Normalize() {
	p.ExperienceYears = clampInt(p.ExperienceYears)
	p.RatePerHour = clampDecimal(p.RatePerHour)
}

// Summary returns the display line for the photographer.
func (p *Photographer) Summary() string {
	return p.summary() + fmt.Sprintf(", experience: %d yr, specialization: %s, rate: %s/h",
		p.ExperienceYears, p.Specialization, p.RatePerHour.StringFixed(2))
}
