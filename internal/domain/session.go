package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PhotoSession is a scheduled shoot. Client, Photographer and the
// equipment list are embedded copies keyed by id; the session does not
// own their lifecycle, and TotalPrice is stored as computed at creation
// time rather than derived on read.
type PhotoSession struct {
	ID              int             `json:"Id"`
	Client          Client          `json:"Client"`
	Photographer    Photographer    `json:"Photographer"`
	UsedEquipment   []Equipment     `json:"UsedEquipment"`
	Date            time.Time       `json:"Date"`
	DurationMinutes int             `json:"DurationMinutes"`
	Location        string          `json:"Location"`
	TotalPrice      decimal.Decimal `json:"TotalPrice"`
}

// EntityID implements Identifiable.
func (s PhotoSession) EntityID() int { return s.ID }

// NewPhotoSession assembles a session from already-resolved entities,
// rejecting a non-positive id and clamping negative duration and price
// to zero.
func NewPhotoSession(id int, client Client, photographer Photographer, usedEquipment []Equipment,
	date time.Time, durationMinutes int, location string, totalPrice decimal.Decimal) (*PhotoSession, error) {
	s := &PhotoSession{
		ID:              id,
		Client:          client,
		Photographer:    photographer,
		UsedEquipment:   usedEquipment,
		Date:            date,
		DurationMinutes: durationMinutes,
		Location:        location,
		TotalPrice:      totalPrice,
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the session id and the ids of the embedded entities.
func (s *PhotoSession) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("session: %w (got %d)", ErrInvalidID, s.ID)
	}
	if err := s.Client.Validate(); err != nil {
		return fmt.Errorf("session %d: %w", s.ID, err)
	}
	if err := s.Photographer.Validate(); err != nil {
		return fmt.Errorf("session %d: %w", s.ID, err)
	}
	for _, e := range s.UsedEquipment {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("session %d: %w", s.ID, err)
		}
	}
	return nil
}

// Normalize re-applies field clamps on the session and its embedded
// entities.
func (s *PhotoSession) Normalize() {
	if s.UsedEquipment == nil {
		s.UsedEquipment = []Equipment{}
	}
	s.DurationMinutes = clampInt(s.DurationMinutes)
	s.TotalPrice = clampDecimal(s.TotalPrice)
	s.Client.Normalize()
	s.Photographer.Normalize()
	for i := range s.UsedEquipment {
		s.UsedEquipment[i].Normalize()
	}
}

// Summary returns a multi-line display block for the session.
func (s *PhotoSession) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session [%d]\n", s.ID)
	fmt.Fprintf(&b, "  Date: %s, duration: %d min, location: %s\n",
		s.Date.Format("2006-01-02 15:04"), s.DurationMinutes, s.Location)
	fmt.Fprintf(&b, "  Client: %s (id=%d)\n", s.Client.Name, s.Client.ID)
	fmt.Fprintf(&b, "  Photographer: %s (id=%d)\n", s.Photographer.Name, s.Photographer.ID)
	b.WriteString("  Equipment: ")
	if len(s.UsedEquipment) == 0 {
		b.WriteString("none\n")
	} else {
		for i, e := range s.UsedEquipment {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s (id=%d)", e.Name, e.ID)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  Total price: %s", s.TotalPrice.StringFixed(2))
	return b.String()
}

// UsesEquipment reports whether any equipment entry carries the id.
func (s *PhotoSession) UsesEquipment(id int) bool {
	for _, e := range s.UsedEquipment {
		if e.ID == id {
			return true
		}
	}
	return false
}
