package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Equipment is a rentable piece of studio equipment.
type Equipment struct {
	ID           int             `json:"Id"`
	Name         string          `json:"Name"`
	Type         string          `json:"Type"`
	IsAvailable  bool            `json:"IsAvailable"`
	PricePerHour decimal.Decimal `json:"PricePerHour"`
}

// EntityID implements Identifiable.
func (e Equipment) EntityID() int { return e.ID }

// NewEquipment creates an equipment item, rejecting a non-positive id and
// clamping a negative rental price to zero.
func NewEquipment(id int, name, typ string, isAvailable bool, pricePerHour decimal.Decimal) (*Equipment, error) {
	e := &Equipment{
		ID:           id,
		Name:         name,
		Type:         typ,
		IsAvailable:  isAvailable,
		PricePerHour: pricePerHour,
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the identifier.
func (e *Equipment) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("equipment: %w (got %d)", ErrInvalidID, e.ID)
	}
	return nil
}

// Normalize re-applies field clamps.
func (e *Equipment) Normalize() {
	e.PricePerHour = clampDecimal(e.PricePerHour)
}

// Summary returns the display line for the equipment item.
func (e *Equipment) Summary() string {
	avail := "no"
	if e.IsAvailable {
		avail = "yes"
	}
	return fmt.Sprintf("[%d] %s (%s), available: %s, price: %s/h",
		e.ID, e.Name, e.Type, avail, e.PricePerHour.StringFixed(2))
}
