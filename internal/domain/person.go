package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidID is returned when an entity is constructed with a
// non-positive identifier.
var ErrInvalidID = errors.New("id must be positive")

// Identifiable is implemented by every catalog entity.
type Identifiable interface {
	EntityID() int
}

// Person is the field set shared by clients and photographers. It is
// embedded by value; identity is the ID within the owning collection,
// never structural equality.
type Person struct {
	ID    int    `json:"Id"`
	Name  string `json:"Name"`
	Phone string `json:"Phone"`
	Email string `json:"Email"`
}

// EntityID implements Identifiable.
func (p Person) EntityID() int { return p.ID }

// Validate checks the identifier. Field normalization is handled by the
// constructors and Normalize; only the id can make a person invalid.
func (p Person) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("person: %w (got %d)", ErrInvalidID, p.ID)
	}
	return nil
}

func (p Person) summary() string {
	return fmt.Sprintf("[%d] %s, phone: %s, email: %s", p.ID, p.Name, p.Phone, p.Email)
}

// clampInt floors negative values to zero.
func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// clampDecimal floors negative amounts to zero.
func clampDecimal(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
