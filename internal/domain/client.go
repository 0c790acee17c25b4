package domain

import "fmt"

// Client is a studio client.
type Client struct {
	Person
	LoyaltyLevel int    `json:"LoyaltyLevel"`
	Notes        string `json:"Notes"`
}

// NewClient creates a client, rejecting a non-positive id and clamping a
// negative loyalty level to zero.
func NewClient(id int, name, phone, email string, loyaltyLevel int, notes string) (*Client, error) {
	c := &Client{
		Person:       Person{ID: id, Name: name, Phone: phone, Email: email},
		LoyaltyLevel: loyaltyLevel,
		Notes:        notes,
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Normalize re-applies field clamps. Used after decoding, where the
// constructor is bypassed.
func (c *Client) Normalize() {
	c.LoyaltyLevel = clampInt(c.LoyaltyLevel)
}

// Summary returns the display line for the client.
func (c *Client) Summary() string {
	return c.summary() + fmt.Sprintf(", loyalty: %d, notes: %s", c.LoyaltyLevel, c.Notes)
}
