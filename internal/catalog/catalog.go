// Package catalog holds the in-memory studio dataset: four
// insertion-ordered collections (clients, photographers, equipment,
// sessions) with id indices, uniqueness and referential-integrity
// enforcement.
//
// The catalog is built for a single interactive operator and is not
// safe for concurrent use; callers adding concurrency must serialize
// access to all four collections as a unit, since removal checks read
// the session collection while mutating another.
package catalog

import (
	"fmt"
	"strings"

	"github.com/marta/studiobook/internal/domain"
)

// Catalog aggregates the four entity collections.
type Catalog struct {
	clients       collection[*domain.Client]
	photographers collection[*domain.Photographer]
	equipment     collection[*domain.Equipment]
	sessions      collection[*domain.PhotoSession]
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		clients:       newCollection[*domain.Client](),
		photographers: newCollection[*domain.Photographer](),
		equipment:     newCollection[*domain.Equipment](),
		sessions:      newCollection[*domain.PhotoSession](),
	}
}

// Snapshot is a self-contained copy of the whole catalog, shaped like
// the persisted document.
type Snapshot struct {
	Clients       []*domain.Client       `json:"Clients"`
	Photographers []*domain.Photographer `json:"Photographers"`
	EquipmentList []*domain.Equipment    `json:"EquipmentList"`
	Sessions      []*domain.PhotoSession `json:"Sessions"`
}

// EmptySnapshot returns a snapshot with all four collections empty.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Clients:       []*domain.Client{},
		Photographers: []*domain.Photographer{},
		EquipmentList: []*domain.Equipment{},
		Sessions:      []*domain.PhotoSession{},
	}
}

// Clients

// AddClient appends the client, failing if the id is taken.
func (c *Catalog) AddClient(client *domain.Client) error {
	if err := c.clients.add(client); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	return nil
}

// ClientByID resolves a client by id.
func (c *Catalog) ClientByID(id int) (*domain.Client, error) {
	client, err := c.clients.byID(id)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	return client, nil
}

// FindClientsByName returns clients whose name contains text
// (case-insensitive), in insertion order. Empty text matches everything.
func (c *Catalog) FindClientsByName(text string) []*domain.Client {
	needle := strings.ToLower(text)
	return c.clients.filter(func(cl *domain.Client) bool {
		return strings.Contains(strings.ToLower(cl.Name), needle)
	})
}

// RemoveClient deletes the client unless a session references it.
func (c *Catalog) RemoveClient(id int) error {
	if !c.clients.has(id) {
		return fmt.Errorf("client: id %d: %w", id, ErrNotFound)
	}
	for _, s := range c.sessions.items {
		if s.Client.ID == id {
			return fmt.Errorf("client %d: session %d: %w", id, s.ID, ErrEntityInUse)
		}
	}
	return c.clients.remove(id)
}

// Clients returns all clients in insertion order.
func (c *Catalog) Clients() []*domain.Client { return c.clients.list() }

// Photographers

// AddPhotographer appends the photographer, failing if the id is taken.
func (c *Catalog) AddPhotographer(p *domain.Photographer) error {
	if err := c.photographers.add(p); err != nil {
		return fmt.Errorf("photographer: %w", err)
	}
	return nil
}

// PhotographerByID resolves a photographer by id.
func (c *Catalog) PhotographerByID(id int) (*domain.Photographer, error) {
	p, err := c.photographers.byID(id)
	if err != nil {
		return nil, fmt.Errorf("photographer: %w", err)
	}
	return p, nil
}

// FindPhotographersByName returns photographers whose name contains text
// (case-insensitive), in insertion order.
func (c *Catalog) FindPhotographersByName(text string) []*domain.Photographer {
	needle := strings.ToLower(text)
	return c.photographers.filter(func(p *domain.Photographer) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// RemovePhotographer deletes the photographer unless a session references it.
func (c *Catalog) RemovePhotographer(id int) error {
	if !c.photographers.has(id) {
		return fmt.Errorf("photographer: id %d: %w", id, ErrNotFound)
	}
	for _, s := range c.sessions.items {
		if s.Photographer.ID == id {
			return fmt.Errorf("photographer %d: session %d: %w", id, s.ID, ErrEntityInUse)
		}
	}
	return c.photographers.remove(id)
}

// Photographers returns all photographers in insertion order.
func (c *Catalog) Photographers() []*domain.Photographer { return c.photographers.list() }

// Equipment

// AddEquipment appends the equipment item, failing if the id is taken.
func (c *Catalog) AddEquipment(e *domain.Equipment) error {
	if err := c.equipment.add(e); err != nil {
		return fmt.Errorf("equipment: %w", err)
	}
	return nil
}

// EquipmentByID resolves an equipment item by id.
func (c *Catalog) EquipmentByID(id int) (*domain.Equipment, error) {
	e, err := c.equipment.byID(id)
	if err != nil {
		return nil, fmt.Errorf("equipment: %w", err)
	}
	return e, nil
}

// FindEquipmentByName returns equipment whose name contains text
// (case-insensitive), in insertion order.
func (c *Catalog) FindEquipmentByName(text string) []*domain.Equipment {
	needle := strings.ToLower(text)
	return c.equipment.filter(func(e *domain.Equipment) bool {
		return strings.Contains(strings.ToLower(e.Name), needle)
	})
}

// RemoveEquipment deletes the equipment item unless a session uses it.
func (c *Catalog) RemoveEquipment(id int) error {
	if !c.equipment.has(id) {
		return fmt.Errorf("equipment: id %d: %w", id, ErrNotFound)
	}
	for _, s := range c.sessions.items {
		if s.UsesEquipment(id) {
			return fmt.Errorf("equipment %d: session %d: %w", id, s.ID, ErrEntityInUse)
		}
	}
	return c.equipment.remove(id)
}

// Equipment returns all equipment in insertion order.
func (c *Catalog) Equipment() []*domain.Equipment { return c.equipment.list() }

// Sessions

// AddSession appends the session, failing if the id is taken.
func (c *Catalog) AddSession(s *domain.PhotoSession) error {
	if err := c.sessions.add(s); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// SessionByID resolves a session by id.
func (c *Catalog) SessionByID(id int) (*domain.PhotoSession, error) {
	s, err := c.sessions.byID(id)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return s, nil
}

// HasSession reports whether a session with the id exists.
func (c *Catalog) HasSession(id int) bool { return c.sessions.has(id) }

// RemoveSession deletes the session. Nothing references sessions, so
// removal only requires the id to exist.
func (c *Catalog) RemoveSession(id int) error {
	if err := c.sessions.remove(id); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// Sessions returns all sessions in insertion order.
func (c *Catalog) Sessions() []*domain.PhotoSession { return c.sessions.list() }

// Snapshot exports the current state of all four collections.
func (c *Catalog) Snapshot() *Snapshot {
	return &Snapshot{
		Clients:       c.clients.list(),
		Photographers: c.photographers.list(),
		EquipmentList: c.equipment.list(),
		Sessions:      c.sessions.list(),
	}
}

// Restore discards all in-memory state, adopts the snapshot's
// collections wholesale and rebuilds the id indices. There is no merge.
func (c *Catalog) Restore(snap *Snapshot) {
	if snap == nil {
		snap = EmptySnapshot()
	}
	c.clients.replace(snap.Clients)
	c.photographers.replace(snap.Photographers)
	c.equipment.replace(snap.EquipmentList)
	c.sessions.replace(snap.Sessions)
}

// Counts reports per-collection sizes for status displays.
func (c *Catalog) Counts() (clients, photographers, equipment, sessions int) {
	return c.clients.len(), c.photographers.len(), c.equipment.len(), c.sessions.len()
}
