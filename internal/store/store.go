// Package store is the JSON snapshot gateway. It fully absorbs I/O and
// format failures: saving reports success or not, loading always yields
// a usable (possibly empty) snapshot. The rest of the application never
// handles a persistence error.
package store

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/marta/studiobook/internal/catalog"
)

func init() {
	// Monetary fields persist as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Gateway reads and writes catalog snapshots.
type Gateway struct {
	log *zap.Logger
}

// NewGateway creates a snapshot gateway.
func NewGateway(log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{log: log}
}

// SaveAll writes the snapshot to path as indented JSON. Failures are
// logged and reported via the return value only.
func (g *Gateway) SaveAll(path string, snap *catalog.Snapshot) bool {
	if snap == nil {
		snap = catalog.EmptySnapshot()
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		g.log.Warn("failed to encode snapshot", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		g.log.Warn("failed to write snapshot", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// LoadAll reads the snapshot at path. A missing file, unreadable file,
// malformed document, or document whose entities fail validation all
// yield a fresh empty snapshot; the caller cannot distinguish the cases
// and does not need to.
func (g *Gateway) LoadAll(path string) *catalog.Snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			g.log.Warn("failed to read snapshot", zap.String("path", path), zap.Error(err))
		}
		return catalog.EmptySnapshot()
	}

	snap := catalog.EmptySnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		g.log.Warn("malformed snapshot", zap.String("path", path), zap.Error(err))
		return catalog.EmptySnapshot()
	}

	if err := normalize(snap); err != nil {
		g.log.Warn("invalid snapshot", zap.String("path", path), zap.Error(err))
		return catalog.EmptySnapshot()
	}
	return snap
}

// normalize re-applies field clamps on every loaded entity and rejects
// the document when any identifier is invalid, since decoding bypasses
// the constructors.
func normalize(snap *catalog.Snapshot) error {
	for _, c := range snap.Clients {
		c.Normalize()
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, p := range snap.Photographers {
		p.Normalize()
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, e := range snap.EquipmentList {
		e.Normalize()
		if err := e.Validate(); err != nil {
			return err
		}
	}
	for _, s := range snap.Sessions {
		s.Normalize()
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
