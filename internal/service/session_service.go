package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marta/studiobook/internal/catalog"
	"github.com/marta/studiobook/internal/domain"
)

var minutesPerHour = decimal.NewFromInt(60)

// SessionQuote is the priced preview of a session before it is
// committed to the catalog.
type SessionQuote struct {
	Client           *domain.Client
	Photographer     *domain.Photographer
	Equipment        []domain.Equipment
	DurationMinutes  int
	Hours            decimal.Decimal
	PhotographerCost decimal.Decimal
	EquipmentCost    decimal.Decimal
	Total            decimal.Decimal

	// SkippedEquipment lists requested equipment ids that did not
	// resolve. They are dropped with a warning, not a failure.
	SkippedEquipment []int
}

// SessionService prices and assembles photo sessions against the
// catalog. Assembly has no side effects; the caller commits the result
// via Catalog.AddSession.
type SessionService interface {
	// Quote resolves the referenced entities and computes the total
	// price. A missing client or photographer aborts; missing equipment
	// ids are skipped and reported on the quote.
	Quote(clientID, photographerID int, equipmentIDs []int, durationMinutes int) (*SessionQuote, error)

	// Build quotes and assembles a session ready for AddSession. It
	// fails up front when the session id is already taken.
	Build(id, clientID, photographerID int, equipmentIDs []int, date time.Time, durationMinutes int, location string) (*domain.PhotoSession, *SessionQuote, error)
}

type sessionService struct {
	catalog *catalog.Catalog
}

// NewSessionService creates a session service over the catalog.
func NewSessionService(c *catalog.Catalog) SessionService {
	return &sessionService{catalog: c}
}

func (s *sessionService) Quote(clientID, photographerID int, equipmentIDs []int, durationMinutes int) (*SessionQuote, error) {
	client, err := s.catalog.ClientByID(clientID)
	if err != nil {
		return nil, err
	}
	photographer, err := s.catalog.PhotographerByID(photographerID)
	if err != nil {
		return nil, err
	}

	quote := &SessionQuote{
		Client:          client,
		Photographer:    photographer,
		DurationMinutes: durationMinutes,
	}
	if quote.DurationMinutes < 0 {
		quote.DurationMinutes = 0
	}

	// Duplicate ids are allowed and billed per occurrence.
	for _, id := range equipmentIDs {
		eq, err := s.catalog.EquipmentByID(id)
		if err != nil {
			quote.SkippedEquipment = append(quote.SkippedEquipment, id)
			continue
		}
		quote.Equipment = append(quote.Equipment, *eq)
	}

	// Exact decimal division: 30 minutes is 0.5 hours, not 0.
	quote.Hours = decimal.NewFromInt(int64(quote.DurationMinutes)).Div(minutesPerHour)
	quote.PhotographerCost = photographer.RatePerHour.Mul(quote.Hours)
	quote.EquipmentCost = decimal.Zero
	for _, eq := range quote.Equipment {
		quote.EquipmentCost = quote.EquipmentCost.Add(eq.PricePerHour.Mul(quote.Hours))
	}
	quote.Total = quote.PhotographerCost.Add(quote.EquipmentCost).Round(2)
	return quote, nil
}

func (s *sessionService) Build(id, clientID, photographerID int, equipmentIDs []int, date time.Time, durationMinutes int, location string) (*domain.PhotoSession, *SessionQuote, error) {
	if s.catalog.HasSession(id) {
		return nil, nil, fmt.Errorf("session: id %d: %w", id, catalog.ErrDuplicateID)
	}

	quote, err := s.Quote(clientID, photographerID, equipmentIDs, durationMinutes)
	if err != nil {
		return nil, nil, err
	}

	session, err := domain.NewPhotoSession(id, *quote.Client, *quote.Photographer, quote.Equipment,
		date, quote.DurationMinutes, location, quote.Total)
	if err != nil {
		return nil, nil, err
	}
	return session, quote, nil
}
