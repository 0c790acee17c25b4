package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marta/studiobook/internal/catalog"
	"github.com/marta/studiobook/internal/domain"
)

// seedCatalog builds a catalog with one client (id 1), one photographer
// (id 2, rate 1000/h) and one equipment item (id 3, 200/h).
func seedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()

	client, err := domain.NewClient(1, "Anna", "", "", 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.AddClient(client); err != nil {
		t.Fatal(err)
	}

	photographer, err := domain.NewPhotographer(2, "Mira", "", "", 5, "studio", decimal.NewFromInt(1000))
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.AddPhotographer(photographer); err != nil {
		t.Fatal(err)
	}

	equipment, err := domain.NewEquipment(3, "Strobe", "flash", true, decimal.NewFromInt(200))
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.AddEquipment(equipment); err != nil {
		t.Fatal(err)
	}

	return cat
}

func TestQuote_NinetyMinutes(t *testing.T) {
	svc := NewSessionService(seedCatalog(t))

	quote, err := svc.Quote(1, 2, []int{3}, 90)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	// 1000 * 1.5 + 200 * 1.5 = 1800
	want := decimal.NewFromInt(1800)
	if !quote.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", quote.Total, want)
	}
	if !quote.PhotographerCost.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("PhotographerCost = %s, want 1500", quote.PhotographerCost)
	}
	if !quote.EquipmentCost.Equal(decimal.NewFromInt(300)) {
		t.Errorf("EquipmentCost = %s, want 300", quote.EquipmentCost)
	}
	if len(quote.SkippedEquipment) != 0 {
		t.Errorf("SkippedEquipment = %v, want none", quote.SkippedEquipment)
	}
}

func TestQuote_HalfHourIsNotTruncated(t *testing.T) {
	svc := NewSessionService(seedCatalog(t))

	quote, err := svc.Quote(1, 2, nil, 30)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	// 30 minutes is exactly half an hour: 1000 * 0.5 = 500.
	want := decimal.NewFromInt(500)
	if !quote.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", quote.Total, want)
	}
}

func TestQuote_MissingClientAborts(t *testing.T) {
	svc := NewSessionService(seedCatalog(t))

	if _, err := svc.Quote(99, 2, nil, 60); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Quote(1, 99, nil, 60); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestQuote_MissingEquipmentIsSkipped(t *testing.T) {
	svc := NewSessionService(seedCatalog(t))

	quote, err := svc.Quote(1, 2, []int{3, 77, 88}, 60)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	if len(quote.SkippedEquipment) != 2 {
		t.Fatalf("SkippedEquipment = %v, want [77 88]", quote.SkippedEquipment)
	}
	if quote.SkippedEquipment[0] != 77 || quote.SkippedEquipment[1] != 88 {
		t.Errorf("SkippedEquipment = %v, want [77 88]", quote.SkippedEquipment)
	}

	// Only the resolved item is billed: 1000 + 200 = 1200.
	want := decimal.NewFromInt(1200)
	if !quote.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", quote.Total, want)
	}
}

func TestQuote_DuplicateEquipmentBilledPerOccurrence(t *testing.T) {
	svc := NewSessionService(seedCatalog(t))

	quote, err := svc.Quote(1, 2, []int{3, 3}, 60)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	// 1000 + 200 + 200 = 1400
	want := decimal.NewFromInt(1400)
	if !quote.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", quote.Total, want)
	}
	if len(quote.Equipment) != 2 {
		t.Errorf("len(Equipment) = %d, want 2", len(quote.Equipment))
	}
}

func TestBuild_DuplicateSessionID(t *testing.T) {
	cat := seedCatalog(t)
	svc := NewSessionService(cat)
	date := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	session, _, err := svc.Build(10, 1, 2, nil, date, 60, "Studio A")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := cat.AddSession(session); err != nil {
		t.Fatalf("AddSession: %v", err)
	}

	if _, _, err := svc.Build(10, 1, 2, nil, date, 60, "Studio A"); !errors.Is(err, catalog.ErrDuplicateID) {
		t.Errorf("error = %v, want ErrDuplicateID", err)
	}
}

func TestBuild_NoSideEffectsUntilCommit(t *testing.T) {
	cat := seedCatalog(t)
	svc := NewSessionService(cat)
	date := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	session, quote, err := svc.Build(10, 1, 2, []int{3}, date, 90, "Studio A")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if cat.HasSession(10) {
		t.Fatal("Build committed the session to the catalog")
	}
	if !session.TotalPrice.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("TotalPrice = %s, want 1800", session.TotalPrice)
	}
	if !session.TotalPrice.Equal(quote.Total) {
		t.Errorf("session price %s differs from quote total %s", session.TotalPrice, quote.Total)
	}
	if session.Client.ID != 1 || session.Photographer.ID != 2 {
		t.Errorf("references = client %d, photographer %d", session.Client.ID, session.Photographer.ID)
	}
}
