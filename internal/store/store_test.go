package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marta/studiobook/internal/catalog"
	"github.com/marta/studiobook/internal/domain"
)

func sampleSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()
	cat := catalog.New()

	client, err := domain.NewClient(1, "Anna", "555-0100", "anna@example.com", 2, "vip")
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.AddClient(client); err != nil {
		t.Fatal(err)
	}

	photographer, err := domain.NewPhotographer(2, "Mira", "555-0101", "mira@example.com", 7, "wedding", decimal.RequireFromString("1000"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.AddPhotographer(photographer); err != nil {
		t.Fatal(err)
	}

	equipment, err := domain.NewEquipment(3, "Strobe", "flash", true, decimal.RequireFromString("200.50"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.AddEquipment(equipment); err != nil {
		t.Fatal(err)
	}

	session, err := domain.NewPhotoSession(4, *client, *photographer, []domain.Equipment{*equipment},
		time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC), 90, "Studio A", decimal.RequireFromString("1800.75"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.AddSession(session); err != nil {
		t.Fatal(err)
	}

	return cat.Snapshot()
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := NewGateway(nil)
	path := filepath.Join(t.TempDir(), "studio.json")

	if ok := g.SaveAll(path, sampleSnapshot(t)); !ok {
		t.Fatal("SaveAll reported failure")
	}

	got := g.LoadAll(path)
	if len(got.Clients) != 1 || len(got.Photographers) != 1 || len(got.EquipmentList) != 1 || len(got.Sessions) != 1 {
		t.Fatalf("sizes = %d/%d/%d/%d, want 1/1/1/1",
			len(got.Clients), len(got.Photographers), len(got.EquipmentList), len(got.Sessions))
	}

	client := got.Clients[0]
	if client.ID != 1 || client.Name != "Anna" || client.Phone != "555-0100" ||
		client.Email != "anna@example.com" || client.LoyaltyLevel != 2 || client.Notes != "vip" {
		t.Errorf("client round trip mismatch: %+v", client)
	}

	photographer := got.Photographers[0]
	if !photographer.RatePerHour.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("RatePerHour = %s, want 1000", photographer.RatePerHour)
	}

	session := got.Sessions[0]
	if session.Client.ID != 1 || session.Photographer.ID != 2 {
		t.Errorf("session references = %d/%d, want 1/2", session.Client.ID, session.Photographer.ID)
	}
	if len(session.UsedEquipment) != 1 || session.UsedEquipment[0].ID != 3 {
		t.Errorf("UsedEquipment = %+v, want one item with id 3", session.UsedEquipment)
	}
	if !session.TotalPrice.Equal(decimal.RequireFromString("1800.75")) {
		t.Errorf("TotalPrice = %s, want 1800.75", session.TotalPrice)
	}
	if !session.Date.Equal(time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)) {
		t.Errorf("Date = %s", session.Date)
	}
}

func TestLoadNonexistentPath(t *testing.T) {
	g := NewGateway(nil)

	snap := g.LoadAll(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if snap == nil {
		t.Fatal("LoadAll returned nil")
	}
	if len(snap.Clients)+len(snap.Photographers)+len(snap.EquipmentList)+len(snap.Sessions) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	g := NewGateway(nil)
	path := filepath.Join(t.TempDir(), "studio.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	snap := g.LoadAll(path)
	if len(snap.Clients)+len(snap.Photographers)+len(snap.EquipmentList)+len(snap.Sessions) != 0 {
		t.Errorf("expected empty snapshot for malformed document")
	}
}

func TestLoadRejectsInvalidIdentifiers(t *testing.T) {
	g := NewGateway(nil)
	path := filepath.Join(t.TempDir(), "studio.json")
	doc := `{"Clients":[{"Id":0,"Name":"Bad"}],"Photographers":[],"EquipmentList":[],"Sessions":[]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	snap := g.LoadAll(path)
	if len(snap.Clients) != 0 {
		t.Errorf("invalid entities should yield an empty snapshot, got %d clients", len(snap.Clients))
	}
}

func TestLoadClampsNegativeFields(t *testing.T) {
	g := NewGateway(nil)
	path := filepath.Join(t.TempDir(), "studio.json")
	doc := `{"Clients":[{"Id":1,"Name":"Anna","LoyaltyLevel":-3}],"Photographers":[{"Id":2,"Name":"Mira","RatePerHour":-5}],"EquipmentList":[],"Sessions":[]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	snap := g.LoadAll(path)
	if len(snap.Clients) != 1 || len(snap.Photographers) != 1 {
		t.Fatalf("sizes = %d/%d, want 1/1", len(snap.Clients), len(snap.Photographers))
	}
	if snap.Clients[0].LoyaltyLevel != 0 {
		t.Errorf("LoyaltyLevel = %d, want clamped to 0", snap.Clients[0].LoyaltyLevel)
	}
	if !snap.Photographers[0].RatePerHour.IsZero() {
		t.Errorf("RatePerHour = %s, want clamped to 0", snap.Photographers[0].RatePerHour)
	}
}

func TestSaveWritesPascalCaseNumbers(t *testing.T) {
	g := NewGateway(nil)
	path := filepath.Join(t.TempDir(), "studio.json")

	if ok := g.SaveAll(path, sampleSnapshot(t)); !ok {
		t.Fatal("SaveAll reported failure")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// The document must stay valid JSON with the agreed top-level keys.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"Clients", "Photographers", "EquipmentList", "Sessions"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}

	// Monetary fields serialize as numbers, not strings.
	text := string(data)
	if strings.Contains(text, `"RatePerHour": "`) {
		t.Error("RatePerHour serialized as a string, want a JSON number")
	}
	if !strings.Contains(text, `"RatePerHour": 1000`) {
		t.Error("RatePerHour not serialized as a JSON number")
	}
}

func TestSaveUnwritablePathIsAbsorbed(t *testing.T) {
	g := NewGateway(nil)
	// A directory path cannot be written as a file.
	if ok := g.SaveAll(t.TempDir(), sampleSnapshot(t)); ok {
		t.Error("SaveAll to a directory reported success")
	}
}
