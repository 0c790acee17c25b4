package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marta/studiobook/internal/domain"
)

func mustClient(t *testing.T, id int, name string) *domain.Client {
	t.Helper()
	c, err := domain.NewClient(id, name, "", "", 0, "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func mustPhotographer(t *testing.T, id int, name string) *domain.Photographer {
	t.Helper()
	p, err := domain.NewPhotographer(id, name, "", "", 1, "studio", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("NewPhotographer: %v", err)
	}
	return p
}

func mustEquipment(t *testing.T, id int, name string) *domain.Equipment {
	t.Helper()
	e, err := domain.NewEquipment(id, name, "camera", true, decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("NewEquipment: %v", err)
	}
	return e
}

func mustSession(t *testing.T, id int, client *domain.Client, photographer *domain.Photographer, equipment ...domain.Equipment) *domain.PhotoSession {
	t.Helper()
	s, err := domain.NewPhotoSession(id, *client, *photographer, equipment,
		time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC), 60, "Studio A", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("NewPhotoSession: %v", err)
	}
	return s
}

func TestAddThenFindByID(t *testing.T) {
	cat := New()
	client := mustClient(t, 1, "Anna")

	if err := cat.AddClient(client); err != nil {
		t.Fatalf("AddClient: %v", err)
	}

	got, err := cat.ClientByID(1)
	if err != nil {
		t.Fatalf("ClientByID: %v", err)
	}
	if got.ID != client.ID || got.Name != client.Name {
		t.Errorf("got %+v, want %+v", got, client)
	}
}

func TestAddDuplicateID(t *testing.T) {
	cat := New()
	if err := cat.AddClient(mustClient(t, 1, "Anna")); err != nil {
		t.Fatalf("AddClient: %v", err)
	}

	err := cat.AddClient(mustClient(t, 1, "Ben"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("error = %v, want ErrDuplicateID", err)
	}

	// The original entry must remain retrievable unchanged.
	got, err := cat.ClientByID(1)
	if err != nil {
		t.Fatalf("ClientByID: %v", err)
	}
	if got.Name != "Anna" {
		t.Errorf("Name = %q, want Anna", got.Name)
	}
}

func TestFindByIDMissing(t *testing.T) {
	cat := New()
	if _, err := cat.ClientByID(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRemoveReferencedClient(t *testing.T) {
	cat := New()
	client := mustClient(t, 1, "Anna")
	photographer := mustPhotographer(t, 2, "Mira")

	if err := cat.AddClient(client); err != nil {
		t.Fatal(err)
	}
	if err := cat.AddPhotographer(photographer); err != nil {
		t.Fatal(err)
	}
	if err := cat.AddSession(mustSession(t, 5, client, photographer)); err != nil {
		t.Fatal(err)
	}

	if err := cat.RemoveClient(1); !errors.Is(err, ErrEntityInUse) {
		t.Fatalf("RemoveClient error = %v, want ErrEntityInUse", err)
	}
	// The client must remain present.
	if _, err := cat.ClientByID(1); err != nil {
		t.Errorf("client disappeared after rejected removal: %v", err)
	}

	if err := cat.RemovePhotographer(2); !errors.Is(err, ErrEntityInUse) {
		t.Fatalf("RemovePhotographer error = %v, want ErrEntityInUse", err)
	}

	// Once the session is gone, removal succeeds.
	if err := cat.RemoveSession(5); err != nil {
		t.Fatalf("RemoveSession: %v", err)
	}
	if err := cat.RemoveClient(1); err != nil {
		t.Fatalf("RemoveClient after session removal: %v", err)
	}
	if _, err := cat.ClientByID(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound after removal", err)
	}
}

func TestRemoveReferencedEquipment(t *testing.T) {
	cat := New()
	client := mustClient(t, 1, "Anna")
	photographer := mustPhotographer(t, 2, "Mira")
	equipment := mustEquipment(t, 3, "Strobe")

	if err := cat.AddClient(client); err != nil {
		t.Fatal(err)
	}
	if err := cat.AddPhotographer(photographer); err != nil {
		t.Fatal(err)
	}
	if err := cat.AddEquipment(equipment); err != nil {
		t.Fatal(err)
	}
	if err := cat.AddSession(mustSession(t, 5, client, photographer, *equipment)); err != nil {
		t.Fatal(err)
	}

	if err := cat.RemoveEquipment(3); !errors.Is(err, ErrEntityInUse) {
		t.Fatalf("RemoveEquipment error = %v, want ErrEntityInUse", err)
	}
	if _, err := cat.EquipmentByID(3); err != nil {
		t.Errorf("equipment disappeared after rejected removal: %v", err)
	}
}

func TestRemoveMissing(t *testing.T) {
	cat := New()
	if err := cat.RemoveClient(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveClient error = %v, want ErrNotFound", err)
	}
	if err := cat.RemoveSession(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveSession error = %v, want ErrNotFound", err)
	}
}

func TestFindByNameSubstring(t *testing.T) {
	cat := New()
	names := []string{"Anna Berg", "Ben Annarson", "Cleo"}
	for i, name := range names {
		if err := cat.AddClient(mustClient(t, i+1, name)); err != nil {
			t.Fatal(err)
		}
	}

	// Case-insensitive substring match, insertion order.
	got := cat.FindClientsByName("ANNA")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Anna Berg" || got[1].Name != "Ben Annarson" {
		t.Errorf("matches out of order: %q, %q", got[0].Name, got[1].Name)
	}

	// Empty input matches everything, insertion order preserved.
	all := cat.FindClientsByName("")
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Errorf("all[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}

	if got := cat.FindClientsByName("zzz"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestInsertionOrderSurvivesRemoval(t *testing.T) {
	cat := New()
	for i := 1; i <= 4; i++ {
		if err := cat.AddEquipment(mustEquipment(t, i, "Item")); err != nil {
			t.Fatal(err)
		}
	}

	if err := cat.RemoveEquipment(2); err != nil {
		t.Fatal(err)
	}
	if err := cat.AddEquipment(mustEquipment(t, 5, "Item")); err != nil {
		t.Fatal(err)
	}

	var ids []int
	for _, e := range cat.Equipment() {
		ids = append(ids, e.ID)
	}
	want := []int{1, 3, 4, 5}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestRestoreReplacesEverything(t *testing.T) {
	cat := New()
	if err := cat.AddClient(mustClient(t, 1, "Old")); err != nil {
		t.Fatal(err)
	}

	snap := EmptySnapshot()
	snap.Clients = []*domain.Client{mustClient(t, 2, "New")}
	cat.Restore(snap)

	if _, err := cat.ClientByID(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("old client still present after restore: %v", err)
	}
	// The index must be rebuilt from the restored sequence.
	got, err := cat.ClientByID(2)
	if err != nil {
		t.Fatalf("ClientByID after restore: %v", err)
	}
	if got.Name != "New" {
		t.Errorf("Name = %q, want New", got.Name)
	}

	cat.Restore(nil)
	clients, photographers, equipment, sessions := cat.Counts()
	if clients+photographers+equipment+sessions != 0 {
		t.Errorf("counts after nil restore = %d/%d/%d/%d, want all zero",
			clients, photographers, equipment, sessions)
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	cat := New()
	if err := cat.AddClient(mustClient(t, 1, "Anna")); err != nil {
		t.Fatal(err)
	}
	if err := cat.AddEquipment(mustEquipment(t, 2, "Strobe")); err != nil {
		t.Fatal(err)
	}

	snap := cat.Snapshot()
	if len(snap.Clients) != 1 || len(snap.EquipmentList) != 1 {
		t.Fatalf("snapshot sizes = %d clients, %d equipment", len(snap.Clients), len(snap.EquipmentList))
	}
	if len(snap.Photographers) != 0 || len(snap.Sessions) != 0 {
		t.Errorf("expected empty photographers and sessions")
	}
}
