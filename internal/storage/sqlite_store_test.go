package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "shops.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func sampleShop(id, area string) domain.ShopRecord {
	return domain.ShopRecord{
		ShopID:             id,
		ShopName:           "テスト" + id,
		Area:               area,
		BeginnerFriendly:   true,
		TrialDiveOptions:   "ビーチ体験",
		JijiGrade:          "A",
		SafetyEquipment:    true,
		ExperienceYears:    12,
		MaxGroupSize:       4,
		FunDivePrice2Tanks: 13000,
		SoloWelcome:        true,
		CustomerRating:     4.6,
		ReviewCount:        34,
		PickupService:      true,
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	want := sampleShop("ish-001", "石垣島")
	if err := store.CreateShop(want); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, found, err := store.GetShop("ish-001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("shop not found after create")
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}

	if _, found, _ := store.GetShop("missing"); found {
		t.Error("found a shop that was never stored")
	}
}

func TestSQLiteStoreUpsertManyReplaces(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	first := sampleShop("ish-001", "石垣島")
	if err := store.UpsertMany([]domain.ShopRecord{first, sampleShop("oki-001", "沖縄本島")}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	updated := first
	updated.CustomerRating = 4.9
	if err := store.UpsertMany([]domain.ShopRecord{updated}); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	if n, _ := store.CountShops(); n != 2 {
		t.Errorf("count=%d, want 2", n)
	}
	got, _, err := store.GetShop("ish-001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CustomerRating != 4.9 {
		t.Errorf("rating=%v, re-import should replace the record", got.CustomerRating)
	}
}

func TestSQLiteStoreGetShopsAreaFilter(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	shops := []domain.ShopRecord{
		sampleShop("ish-002", "石垣島"),
		sampleShop("ish-001", "石垣島"),
		sampleShop("oki-001", "沖縄本島"),
	}
	if err := store.UpsertMany(shops); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.GetShops(context.Background(), "石垣島")
	if err != nil {
		t.Fatalf("get shops: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d shops, want 2", len(got))
	}
	// Catalog order is stable shop_id order.
	if got[0].ShopID != "ish-001" || got[1].ShopID != "ish-002" {
		t.Errorf("order=%s,%s want ish-001,ish-002", got[0].ShopID, got[1].ShopID)
	}

	all, err := store.GetShops(context.Background(), "")
	if err != nil {
		t.Fatalf("get all shops: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d shops, want 3", len(all))
	}
}

func TestSQLiteStoreListAndDelete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.UpsertMany([]domain.ShopRecord{
		sampleShop("a", "石垣島"),
		sampleShop("b", "石垣島"),
		sampleShop("c", "宮古島"),
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	page, total, err := store.ListShops("", 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(page) != 2 {
		t.Errorf("total=%d page=%d, want 3/2", total, len(page))
	}

	deleted, err := store.DeleteShop("b")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("delete reported no rows affected")
	}
	if deleted, _ := store.DeleteShop("b"); deleted {
		t.Error("second delete should affect nothing")
	}
}
