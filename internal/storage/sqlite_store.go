package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ICHI0608/jiji-matching/internal/domain"
)

// SQLiteStore persists the shop catalog. It doubles as the matching
// engine's catalog provider via GetShops.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS shops (
  shop_id TEXT PRIMARY KEY,
  shop_name TEXT NOT NULL,
  area TEXT NOT NULL,
  beginner_friendly INTEGER NOT NULL DEFAULT 0,
  trial_dive_options TEXT NOT NULL DEFAULT '',
  jiji_grade TEXT NOT NULL DEFAULT '',
  safety_equipment INTEGER NOT NULL DEFAULT 0,
  insurance_coverage INTEGER NOT NULL DEFAULT 0,
  experience_years INTEGER NOT NULL DEFAULT 0,
  incident_record TEXT NOT NULL DEFAULT '',
  max_group_size INTEGER NOT NULL DEFAULT 0,
  private_guide_available INTEGER NOT NULL DEFAULT 0,
  fun_dive_price_2tanks REAL NOT NULL DEFAULT 0,
  trial_dive_price_beach REAL NOT NULL DEFAULT 0,
  equipment_rental_included INTEGER NOT NULL DEFAULT 0,
  photo_service INTEGER NOT NULL DEFAULT 0,
  additional_fees TEXT NOT NULL DEFAULT '',
  solo_welcome INTEGER NOT NULL DEFAULT 0,
  customer_rating REAL NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  pickup_service INTEGER NOT NULL DEFAULT 0,
  video_service INTEGER NOT NULL DEFAULT 0
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_shops_area ON shops(area);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_shops_grade ON shops(jiji_grade);`); err != nil {
		return err
	}
	return nil
}

const shopColumns = `shop_id, shop_name, area, beginner_friendly, trial_dive_options, jiji_grade,
safety_equipment, insurance_coverage, experience_years, incident_record,
max_group_size, private_guide_available,
fun_dive_price_2tanks, trial_dive_price_beach, equipment_rental_included, photo_service, additional_fees,
solo_welcome, customer_rating, review_count, pickup_service, video_service`

func shopArgs(shop domain.ShopRecord) []any {
	return []any{
		shop.ShopID, shop.ShopName, shop.Area, shop.BeginnerFriendly, shop.TrialDiveOptions, shop.JijiGrade,
		shop.SafetyEquipment, shop.InsuranceCoverage, shop.ExperienceYears, shop.IncidentRecord,
		shop.MaxGroupSize, shop.PrivateGuideAvailable,
		shop.FunDivePrice2Tanks, shop.TrialDivePriceBeach, shop.EquipmentRentalIncluded, shop.PhotoService, shop.AdditionalFees,
		shop.SoloWelcome, shop.CustomerRating, shop.ReviewCount, shop.PickupService, shop.VideoService,
	}
}

func scanShop(scan func(dest ...any) error) (domain.ShopRecord, error) {
	var shop domain.ShopRecord
	err := scan(
		&shop.ShopID, &shop.ShopName, &shop.Area, &shop.BeginnerFriendly, &shop.TrialDiveOptions, &shop.JijiGrade,
		&shop.SafetyEquipment, &shop.InsuranceCoverage, &shop.ExperienceYears, &shop.IncidentRecord,
		&shop.MaxGroupSize, &shop.PrivateGuideAvailable,
		&shop.FunDivePrice2Tanks, &shop.TrialDivePriceBeach, &shop.EquipmentRentalIncluded, &shop.PhotoService, &shop.AdditionalFees,
		&shop.SoloWelcome, &shop.CustomerRating, &shop.ReviewCount, &shop.PickupService, &shop.VideoService,
	)
	return shop, err
}

func (s *SQLiteStore) CountShops() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM shops`).Scan(&n)
	return n, err
}

// UpsertMany imports a catalog dump. Existing shops are replaced by shop_id
// so re-running an import refreshes the catalog.
func (s *SQLiteStore) UpsertMany(shops []domain.ShopRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", 22), ", ")
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO shops (` + shopColumns + `) VALUES (` + placeholders + `)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, shop := range shops {
		if _, err := stmt.Exec(shopArgs(shop)...); err != nil {
			return fmt.Errorf("upsert shop %s: %w", shop.ShopID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) CreateShop(shop domain.ShopRecord) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", 22), ", ")
	_, err := s.db.Exec(`INSERT INTO shops (`+shopColumns+`) VALUES (`+placeholders+`)`, shopArgs(shop)...)
	return err
}

func (s *SQLiteStore) DeleteShop(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM shops WHERE shop_id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) GetShop(id string) (domain.ShopRecord, bool, error) {
	row := s.db.QueryRow(`SELECT `+shopColumns+` FROM shops WHERE shop_id = ?`, id)
	shop, err := scanShop(row.Scan)
	if err == sql.ErrNoRows {
		return domain.ShopRecord{}, false, nil
	}
	if err != nil {
		return domain.ShopRecord{}, false, err
	}
	return shop, true, nil
}

// ListShops pages through the catalog, optionally narrowed to one area.
func (s *SQLiteStore) ListShops(areaFilter string, limit, offset int) ([]domain.ShopRecord, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	whereSQL := ""
	args := []any{}
	if areaFilter != "" {
		whereSQL = "WHERE area = ?"
		args = append(args, areaFilter)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM shops `+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(`SELECT `+shopColumns+` FROM shops `+whereSQL+` ORDER BY shop_id LIMIT ? OFFSET ?`,
		append(append([]any{}, args...), limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.ShopRecord
	for rows.Next() {
		shop, err := scanShop(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, shop)
	}
	return out, total, rows.Err()
}

// GetShops satisfies matching.CatalogProvider. Catalog order is the stable
// shop_id order, which also fixes tie-break order in ranking.
func (s *SQLiteStore) GetShops(ctx context.Context, areaFilter string) ([]domain.ShopRecord, error) {
	whereSQL := ""
	args := []any{}
	if areaFilter != "" {
		whereSQL = "WHERE area = ?"
		args = append(args, areaFilter)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+shopColumns+` FROM shops `+whereSQL+` ORDER BY shop_id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query shops: %w", err)
	}
	defer rows.Close()

	var out []domain.ShopRecord
	for rows.Next() {
		shop, err := scanShop(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		out = append(out, shop)
	}
	return out, rows.Err()
}
