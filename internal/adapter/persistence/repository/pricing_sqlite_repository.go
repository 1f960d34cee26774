package repository

import (
	"context"
	"database/sql"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

// PricingSQLiteRepository persists the pricing catalog in the local SQLite file.
type PricingSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IPricingRepository = (*PricingSQLiteRepository)(nil)

func NewPricingSQLiteRepository(db *sql.DB) *PricingSQLiteRepository {
	return &PricingSQLiteRepository{db: db}
}

// Seed inserts entries whose key is not stored yet; existing rows keep their
// values.
func (r *PricingSQLiteRepository) Seed(ctx context.Context, entries []entities.PricingEntry) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO pricing (item_type, material, unit_cost, unit) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, e := range entries {
		res, err := stmt.ExecContext(ctx, e.ItemType, e.Material, e.UnitCost, string(e.UnitKind))
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *PricingSQLiteRepository) List(ctx context.Context) ([]entities.PricingEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT item_type, material, unit_cost, unit FROM pricing ORDER BY item_type, material`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entities.PricingEntry
	for rows.Next() {
		var (
			e    entities.PricingEntry
			unit string
		)
		if err := rows.Scan(&e.ItemType, &e.Material, &e.UnitCost, &unit); err != nil {
			return nil, err
		}
		e.UnitKind = entities.UnitKind(unit)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
