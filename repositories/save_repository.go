package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/models"
)

var ErrSaveNotFound = errors.New("save not found")

// SaveRepository stores whole-world snapshots, one JSONB document per
// (user, slot). Standings and similar derived data are recomputed from the
// document, never cached beside it.
type SaveRepository interface {
	Upsert(ctx context.Context, userID, slot int, label string, world *models.World) error
	Get(ctx context.Context, userID, slot int) (*models.World, error)
	List(ctx context.Context, userID int) ([]*models.Save, error)
	Delete(ctx context.Context, userID, slot int) error
}

type postgresSaveRepository struct {
	db *sql.DB
}

func NewPostgresSaveRepository(db *sql.DB) SaveRepository {
	return &postgresSaveRepository{db: db}
}

func (r *postgresSaveRepository) Upsert(ctx context.Context, userID, slot int, label string, world *models.World) error {
	doc, err := json.Marshal(world)
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	query := `
		INSERT INTO saves (user_id, slot, label, world, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, slot)
		DO UPDATE SET label = EXCLUDED.label, world = EXCLUDED.world, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, userID, slot, label, doc); err != nil {
		return fmt.Errorf("upsert save %d/%d: %w", userID, slot, err)
	}
	return nil
}

func (r *postgresSaveRepository) Get(ctx context.Context, userID, slot int) (*models.World, error) {
	query := `SELECT world FROM saves WHERE user_id = $1 AND slot = $2`
	var doc []byte
	err := r.db.QueryRowContext(ctx, query, userID, slot).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get save %d/%d: %w", userID, slot, err)
	}
	var world models.World
	if err := json.Unmarshal(doc, &world); err != nil {
		return nil, fmt.Errorf("unmarshal world %d/%d: %w", userID, slot, err)
	}
	return &world, nil
}

func (r *postgresSaveRepository) List(ctx context.Context, userID int) ([]*models.Save, error) {
	query := `
		SELECT id, user_id, slot, label, updated_at
		FROM saves WHERE user_id = $1 ORDER BY slot`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list saves for user %d: %w", userID, err)
	}
	defer rows.Close()

	var saves []*models.Save
	for rows.Next() {
		var s models.Save
		if err := rows.Scan(&s.ID, &s.UserID, &s.Slot, &s.Label, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		saves = append(saves, &s)
	}
	return saves, rows.Err()
}

func (r *postgresSaveRepository) Delete(ctx context.Context, userID, slot int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE user_id = $1 AND slot = $2`, userID, slot)
	if err != nil {
		return fmt.Errorf("delete save %d/%d: %w", userID, slot, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSaveNotFound
	}
	return nil
}
