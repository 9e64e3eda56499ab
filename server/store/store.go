package store

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

var ErrNotFound = errors.New("not found")

/* -----------------------------
   Saved ranges
------------------------------*/

type SavedRange struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Notation  *string         `json:"notation,omitempty"`
	Cells     [13][13]float64 `json:"matrix"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SaveRange upserts a named range and returns its id.
func (db *DB) SaveRange(ctx context.Context, name string, notation *string, cells [13][13]float64) (int64, error) {
	blob, err := json.Marshal(cells)
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRow(ctx, `
        INSERT INTO saved_ranges(name, notation, cells)
        VALUES ($1,$2,$3)
        ON CONFLICT (name) DO UPDATE
          SET notation = EXCLUDED.notation,
              cells = EXCLUDED.cells,
              updated_at = now()
        RETURNING id
    `, name, notation, blob).Scan(&id)
	return id, err
}

func (db *DB) GetRange(ctx context.Context, id int64) (SavedRange, error) {
	var r SavedRange
	var blob []byte
	err := db.QueryRow(ctx, `
        SELECT id, name, notation, cells, created_at, updated_at
          FROM saved_ranges WHERE id = $1
    `, id).Scan(&r.ID, &r.Name, &r.Notation, &blob, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r, ErrNotFound
	}
	if err != nil {
		return r, err
	}
	err = json.Unmarshal(blob, &r.Cells)
	return r, err
}

func (db *DB) ListRanges(ctx context.Context, limit int) ([]SavedRange, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	rows, err := db.Query(ctx, `
        SELECT id, name, notation, cells, created_at, updated_at
          FROM saved_ranges
         ORDER BY updated_at DESC
         LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []SavedRange{}
	for rows.Next() {
		var r SavedRange
		var blob []byte
		if err := rows.Scan(&r.ID, &r.Name, &r.Notation, &blob, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(blob, &r.Cells); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

/* -----------------------------
   Drill results
------------------------------*/

type DrillResult struct {
	ID        int64     `json:"id"`
	Session   string    `json:"session"`
	HandLabel string    `json:"hand_label"`
	Tier      string    `json:"tier"`
	Position  string    `json:"position"`
	Chosen    string    `json:"chosen"`
	Correct   string    `json:"correct"`
	IsCorrect bool      `json:"is_correct"`
	CreatedAt time.Time `json:"created_at"`
}

func (db *DB) InsertDrillResult(ctx context.Context, r DrillResult) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
        INSERT INTO drill_results(session, hand_label, tier, position, chosen, correct, is_correct)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id
    `, r.Session, r.HandLabel, r.Tier, r.Position, r.Chosen, r.Correct, r.IsCorrect).Scan(&id)
	return id, err
}

type TierTally struct {
	Tier    string `json:"tier"`
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
}

// SessionSummary tallies a drill session overall and per tier.
func (db *DB) SessionSummary(ctx context.Context, session string) (total, correct int, tiers []TierTally, err error) {
	rows, err := db.Query(ctx, `
        SELECT tier,
               COUNT(*)::int AS total,
               SUM(CASE WHEN is_correct THEN 1 ELSE 0 END)::int AS correct
          FROM drill_results
         WHERE session = $1
         GROUP BY tier
         ORDER BY tier
    `, session)
	if err != nil {
		return 0, 0, nil, err
	}
	defer rows.Close()
	tiers = []TierTally{}
	for rows.Next() {
		var t TierTally
		if err := rows.Scan(&t.Tier, &t.Total, &t.Correct); err != nil {
			return 0, 0, nil, err
		}
		total += t.Total
		correct += t.Correct
		tiers = append(tiers, t)
	}
	return total, correct, tiers, rows.Err()
}
