package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/inference-sim/boarding-sim/sim/policy"
)

// ErrNotFound is returned when no stored episode matches a query.
var ErrNotFound = errors.New("episode not found")

// EpisodeRecord is a stored episode result.
type EpisodeRecord struct {
	policy.EpisodeResult
	CreatedAt time.Time
}

// EpisodeRepository stores and queries episode results.
type EpisodeRepository struct {
	db *sql.DB
}

// NewEpisodeRepository wraps an initialized database.
func NewEpisodeRepository(db *sql.DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

// Save inserts one episode result.
func (r *EpisodeRepository) Save(ctx context.Context, res *policy.EpisodeResult) error {
	releases, err := json.Marshal(res.Releases)
	if err != nil {
		return fmt.Errorf("marshaling releases: %w", err)
	}
	query := `
		INSERT INTO episodes (id, policy, num_rows, seats_per_row, seed, decisions, ticks,
			total_reward, stow_events, peak_waiting, releases_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		res.ID, res.Policy, res.NumRows, res.SeatsPerRow, res.Seed, res.Decisions, res.Ticks,
		res.TotalReward, res.StowEvents, res.PeakWaiting, string(releases), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving episode %s: %w", res.ID, err)
	}
	return nil
}

const selectColumns = `SELECT id, policy, num_rows, seats_per_row, seed, decisions, ticks,
	total_reward, stow_events, peak_waiting, releases_json, created_at FROM episodes`

func (r *EpisodeRepository) getMany(ctx context.Context, query string, args ...any) ([]EpisodeRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []EpisodeRecord
	for rows.Next() {
		var e EpisodeRecord
		var releases string
		err := rows.Scan(
			&e.ID, &e.Policy, &e.NumRows, &e.SeatsPerRow, &e.Seed, &e.Decisions, &e.Ticks,
			&e.TotalReward, &e.StowEvents, &e.PeakWaiting, &releases, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(releases), &e.Releases); err != nil {
			return nil, fmt.Errorf("decoding releases of episode %s: %w", e.ID, err)
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

// List returns up to limit episodes, newest first.
func (r *EpisodeRepository) List(ctx context.Context, limit int) ([]EpisodeRecord, error) {
	return r.getMany(ctx, selectColumns+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
}

// Best returns the highest-reward episode of the given policy on the given
// cabin shape.
func (r *EpisodeRepository) Best(ctx context.Context, policyName string, numRows, seatsPerRow int) (*EpisodeRecord, error) {
	records, err := r.getMany(ctx,
		selectColumns+` WHERE policy = ? AND num_rows = ? AND seats_per_row = ? ORDER BY total_reward DESC LIMIT 1`,
		policyName, numRows, seatsPerRow)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("policy %s on %dx%d: %w", policyName, numRows, seatsPerRow, ErrNotFound)
	}
	return &records[0], nil
}
