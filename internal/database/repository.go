package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/lanekit/internal/board"
	"github.com/thenoetrevino/lanekit/internal/models"
)

// Repository provides pure data access for lanes and items.
// No business logic, no validation - just database operations.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// LoadBoard reads every lane and item, ordered by position.
func (r *Repository) LoadBoard(ctx context.Context) (board.Snapshot, error) {
	lanes, err := r.loadLanes(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}

	index := make(map[string]int, len(lanes))
	for i, lane := range lanes {
		index[lane.Key] = i
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT key, lane_key, title, description, position
		 FROM items
		 ORDER BY lane_key, position, key`,
	)
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.Item
		var laneKey string
		if err := rows.Scan(&item.Key, &laneKey, &item.Title, &item.Description, &item.Order); err != nil {
			return board.Snapshot{}, fmt.Errorf("failed to scan item: %w", err)
		}
		i, ok := index[laneKey]
		if !ok {
			return board.Snapshot{}, fmt.Errorf("item %s: %w: %s", item.Key, models.ErrLaneNotFound, laneKey)
		}
		lanes[i].Items = append(lanes[i].Items, item)
	}
	if err := rows.Err(); err != nil {
		return board.Snapshot{}, err
	}

	return board.New(lanes...)
}

func (r *Repository) loadLanes(ctx context.Context) ([]models.Lane, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, title FROM lanes ORDER BY position, key`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query lanes: %w", err)
	}
	defer rows.Close()

	var lanes []models.Lane
	for rows.Next() {
		var lane models.Lane
		if err := rows.Scan(&lane.Key, &lane.Title); err != nil {
			return nil, fmt.Errorf("failed to scan lane: %w", err)
		}
		lanes = append(lanes, lane)
	}
	return lanes, rows.Err()
}

// SaveLanes upserts every lane row from snap and rewrites the items of the
// lanes named in laneKeys. Items that moved between two saved lanes end up
// in their new lane; positions are taken from the snapshot's Order fields.
// Rows left in a rewritten lane that snap no longer holds there are deleted
// in the same transaction.
func (r *Repository) SaveLanes(ctx context.Context, snap board.Snapshot, laneKeys []string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for pos, lane := range snap.Lanes() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO lanes (key, title, position) VALUES (?, ?, ?)
				 ON CONFLICT(key) DO UPDATE SET title = excluded.title, position = excluded.position`,
				lane.Key, lane.Title, pos,
			)
			if err != nil {
				return fmt.Errorf("failed to save lane %s: %w", lane.Key, err)
			}
		}

		for _, laneKey := range laneKeys {
			lane, ok := snap.Lane(laneKey)
			if !ok {
				return fmt.Errorf("%w: %s", models.ErrLaneNotFound, laneKey)
			}
			for _, item := range lane.Items {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO items (key, lane_key, title, description, position)
					 VALUES (?, ?, ?, ?, ?)
					 ON CONFLICT(key) DO UPDATE SET
						lane_key = excluded.lane_key,
						title = excluded.title,
						description = excluded.description,
						position = excluded.position,
						updated_at = CURRENT_TIMESTAMP`,
					item.Key, lane.Key, item.Title, item.Description, item.Order,
				)
				if err != nil {
					return fmt.Errorf("failed to save item %s: %w", item.Key, err)
				}
			}
			if err := pruneLane(ctx, tx, lane); err != nil {
				return err
			}
		}

		return nil
	})
}

// pruneLane deletes the rows of lane whose keys are not among its items.
// Items that moved to another saved lane were already re-pointed by the
// upsert, so only removed items match.
func pruneLane(ctx context.Context, tx *sql.Tx, lane models.Lane) error {
	query := `DELETE FROM items WHERE lane_key = ?`
	args := []any{lane.Key}
	if len(lane.Items) > 0 {
		query += ` AND key NOT IN (?` + strings.Repeat(", ?", len(lane.Items)-1) + `)`
		for _, item := range lane.Items {
			args = append(args, item.Key)
		}
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to prune lane %s: %w", lane.Key, err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		slog.Debug("pruned items", "lane", lane.Key, "count", n)
	}
	return nil
}
