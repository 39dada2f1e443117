package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/domain/repository"
	"github.com/bnema/paneshell/internal/logging"
)

const (
	upsertLayoutSQL = `INSERT INTO layouts (name, version, state_json, leaf_count, saved_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    version = excluded.version,
    state_json = excluded.state_json,
    leaf_count = excluded.leaf_count,
    saved_at = excluded.saved_at`
	getLayoutSQL    = `SELECT name, state_json, leaf_count, saved_at FROM layouts WHERE name = ?`
	listLayoutsSQL  = `SELECT name, state_json, leaf_count, saved_at FROM layouts ORDER BY saved_at DESC, name`
	deleteLayoutSQL = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	provider port.DatabaseProvider
}

// NewLayoutRepository stores layouts in the database behind provider. The
// connection is requested per call so a lazy provider opens it on first use.
func NewLayoutRepository(provider port.DatabaseProvider) repository.LayoutRepository {
	return &layoutRepo{provider: provider}
}

func (r *layoutRepo) Save(ctx context.Context, layout *entity.Layout) error {
	if layout == nil || layout.State == nil {
		return errors.New("layout cannot be nil")
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	stateJSON, err := json.Marshal(layout.State)
	if err != nil {
		return fmt.Errorf("marshal layout %q: %w", layout.Name, err)
	}

	logging.FromContext(ctx).Debug().
		Str("layout", layout.Name).
		Int("leaf_count", layout.LeafCount).
		Msg("saving layout")

	_, err = db.ExecContext(ctx, upsertLayoutSQL,
		layout.Name,
		layout.State.Version,
		string(stateJSON),
		layout.LeafCount,
		layout.SavedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save layout %q: %w", layout.Name, err)
	}
	return nil
}

func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.Layout, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	layout, err := scanLayout(db.QueryRowContext(ctx, getLayoutSQL, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("layout %q: %w", name, entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get layout %q: %w", name, err)
	}
	return layout, nil
}

func (r *layoutRepo) List(ctx context.Context) ([]*entity.Layout, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var layouts []*entity.Layout
	for rows.Next() {
		layout, err := scanLayout(rows)
		if err != nil {
			return nil, fmt.Errorf("list layouts: %w", err)
		}
		layouts = append(layouts, layout)
	}
	return layouts, rows.Err()
}

func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, deleteLayoutSQL, name)
	if err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("layout %q: %w", name, entity.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLayout(row rowScanner) (*entity.Layout, error) {
	var (
		layout    entity.Layout
		stateJSON string
		savedAt   int64
	)
	if err := row.Scan(&layout.Name, &stateJSON, &layout.LeafCount, &savedAt); err != nil {
		return nil, err
	}

	var state entity.TreeState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("decode layout %q: %w", layout.Name, err)
	}
	layout.State = &state
	layout.SavedAt = time.Unix(0, savedAt).UTC()
	return &layout, nil
}
