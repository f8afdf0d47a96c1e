package faultstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Label is an operator-entered annotation against one decoded fault item,
// keyed by the fields that identify it in the log (kavach id + fault
// code), since the core decode pipeline assigns faults no row id of its
// own.
type Label struct {
	KavachID  uint32
	FaultCode uint16
	Note      string
}

// Store is the PostgreSQL-backed fault-CRUD collaborator. It is a thin
// parameterized-query wrapper, grounded on the same pool-holding shape as
// every other storage layer in the pack; it carries no batching or
// background flush because fault labels are a low-volume, operator-driven
// write path, unlike the high-volume ingestion the pack's batched stores
// are built for.
type Store struct {
	pool *pgxpool.Pool
}

var (
	handlesMu sync.Mutex
	handles   = map[string]*Store{}
)

// Open returns the Store registered under name, opening and pinging a new
// pgxpool connection to connStr if none exists yet (spec §5: DB handle
// "kept keyed by connection name, lazily opened, and reused").
func Open(ctx context.Context, name, connStr string) (*Store, error) {
	handlesMu.Lock()
	defer handlesMu.Unlock()

	if s, ok := handles[name]; ok {
		return s, nil
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("faultstore: pgxpool.New(%q): %w", name, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("faultstore: ping(%q): %w", name, err)
	}

	s := &Store{pool: pool}
	handles[name] = s
	return s, nil
}

// UpsertLabel inserts or replaces the note for one fault item.
func (s *Store) UpsertLabel(ctx context.Context, l Label) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO fault_labels (kavach_id, fault_code, note)
		VALUES ($1, $2, $3)
		ON CONFLICT (kavach_id, fault_code) DO UPDATE SET note = EXCLUDED.note`,
		l.KavachID, l.FaultCode, l.Note)
	if err != nil {
		return fmt.Errorf("faultstore: upsert label: %w", err)
	}
	return nil
}

// ListLabels returns every label recorded for kavachID.
func (s *Store) ListLabels(ctx context.Context, kavachID uint32) ([]Label, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT kavach_id, fault_code, note FROM fault_labels WHERE kavach_id = $1`,
		kavachID)
	if err != nil {
		return nil, fmt.Errorf("faultstore: list labels: %w", err)
	}
	defer rows.Close()

	var out []Label
	for rows.Next() {
		var l Label
		if err := rows.Scan(&l.KavachID, &l.FaultCode, &l.Note); err != nil {
			return nil, fmt.Errorf("faultstore: scan label: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// DeleteLabel removes the label for (kavachID, faultCode), if any.
func (s *Store) DeleteLabel(ctx context.Context, kavachID uint32, faultCode uint16) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM fault_labels WHERE kavach_id = $1 AND fault_code = $2`,
		kavachID, faultCode)
	if err != nil {
		return fmt.Errorf("faultstore: delete label: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool and removes name from the
// registry.
func Close(name string) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	if s, ok := handles[name]; ok {
		s.pool.Close()
		delete(handles, name)
	}
}
