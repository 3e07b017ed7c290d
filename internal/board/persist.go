package board

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/runoshun/focusboard/internal/domain"
)

// SnapshotVersion is the schema version written into every snapshot.
const SnapshotVersion = 1

// Persister loads and saves whole board snapshots.
type Persister interface {
	// Load returns the persisted board, or nil if nothing is stored.
	// Malformed payloads return domain.ErrSnapshotDiscarded.
	Load(ctx context.Context) (*domain.Board, error)

	// Save writes the board, replacing any previous snapshot.
	Save(ctx context.Context, b domain.Board) error
}

// snapshotEnvelope is the persisted JSON document:
//
//	{"version":1,"state":{"columns":{...},"doneArchiveHours":24}}
type snapshotEnvelope struct {
	State   snapshotState `json:"state"`
	Version int           `json:"version"`
}

type snapshotState struct {
	Columns          map[domain.ColumnID]*domain.Column `json:"columns"`
	DoneArchiveHours json.RawMessage                    `json:"doneArchiveHours,omitempty"`
}

// SnapshotPersister stores the board as a versioned JSON document under a
// single key of a domain.KVStore.
type SnapshotPersister struct {
	kv     domain.KVStore
	logger domain.Logger
	key    string
}

// Ensure SnapshotPersister implements Persister.
var _ Persister = (*SnapshotPersister)(nil)

// NewSnapshotPersister creates a persister writing to key in kv.
func NewSnapshotPersister(kv domain.KVStore, key string, logger domain.Logger) *SnapshotPersister {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &SnapshotPersister{kv: kv, key: key, logger: logger}
}

// Load reads and migrates the stored snapshot.
// Unparseable JSON or a payload missing any canonical column is discarded
// with domain.ErrSnapshotDiscarded.
// The archive threshold falls back to the default when absent or not a
// finite number, and is otherwise rounded and clamped to at least 1.
func (p *SnapshotPersister) Load(ctx context.Context) (*domain.Board, error) {
	data, err := p.kv.Get(ctx, p.key)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", p.key, err)
	}
	if data == nil {
		return nil, nil
	}

	board, reason := decodeSnapshot(data)
	if board == nil {
		p.logger.Warn("persist", fmt.Sprintf("discarding snapshot %q: %s", p.key, reason))
		return nil, domain.ErrSnapshotDiscarded
	}
	return board, nil
}

// Save serializes the columns and archive threshold.
func (p *SnapshotPersister) Save(ctx context.Context, b domain.Board) error {
	data, err := encodeSnapshot(b)
	if err != nil {
		return err
	}
	if err := p.kv.Set(ctx, p.key, data); err != nil {
		return fmt.Errorf("write snapshot %q: %w", p.key, err)
	}
	return nil
}

func encodeSnapshot(b domain.Board) ([]byte, error) {
	columns := make(map[domain.ColumnID]*domain.Column, len(b.Columns))
	for id, c := range b.Columns {
		column := c
		columns[id] = &column
	}
	hours, err := json.Marshal(b.DoneArchiveHours)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	data, err := json.Marshal(snapshotEnvelope{
		Version: SnapshotVersion,
		State: snapshotState{
			Columns:          columns,
			DoneArchiveHours: hours,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot returns nil and a reason when the payload is unusable.
func decodeSnapshot(data []byte) (*domain.Board, string) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, "invalid JSON: " + err.Error()
	}
	if !domain.HasAllColumns(env.State.Columns) {
		return nil, "missing columns"
	}

	columns := make(map[domain.ColumnID]domain.Column, len(env.State.Columns))
	for _, id := range domain.DefaultColumnOrder() {
		column := env.State.Columns[id]
		if column == nil {
			return nil, fmt.Sprintf("column %q is null", id)
		}
		columns[id] = *column
	}

	return &domain.Board{
		Columns:          columns,
		ColumnOrder:      domain.DefaultColumnOrder(),
		DoneArchiveHours: decodeArchiveHours(env.State.DoneArchiveHours),
	}, ""
}

func decodeArchiveHours(raw json.RawMessage) int {
	if len(raw) == 0 || string(raw) == "null" {
		return domain.DefaultDoneArchiveHours
	}
	var hours float64
	if err := json.Unmarshal(raw, &hours); err != nil || math.IsNaN(hours) {
		return domain.DefaultDoneArchiveHours
	}
	return domain.ClampArchiveHours(hours, domain.DefaultDoneArchiveHours)
}
