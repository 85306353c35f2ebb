package repo

import (
	"context"
	"sync"

	perr "tallybook/internal/platform/errors"
	"tallybook/internal/services/api/numbering/domain"
)

// Memory is a process local Book used when Postgres is disabled
// Locked holds one mutex for every key
type Memory struct {
	mu   sync.Mutex
	recs []domain.Issued
	seen map[string]struct{}
}

// NewMemory returns an empty ledger
func NewMemory() *Memory {
	return &Memory{seen: map[string]struct{}{}}
}

// Count implements domain.Counter
func (m *Memory) Count(ctx context.Context, s domain.Scope) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (*memLedger)(m).Count(ctx, s)
}

// Append implements domain.Ledger
func (m *Memory) Append(ctx context.Context, rec domain.Issued) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (*memLedger)(m).Append(ctx, rec)
}

// Locked runs fn while holding the ledger lock
func (m *Memory) Locked(ctx context.Context, _ string, fn func(l domain.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn((*memLedger)(m))
}

// Issued returns a copy of every record in insertion order
func (m *Memory) Issued() []domain.Issued {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Issued, len(m.recs))
	copy(out, m.recs)
	return out
}

// memLedger is Memory with the lock already held
type memLedger Memory

func (m *memLedger) Count(_ context.Context, s domain.Scope) (int, error) {
	n := 0
	for _, r := range m.recs {
		if s.Includes(r) {
			n++
		}
	}
	return n, nil
}

func (m *memLedger) Append(_ context.Context, rec domain.Issued) error {
	if _, dup := m.seen[rec.Number]; dup {
		return perr.WithField(perr.Conflictf("number %q was already issued", rec.Number), "number")
	}
	m.seen[rec.Number] = struct{}{}
	m.recs = append(m.recs, rec)
	return nil
}
