// Package counterfile keeps the issued number ledger in a YAML file
//
// Every read and write holds an exclusive flock on "<path>.lock", so several
// CLI processes can share one file. Writes go to a temp file that is renamed
// over the original
package counterfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	perr "tallybook/internal/platform/errors"
	"tallybook/internal/services/api/numbering/domain"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultLockWait bounds how long an operation waits for the file lock
	DefaultLockWait = 5 * time.Second
	retryEvery      = 50 * time.Millisecond
	version         = 1
)

type document struct {
	Version int             `yaml:"version"`
	Issued  []domain.Issued `yaml:"issued"`
}

// File is a domain.Book over one YAML file
type File struct {
	path     string
	lock     *flock.Flock
	lockWait time.Duration

	// flock does not exclude goroutines sharing one handle
	mu sync.Mutex
}

// Option tweaks a File
type Option func(*File)

// WithLockWait sets how long to wait for the lock before giving up
func WithLockWait(d time.Duration) Option {
	return func(f *File) {
		if d > 0 {
			f.lockWait = d
		}
	}
}

// Open returns a File for path; the file is created on the first Append
func Open(path string, opts ...Option) (*File, error) {
	if path == "" {
		return nil, errors.New("counterfile: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("counterfile: %w", err)
	}
	f := &File{path: path, lock: flock.New(path + ".lock"), lockWait: DefaultLockWait}
	for _, o := range opts {
		o(f)
	}
	return f, nil
}

// Path returns the ledger file path
func (f *File) Path() string { return f.path }

// Count implements domain.Counter
func (f *File) Count(ctx context.Context, s domain.Scope) (int, error) {
	var n int
	err := f.withLock(ctx, func() error {
		doc, err := f.load()
		if err != nil {
			return err
		}
		n = count(doc.Issued, s)
		return nil
	})
	return n, err
}

// Append implements domain.Ledger
func (f *File) Append(ctx context.Context, rec domain.Issued) error {
	return f.Locked(ctx, "", func(l domain.Ledger) error { return l.Append(ctx, rec) })
}

// Locked loads the file, runs fn against it and writes it back when fn
// succeeded and appended something. key is ignored, the whole file is locked
func (f *File) Locked(ctx context.Context, _ string, fn func(l domain.Ledger) error) error {
	return f.withLock(ctx, func() error {
		doc, err := f.load()
		if err != nil {
			return err
		}
		tx := &txLedger{doc: doc, seen: make(map[string]struct{}, len(doc.Issued))}
		for _, r := range doc.Issued {
			tx.seen[r.Number] = struct{}{}
		}
		if err := fn(tx); err != nil {
			return err
		}
		if !tx.dirty {
			return nil
		}
		return f.save(tx.doc)
	})
}

// Issued returns every record in the file
func (f *File) Issued(ctx context.Context) ([]domain.Issued, error) {
	var out []domain.Issued
	err := f.withLock(ctx, func() error {
		doc, err := f.load()
		out = doc.Issued
		return err
	})
	return out, err
}

func (f *File) withLock(ctx context.Context, fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	lctx, cancel := context.WithTimeout(ctx, f.lockWait)
	defer cancel()
	ok, err := f.lock.TryLockContext(lctx, retryEvery)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "counterfile: lock %s", f.lock.Path())
	}
	if !ok {
		return perr.Unavailablef("counterfile: %s is locked by another process", f.path)
	}
	defer func() { _ = f.lock.Unlock() }()
	return fn()
}

func (f *File) load() (document, error) {
	var doc document
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return document{Version: version}, nil
	}
	if err != nil {
		return doc, fmt.Errorf("counterfile: %w", err)
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return doc, fmt.Errorf("counterfile: %s: %w", f.path, err)
	}
	if doc.Version == 0 {
		doc.Version = version
	}
	return doc, nil
}

func (f *File) save(doc document) error {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("counterfile: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("counterfile: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("counterfile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("counterfile: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("counterfile: %w", err)
	}
	return nil
}

func count(recs []domain.Issued, s domain.Scope) int {
	n := 0
	for _, r := range recs {
		if s.Includes(r) {
			n++
		}
	}
	return n
}

// txLedger buffers appends until Locked writes the file
type txLedger struct {
	doc   document
	seen  map[string]struct{}
	dirty bool
}

func (t *txLedger) Count(_ context.Context, s domain.Scope) (int, error) {
	return count(t.doc.Issued, s), nil
}

func (t *txLedger) Append(_ context.Context, rec domain.Issued) error {
	if _, dup := t.seen[rec.Number]; dup {
		return perr.WithField(perr.Conflictf("number %q was already issued", rec.Number), "number")
	}
	t.seen[rec.Number] = struct{}{}
	t.doc.Issued = append(t.doc.Issued, rec)
	t.dirty = true
	return nil
}
