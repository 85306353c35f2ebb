package store

import (
	"context"
	"errors"
)

type fakeTag int64

func (t fakeTag) String() string      { return "INSERT 0 1" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = r.vals[i].(int)
		case *string:
			*p = r.vals[i].(string)
		default:
			return errors.New("unsupported dest")
		}
	}
	return nil
}

type fakeRows struct {
	data   [][]any
	i      int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}
func (r *fakeRows) Scan(dest ...any) error { return fakeRow{vals: r.data[r.i-1]}.Scan(dest...) }
func (r *fakeRows) Err() error             { return r.err }
func (r *fakeRows) Close()                 { r.closed = true }
func (r *fakeRows) Columns() []string      { return nil }

type fakeQuerier struct {
	tag     CommandTag
	execErr error
	rows    *fakeRows
	qErr    error
	row     fakeRow
	lastSQL string
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	f.lastSQL = sql
	return f.tag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	f.lastSQL = sql
	if f.qErr != nil {
		return nil, f.qErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) Row {
	f.lastSQL = sql
	return f.row
}
