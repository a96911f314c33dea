// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"
)

// table is a mutex-guarded map of rows keyed by a monotonically assigned id.
//
// The id counter only grows: ids are never reset or reused, even after the
// row that carried them was deleted. Every accessor hands out copies produced
// by clone, so callers never share memory with the stored rows.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	lastID int64
	clone  func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{
		rows:  make(map[int64]T),
		clone: clone,
	}
}

// create assigns the next id and inserts the row built for it in one
// critical section. guard, when non-nil, is called for every existing row
// first; its first error aborts the insert without consuming an id.
func (t *table[T]) create(build func(id int64) T, guard func(existing T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if guard != nil {
		for _, row := range t.rows {
			if err := guard(row); err != nil {
				var zero T
				return zero, err
			}
		}
	}

	t.lastID++
	row := build(t.lastID)
	t.rows[t.lastID] = t.clone(row)

	return t.clone(row), nil
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row), true
}

// find returns the first row, in id order, for which match reports true.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	for _, row := range t.list() {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// update is a single read-modify-write on the row with the given id.
// guard, when non-nil, is called for every other row before mutate runs.
// The returned bool is false when no row has that id.
func (t *table[T]) update(id int64, guard func(other T) error, mutate func(row *T)) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	row, ok := t.rows[id]
	if !ok {
		return zero, false, nil
	}

	if guard != nil {
		for otherID, other := range t.rows {
			if otherID == id {
				continue
			}
			if err := guard(other); err != nil {
				return zero, true, err
			}
		}
	}

	mutate(&row)
	t.rows[id] = t.clone(row)

	return t.clone(row), true, nil
}

func (t *table[T]) delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// list returns a snapshot of all rows ordered by id ascending.
func (t *table[T]) list() []T {
	t.mu.RLock()
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.clone(t.rows[id]))
	}
	t.mu.RUnlock()

	return out
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
