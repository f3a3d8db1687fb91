// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ordering implements the swap-based reorder protocol shared by
// pages, sections, and blocks. The algorithm operates on (id, order)
// pairs; callers project their entities into entries and persist the
// returned changes.
package ordering

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidMove is returned when a directional move would go out of
// bounds or the referenced item is not in the collection. The operation
// is a no-op in that case.
var ErrInvalidMove = errors.New("invalid move")

// Direction is the direction of a single-step reorder.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Entry is an item's identity and its persisted integer order field.
type Entry struct {
	ID    string
	Order int
}

// Change is one (id, new order) pair the caller must persist.
type Change struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Move swaps the order values of the item with the given id and its
// neighbor in the requested direction. Exactly two changes are returned;
// the rest of the collection keeps its order values, so gaps between
// operations are tolerated. Moving past either end fails with
// ErrInvalidMove and changes nothing.
func Move(entries []Entry, id string, dir Direction) ([]Change, error) {
	if dir != Up && dir != Down {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidMove, dir)
	}

	sorted := sortedCopy(entries)
	pos := indexOf(sorted, id)
	if pos < 0 {
		return nil, fmt.Errorf("%w: item not found", ErrInvalidMove)
	}

	neighbor := pos - 1
	if dir == Down {
		neighbor = pos + 1
	}
	if neighbor < 0 || neighbor >= len(sorted) {
		return nil, ErrInvalidMove
	}

	// Swap the persisted order values, not array positions.
	return []Change{
		{ID: sorted[neighbor].ID, Order: sorted[pos].Order},
		{ID: sorted[pos].ID, Order: sorted[neighbor].Order},
	}, nil
}

// DragTo removes the dragged item from its sorted position, reinserts it
// at the target's position (before the target when dragging upward,
// after it when dragging downward), and renumbers the whole collection
// as a contiguous 0..n-1 sequence. All entries whose order value changed
// are returned.
func DragTo(entries []Entry, draggedID, targetID string) ([]Change, error) {
	if draggedID == targetID {
		return nil, nil
	}

	sorted := sortedCopy(entries)
	from := indexOf(sorted, draggedID)
	to := indexOf(sorted, targetID)
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("%w: item not found", ErrInvalidMove)
	}

	dragged := sorted[from]
	rest := append(append([]Entry{}, sorted[:from]...), sorted[from+1:]...)

	// Inserting at the target's original index lands the item before the
	// target when dragging upward; when dragging downward the removal has
	// shifted the target left by one, so the same index lands it after.
	insert := to
	result := append(append(append([]Entry{}, rest[:insert]...), dragged), rest[insert:]...)

	var changes []Change
	for i, e := range result {
		if e.Order != i {
			changes = append(changes, Change{ID: e.ID, Order: i})
		}
	}
	return changes, nil
}

func sortedCopy(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func indexOf(entries []Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
