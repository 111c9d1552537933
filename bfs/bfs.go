package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth and its parent link.
// hasParent distinguishes the root, since V has no reserved sentinel.
type queueItem[V comparable] struct {
	v         V
	depth     int
	parent    V
	hasParent bool
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	neighbors NeighborFunc[V]
	opts      Options[V]
	ctx       context.Context
	queue     []queueItem[V]
	visited   map[V]bool
	res       *Result[V]
}

// BFS runs breadth-first search from start, expanding the frontier
// through neighbors and applying any number of functional Options.
// Returns ErrNilNeighborFunc for a missing neighbor function,
// ErrOptionViolation for bad options, ErrNeighbors for lookup failures,
// or any user-supplied hook error.
func BFS[V comparable](neighbors NeighborFunc[V], start V, opts ...Option[V]) (*Result[V], error) {
	if neighbors == nil {
		return nil, ErrNilNeighborFunc
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	w := &walker[V]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		visited:   make(map[V]bool),
		res: &Result[V]{
			Order:  []V{},
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(queueItem[V]{v: start, depth: 0})
	// Main loop
	return w.res, w.loop()
}

// enqueue marks item.v visited at its depth, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker[V]) enqueue(item queueItem[V]) {
	w.visited[item.v] = true
	w.res.Depth[item.v] = item.depth
	if item.hasParent {
		w.res.Parent[item.v] = item.parent
	}
	w.opts.OnEnqueue(item.v, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, goal hit, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		stop, err := w.visit(item)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order, calls OnVisit, and evaluates the
// goal predicate. A true stop result ends the search successfully.
func (w *walker[V]) visit(item queueItem[V]) (stop bool, err error) {
	w.res.Order = append(w.res.Order, item.v)
	if err = w.opts.OnVisit(item.v, item.depth); err != nil {
		return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	if w.opts.Goal != nil && w.opts.Goal(item.v) {
		w.res.Found = true
		w.res.Goal = item.v
		return true, nil
	}
	return false, nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.v, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(queueItem[V]{v: nbr, depth: nextDepth, parent: item.v, hasParent: true})
		}
	}
	return nil
}
