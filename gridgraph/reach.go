package gridgraph

import "context"

// ReachFrom finds every cell reachable from seeds under the monotonic rule:
// from a visited cell u, an orthogonal neighbor v is visited iff
// Elevations[v] ≥ Elevations[u]. Ties are always traversable.
// Seeds are always part of the result; out-of-range and repeated seeds are ignored.
//
// The search keeps an explicit LIFO work-list, so its depth is bounded by
// memory rather than by the goroutine stack. Each cell is pushed at most once.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags, predecessors and the work-list.
func (gg *GridGraph) ReachFrom(seeds []int) *Reach {
	r, _ := gg.ReachFromContext(context.Background(), seeds)

	return r
}

// ReachFromContext is ReachFrom with cancellation. The context is polled
// every ctxCheckInterval expansions; on cancellation it returns ctx.Err()
// and no partial set.
func (gg *GridGraph) ReachFromContext(ctx context.Context, seeds []int) (*Reach, error) {
	n := gg.Len()
	reach := &Reach{
		gg:   gg,
		seen: make([]bool, n),
		prev: make([]int, n),
	}
	for i := range reach.prev {
		reach.prev[i] = noPrev
	}

	stack := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if s < 0 || s >= n || reach.seen[s] {
			continue
		}
		reach.seen[s] = true
		reach.count++
		stack = append(stack, s)
	}

	for steps := 0; len(stack) > 0; steps++ {
		if steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ur, uc := gg.Coordinate(u)
		floor := gg.Elevations[ur][uc]
		for _, d := range neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !gg.InBounds(vr, vc) || gg.Elevations[vr][vc] < floor {
				continue
			}
			v := gg.Index(vr, vc)
			if reach.seen[v] {
				continue
			}
			reach.seen[v] = true
			reach.prev[v] = u
			reach.count++
			stack = append(stack, v)
		}
	}

	return reach, nil
}

// Contains reports whether the row-major index idx was reached.
func (r *Reach) Contains(idx int) bool {
	return idx >= 0 && idx < len(r.seen) && r.seen[idx]
}

// Count returns the number of reached cells, seeds included.
func (r *Reach) Count() int {
	return r.count
}

// Indices returns the reached row-major indices in ascending order.
func (r *Reach) Indices() []int {
	out := make([]int, 0, r.count)
	for i, ok := range r.seen {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// PathToSeed returns the chain of cells from idx back to the seed that
// discovered it, idx first and the seed last. Read forwards, it is a route
// water can take from idx into the seed set: every step is level or downhill.
// Returns ErrUnreachable if idx is not in the set.
//
// Complexity: O(path length).
func (r *Reach) PathToSeed(idx int) ([]int, error) {
	if !r.Contains(idx) {
		return nil, ErrUnreachable
	}
	var path []int
	for at := idx; at != noPrev; at = r.prev[at] {
		path = append(path, at)
	}

	return path, nil
}
