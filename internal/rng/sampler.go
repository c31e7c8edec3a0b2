// internal/rng/sampler.go

package rng

import (
	"errors"
	"sort"
)

// Candidate is one participant entering the draw with its ticket weight.
type Candidate struct {
	Username string
	Weight   int64
}

// weightedEntry carries the running cumulative total up through this entry,
// so a uniform integer in [0, total) maps to a candidate by binary search.
type weightedEntry struct {
	username   string
	weight     int64
	cumulative int64
}

// Outcome reports the winners of one draw, in draw order.
type Outcome struct {
	Winners   []string
	Requested int
	Effective int // Requested clamped to the eligible population

	// Clamped is set when fewer eligible candidates existed than requested;
	// every eligible candidate is then a winner.
	Clamped bool

	// NoEligible is set when no candidate had positive weight. The draw is
	// still a valid (empty) outcome, not an error.
	NoEligible bool

	TotalWeight int64
}

// Draw performs count sequential weighted draws without replacement.
//
// Each draw selects a remaining candidate with probability proportional to
// its weight over the exact remaining total; the selected candidate is
// removed from the pool before the next draw. The cumulative sums are plain
// int64s, recomputed after every removal, so no floating-point bias can
// accumulate over a long draw.
func Draw(candidates []Candidate, count int, src Source) (Outcome, error) {
	if count <= 0 {
		return Outcome{}, errors.New("rng: must draw at least 1 winner")
	}

	out := Outcome{Requested: count}

	// Drop zero- and negative-weight candidates; they hold no tickets.
	pool := make([]weightedEntry, 0, len(candidates))
	var total int64
	for _, c := range candidates {
		if c.Weight <= 0 {
			continue
		}
		total += c.Weight
		pool = append(pool, weightedEntry{
			username:   c.Username,
			weight:     c.Weight,
			cumulative: total,
		})
	}
	out.TotalWeight = total

	if len(pool) == 0 {
		out.NoEligible = true
		return out, nil
	}

	out.Effective = count
	if len(pool) < count {
		out.Effective = len(pool)
		out.Clamped = true
	}

	out.Winners = make([]string, 0, out.Effective)
	for i := 0; i < out.Effective; i++ {
		remaining := pool[len(pool)-1].cumulative

		r, err := Int64n(src, remaining)
		if err != nil {
			return Outcome{}, err
		}

		// First entry whose cumulative exceeds r.
		idx := sort.Search(len(pool), func(j int) bool { return r < pool[j].cumulative })

		out.Winners = append(out.Winners, pool[idx].username)

		// Remove the winner and close the gap in the cumulative totals.
		removed := pool[idx].weight
		pool = append(pool[:idx], pool[idx+1:]...)
		for j := idx; j < len(pool); j++ {
			pool[j].cumulative -= removed
		}
	}

	return out, nil
}
