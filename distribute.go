package nerf

import (
	"math"
	"math/bits"
)

// Distribute splits available space between requirements and returns one size per requirement.
//
// Lower bounds are served first. The slack left over is shared between the
// requirements carrying a flex weight, in proportion to their weights and
// without passing their upper bounds. When the lower bounds alone do not fit,
// every lower bound is scaled down proportionally so the sizes still add up
// to available.
//
// Slack that no flexible requirement can absorb stays unallocated: upper
// bounds win over filling the space.
//
// Bounds and weights whose total passes math.MaxInt are scaled down by the
// same power of two before sharing, so the smallest of them may lose their
// share to rounding.
func Distribute(reqs []SizeRequirement, available int) []int {
	sizes := make([]int, len(reqs))
	if available <= 0 || len(reqs) == 0 {
		return sizes
	}

	need, shift := scaledTotal(len(reqs), func(i int) int { return reqs[i].min })
	if shift > 0 || need > available {
		required := need
		if shift > 0 {
			required = math.MaxInt
		}
		logger.Debug("layout overflow", "required", required, "available", available, "children", len(reqs))
		shrink(sizes, reqs, need, shift, available)
		return sizes
	}

	for i, r := range reqs {
		sizes[i] = r.min
	}
	spread(sizes, reqs, available-need)
	return sizes
}

// shrink gives every requirement with a lower bound its share of available,
// proportional to its part of need, the lower bounds shifted right by shift.
// The rounding remainder goes one unit at a time to the same requirements, in
// index order.
func shrink(sizes []int, reqs []SizeRequirement, need int, shift uint, available int) {
	given := 0
	for i, r := range reqs {
		if r.min == 0 {
			continue
		}
		sizes[i] = min(mulDiv(r.min>>shift, available, need), available-given)
		given += sizes[i]
	}
	// The remainder is smaller than the number of bounded requirements.
	for i := 0; i < len(reqs) && given < available; i++ {
		if reqs[i].min == 0 {
			continue
		}
		sizes[i]++
		given++
	}
}

// spread hands slack to flexible requirements on top of their lower bounds.
func spread(sizes []int, reqs []SizeRequirement, slack int) {
	pool := make([]int, 0, len(reqs))
	for i, r := range reqs {
		if r.flex > 0 && sizes[i] < r.max {
			pool = append(pool, i)
		}
	}

	for slack > 0 && len(pool) > 0 {
		total, shift := scaledTotal(len(pool), func(j int) int { return reqs[pool[j]].flex })
		weight := func(i int) int { return reqs[i].flex >> shift }

		// Cap whoever would pass its upper bound, then start over with what is left.
		open := make([]int, 0, len(pool))
		for _, i := range pool {
			room := reqs[i].max - sizes[i]
			if mulDiv(slack, weight(i), total) > room {
				room = min(room, slack)
				sizes[i] += room
				slack -= room
				continue
			}
			open = append(open, i)
		}
		if len(open) < len(pool) {
			pool = open
			continue
		}

		rest := slack
		for _, i := range pool {
			share := min(mulDiv(slack, weight(i), total), rest)
			sizes[i] += share
			rest -= share
		}
		for rest > 0 {
			gave := false
			for _, i := range pool {
				if rest > 0 && sizes[i] < reqs[i].max {
					sizes[i]++
					rest--
					gave = true
				}
			}
			if !gave {
				break
			}
		}
		return
	}
}

// scaledTotal returns the sum of the n non-negative values at(0) to at(n-1),
// each shifted right by shift. Shift is zero when the plain sum fits in an int,
// and otherwise just large enough for the shifted sum to fit.
func scaledTotal(n int, at func(int) int) (total int, shift uint) {
	var hi, lo uint64
	for i := 0; i < n; i++ {
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(at(i)), 0)
		hi += carry
	}
	if hi == 0 && lo <= math.MaxInt {
		return int(lo), 0
	}
	// The sum is below 1<<(64+len(hi)).
	shift = uint(bits.Len64(hi)) + 1
	for i := 0; i < n; i++ {
		total += at(i) >> shift
	}
	return total, shift
}

// mulDiv returns a*b/c for non-negative a, b and positive c, with a or b at most c.
// The intermediate product does not overflow.
func mulDiv(a, b, c int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	q, _ := bits.Div64(hi, lo, uint64(c))
	return int(q)
}
