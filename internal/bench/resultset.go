package bench

import "sort"

// Range is one closed-open guessing range exercised by the harness.
type Range struct {
	Min int
	Max int
}

// Size returns the count of integers the target may occupy.
func (r Range) Size() int {
	return r.Max - r.Min
}

// ResultSet maps, per strategy, range sizes to the per-trial guess counts
// collected there. A nil series means the strategy failed to converge on at
// least one trial of that range, and the whole series was discarded.
// Strategies keep their configured order; it is read-only once RunTests
// returns.
type ResultSet struct {
	order   []string
	results map[string]map[int][]int
}

func newResultSet() *ResultSet {
	return &ResultSet{results: make(map[string]map[int][]int)}
}

func (rs *ResultSet) add(strategy string, rangeSize int, counts []int) {
	if _, ok := rs.results[strategy]; !ok {
		rs.order = append(rs.order, strategy)
		rs.results[strategy] = make(map[int][]int)
	}
	rs.results[strategy][rangeSize] = counts
}

// Strategies returns strategy names in the order they were benchmarked.
func (rs *ResultSet) Strategies() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)
	return out
}

// RangeSizes returns the sorted union of range sizes across all strategies.
func (rs *ResultSet) RangeSizes() []int {
	seen := make(map[int]struct{})
	for _, mapping := range rs.results {
		for size := range mapping {
			seen[size] = struct{}{}
		}
	}
	sizes := make([]int, 0, len(seen))
	for size := range seen {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Series returns the guess counts a strategy collected for a range size.
// ok is false when the strategy never ran that size; a true ok with a nil
// series is the "no result" sentinel.
func (rs *ResultSet) Series(strategy string, rangeSize int) (counts []int, ok bool) {
	mapping, ok := rs.results[strategy]
	if !ok {
		return nil, false
	}
	counts, ok = mapping[rangeSize]
	return counts, ok
}
