package diag

// Counters tracks the three per-search metrics the diagnostics banner
// reports. A zero-value Counters is ready to use.
type Counters struct {
	Steps       int64
	Memops      int64
	Comparisons int64
}

// Step increments Steps, once per edge relaxation.
func (c *Counters) Step() {
	c.Steps++
}

// Mem increments Memops, once per meaningful write to owned state
// (prev[], g[], the trace ledger, the open/closed sets).
func (c *Counters) Mem() {
	c.Memops++
}

// Cmp increments Comparisons, once per conditional predicate in the
// algorithm's inner loop.
func (c *Counters) Cmp() {
	c.Comparisons++
}

// Reset zeroes all three counters, so a single Counters value can be
// reused across successive runs without reallocation.
func (c *Counters) Reset() {
	*c = Counters{}
}
