package oddcounter

// Counter holds a uint32 that is odd at every observable point in its
// lifetime. Instances are created only through New, which rejects even
// starting values, and mutated only through Increment, which advances by an
// even step. Oddness therefore holds by construction and is never
// re-validated.
type Counter struct {
	value uint32
}

// New creates a Counter starting at initial.
//
// initial must be odd; an even value (including zero) yields no Counter and
// an error satisfying errors.Is(err, ErrEvenInitialValue).
func New(initial uint32) (*Counter, error) {
	if initial%2 == 0 {
		return nil, errorf("New", "%w: %d", ErrEvenInitialValue, initial)
	}
	return &Counter{value: initial}, nil
}

// Increment advances the counter by 2. The step is even and the current
// value is odd, so the result stays odd; this holds through uint32
// wraparound as well.
func (c *Counter) Increment() {
	c.value += 2
}

// Current returns the counter's value without mutating it.
func (c *Counter) Current() uint32 {
	return c.value
}
