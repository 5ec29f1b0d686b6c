package oddcounter

import (
	"errors"
	"testing"
)

func TestNewRejectsEven(t *testing.T) {
	tests := []struct {
		name    string
		initial uint32
	}{
		{"zero", 0},
		{"small even", 4},
		{"large even", 4294967294},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.initial)
			if err == nil {
				t.Fatalf("New(%d) succeeded, want error", tt.initial)
			}
			if c != nil {
				t.Errorf("New(%d) returned a counter alongside an error", tt.initial)
			}
			if !errors.Is(err, ErrEvenInitialValue) {
				t.Errorf("New(%d) error = %v, want ErrEvenInitialValue", tt.initial, err)
			}
		})
	}
}

func TestNewAcceptsOdd(t *testing.T) {
	tests := []struct {
		name    string
		initial uint32
	}{
		{"one", 1},
		{"five", 5},
		{"max uint32", 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.initial)
			if err != nil {
				t.Fatalf("New(%d) failed: %v", tt.initial, err)
			}
			if got := c.Current(); got != tt.initial {
				t.Errorf("Current() = %d, want %d", got, tt.initial)
			}
		})
	}
}

func TestIncrementAdvancesByTwo(t *testing.T) {
	tests := []struct {
		name    string
		initial uint32
		steps   int
		want    uint32
	}{
		{"once from five", 5, 1, 7},
		{"three times from one", 1, 3, 7},
		{"no steps", 9, 0, 9},
		{"many steps", 1, 1000, 2001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.initial)
			if err != nil {
				t.Fatalf("New(%d) failed: %v", tt.initial, err)
			}
			for i := 0; i < tt.steps; i++ {
				c.Increment()
			}
			if got := c.Current(); got != tt.want {
				t.Errorf("Current() after %d increments = %d, want %d", tt.steps, got, tt.want)
			}
		})
	}
}

func TestValueStaysOdd(t *testing.T) {
	c, err := New(3)
	if err != nil {
		t.Fatalf("New(3) failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		if c.Current()%2 != 1 {
			t.Fatalf("value %d is even after %d increments", c.Current(), i)
		}
		c.Increment()
	}
}

func TestIncrementWrapsAround(t *testing.T) {
	c, err := New(4294967295)
	if err != nil {
		t.Fatalf("New(max) failed: %v", err)
	}
	c.Increment()
	if got := c.Current(); got != 1 {
		t.Errorf("Current() after wraparound = %d, want 1", got)
	}
	if c.Current()%2 != 1 {
		t.Error("wraparound broke oddness")
	}
}

func TestCurrentIsIdempotent(t *testing.T) {
	c, err := New(11)
	if err != nil {
		t.Fatalf("New(11) failed: %v", err)
	}
	first := c.Current()
	second := c.Current()
	if first != second {
		t.Errorf("consecutive Current() calls returned %d then %d", first, second)
	}
}
