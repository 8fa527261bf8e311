// Package sequence issues the formatted monotonic identifiers used across
// the record stores (E001, T0001, TR001, EXP0001).
package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Counter hands out the next identifier for one prefix. Safe for
// concurrent use.
type Counter struct {
	mu     sync.Mutex
	prefix string
	width  int
	last   int64
}

func NewCounter(prefix string, width int) *Counter {
	return &Counter{prefix: prefix, width: width}
}

// Next returns the next identifier in the sequence, starting at 1.
func (c *Counter) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last++
	return Format(c.prefix, c.width, c.last)
}

// Advance raises the counter so that the next issued value is greater than n.
// Used when identifiers were assigned externally.
func (c *Counter) Advance(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > c.last {
		c.last = n
	}
}

// Format renders an identifier like Format("TR", 3, 7) == "TR007". Values
// wider than width keep all their digits.
func Format(prefix string, width int, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// Suffix parses the numeric part of an identifier. Identifiers are expected
// to be prefix + digits; anything else is a contract violation by the caller.
func Suffix(prefix, id string) (int64, error) {
	raw := strings.TrimPrefix(id, prefix)
	if raw == id {
		return 0, fmt.Errorf("identifier %q does not carry prefix %q", id, prefix)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q has a non-numeric suffix: %w", id, err)
	}
	return n, nil
}
