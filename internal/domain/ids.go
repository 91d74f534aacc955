package domain

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out ids for new entries, sections and items.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator issues prefix-1, prefix-2, ... and is safe for
// concurrent use. It makes ids reproducible in tests and CLI runs.
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.Prefix + "-" + strconv.Itoa(g.next)
}
