package id

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
	"time"
)

// Generator creates fresh entity ids. Callers pass the one-letter kind
// prefix used throughout the persisted layout (t, c, p, e, m).
type Generator interface {
	NewID(prefix string) string
}

// PrefixedGenerator yields ids unique within the process lifetime:
// prefix + millisecond timestamp + sequence + random suffix.
type PrefixedGenerator struct {
	seq atomic.Uint64
}

func NewPrefixedGenerator() *PrefixedGenerator {
	return &PrefixedGenerator{}
}

func (g *PrefixedGenerator) NewID(prefix string) string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)

	return prefix +
		strconv.FormatUint(uint64(time.Now().UnixMilli()), 36) +
		strconv.FormatUint(g.seq.Add(1), 36) +
		hex.EncodeToString(buf)
}

// Sequence is a deterministic generator for tests: prefix plus a counter.
type Sequence struct {
	n atomic.Uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) NewID(prefix string) string {
	return prefix + strconv.FormatUint(s.n.Add(1), 10)
}
