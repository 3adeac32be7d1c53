package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
)

// BestScore is the best-score record kept in one slot as a decimal integer string.
type BestScore struct {
	mu    sync.Mutex
	slots Slots
	name  string
}

// NewBestScore binds the record to slot name.
func NewBestScore(slots Slots, name string) *BestScore {
	return &BestScore{slots: slots, name: name}
}

// ParseScore parses a stored best score; only non-negative decimal integers are accepted.
func ParseScore(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse best score %q: %w", raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("parse best score %q: negative", raw)
	}
	return v, nil
}

// Load returns the stored best. Missing, unreadable or malformed values read as 0.
func (b *BestScore) Load(ctx context.Context) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(ctx)
}

// Record stores score when it strictly exceeds the stored best.
// The returned best is never lower than the stored value, even when the write fails.
func (b *BestScore) Record(ctx context.Context, score int) (int, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.load(ctx)
	if score <= current {
		return current, false, nil
	}
	if err := b.slots.Put(ctx, b.name, strconv.Itoa(score)); err != nil {
		return current, false, fmt.Errorf("write slot %s: %w", b.name, err)
	}
	return score, true, nil
}

func (b *BestScore) load(ctx context.Context) int {
	raw, err := b.slots.Get(ctx, b.name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("best score: read slot %s: %v", b.name, err)
		}
		return 0
	}
	v, err := ParseScore(raw)
	if err != nil {
		log.Printf("best score: %v", err)
		return 0
	}
	return v
}
