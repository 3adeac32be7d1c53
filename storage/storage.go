// Package storage persists named string slots and the best-score record built on them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Slots is a durable map of named string values.
type Slots interface {
	Get(ctx context.Context, name string) (string, error)
	Put(ctx context.Context, name, value string) error
	Close() error
}

// ValidateName rejects slot names that cannot be stored by every backend.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("slot name is required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid slot name %q", name)
	}
	return nil
}

// MemorySlots keeps slots in process memory.
type MemorySlots struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemorySlots creates an empty in-memory store.
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{items: make(map[string]string)}
}

// Get returns the value stored under name.
func (m *MemorySlots) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[name]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Put stores value under name.
func (m *MemorySlots) Put(ctx context.Context, name, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[name] = value
	return nil
}

// Close is a no-op.
func (m *MemorySlots) Close() error {
	return nil
}
