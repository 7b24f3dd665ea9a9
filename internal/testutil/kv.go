// Package testutil provides shared test helpers: a failing key-value
// store for exercising degraded-read paths and a fixed clock for
// deterministic streak and statistics tests.
package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/musagunn/pomotimer/internal/ports"
)

// ErrStoreBroken is the error every FailingStore operation returns
var ErrStoreBroken = errors.New("store broken")

// FailingStore is a KeyValueStore whose every operation fails. FailReads
// and FailWrites narrow the failure to one side when set.
type FailingStore struct {
	FailReads  bool
	FailWrites bool
}

// NewFailingStore fails both reads and writes
func NewFailingStore() *FailingStore {
	return &FailingStore{FailReads: true, FailWrites: true}
}

var _ ports.KeyValueStore = (*FailingStore)(nil)

func (s *FailingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.FailReads {
		return "", false, ErrStoreBroken
	}
	return "", false, nil
}

func (s *FailingStore) Set(ctx context.Context, key, value string) error {
	if s.FailWrites {
		return ErrStoreBroken
	}
	return nil
}

func (s *FailingStore) Remove(ctx context.Context, key string) error {
	if s.FailWrites {
		return ErrStoreBroken
	}
	return nil
}

func (s *FailingStore) Close() error { return nil }

// FixedClock returns a preset instant and can be stepped by tests
type FixedClock struct {
	Current time.Time
}

var _ ports.Clock = (*FixedClock)(nil)

// Now returns the preset instant
func (c *FixedClock) Now() time.Time { return c.Current }

// Advance moves the clock forward by d
func (c *FixedClock) Advance(d time.Duration) { c.Current = c.Current.Add(d) }
