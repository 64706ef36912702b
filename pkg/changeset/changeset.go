// Package changeset stages repository writes for a single service call and
// replays them in one transaction when the caller saves changes.
package changeset

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type Op func(tx *gorm.DB) error

type Set struct {
	mu  sync.Mutex
	ops []Op
}

type contextKey struct{}

// Begin returns ctx carrying a fresh Set, or ctx unchanged when it already
// carries one.
func Begin(ctx context.Context) context.Context {
	if From(ctx) != nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, &Set{})
}

func From(ctx context.Context) *Set {
	s, _ := ctx.Value(contextKey{}).(*Set)
	return s
}

// Stage queues op on the Set carried by ctx. Without one the op runs
// immediately against db.
func Stage(ctx context.Context, db *gorm.DB, op Op) error {
	if s := From(ctx); s != nil {
		s.Add(op)
		return nil
	}
	return op(db.WithContext(ctx))
}

// Save commits whatever ctx's Set holds. It is a no-op without a Set.
func Save(ctx context.Context, db *gorm.DB) error {
	s := From(ctx)
	if s == nil {
		return nil
	}
	return s.Commit(ctx, db)
}

func (s *Set) Add(op Op) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op)
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ops)
}

func (s *Set) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = nil
}

// Commit runs the staged ops in order inside one transaction. The Set is
// emptied whether or not the transaction succeeds.
func (s *Set) Commit(ctx context.Context, db *gorm.DB) error {
	s.mu.Lock()
	ops := s.ops
	s.ops = nil
	s.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
