package memory

import (
	"sync"
	"time"

	"logistic-api/pkg/docstore"
)

type implStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]docstore.Record
	clock       func() time.Time
}

var _ docstore.Store = &implStore{}

// New returns an in-process Store. Collections are created on first use.
func New() docstore.Store {
	return newStore(time.Now)
}

func newStore(clock func() time.Time) *implStore {
	return &implStore{
		collections: map[string]map[string]docstore.Record{},
		clock:       clock,
	}
}
