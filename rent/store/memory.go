// Package store provides LeaseStore implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/rent-engine/rent"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu     sync.RWMutex
	leases map[rent.LeaseID]rent.Lease
}

func NewMemory() *Memory {
	return &Memory{leases: make(map[rent.LeaseID]rent.Lease)}
}

// Save inserts or replaces a lease.
func (m *Memory) Save(_ context.Context, lease rent.Lease) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leases[lease.ID] = lease
	return nil
}

// Get returns the lease, or nil if it does not exist.
func (m *Memory) Get(_ context.Context, id rent.LeaseID) (*rent.Lease, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lease, ok := m.leases[id]
	if !ok {
		return nil, nil
	}
	return &lease, nil
}

// List returns all leases ordered by unit name.
func (m *Memory) List(_ context.Context) ([]rent.Lease, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]rent.Lease, 0, len(m.leases))
	for _, lease := range m.leases {
		result = append(result, lease)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UnitName < result[j].UnitName })
	return result, nil
}

// Delete removes a lease. Deleting a missing lease is a no-op.
func (m *Memory) Delete(_ context.Context, id rent.LeaseID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.leases, id)
	return nil
}
