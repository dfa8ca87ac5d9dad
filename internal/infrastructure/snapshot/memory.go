// Package snapshot stores computed labels as immutable frozen snapshots.
// Versions increase monotonically per (labelType, externalRefId) so a frozen
// label can later be diffed against its successors.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/labelforge/backend/internal/domain"
)

type refKey struct {
	labelType domain.LabelType
	refID     string
}

// MemoryStore is a thread-safe in-memory SnapshotRepository.
type MemoryStore struct {
	mutex     sync.RWMutex
	snapshots map[refKey][]*domain.LabelSnapshot
}

// NewMemoryStore creates an empty snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[refKey][]*domain.LabelSnapshot),
	}
}

// Freeze appends a new immutable snapshot at the next version for the
// reference. The stored payload is never modified afterwards.
func (s *MemoryStore) Freeze(ctx context.Context, labelType domain.LabelType, externalRefID, title string, payload domain.LabelComputationResult) (*domain.LabelSnapshot, error) {
	if externalRefID == "" {
		return nil, domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := refKey{labelType: labelType, refID: externalRefID}
	snap := &domain.LabelSnapshot{
		ID:            uuid.NewString(),
		LabelType:     labelType,
		ExternalRefID: externalRefID,
		Title:         title,
		Payload:       payload,
		Version:       len(s.snapshots[key]) + 1,
		FrozenAt:      time.Now().UTC(),
	}
	s.snapshots[key] = append(s.snapshots[key], snap)

	copied := *snap
	return &copied, nil
}

// Latest returns the most recent snapshot for a reference.
func (s *MemoryStore) Latest(ctx context.Context, labelType domain.LabelType, externalRefID string) (*domain.LabelSnapshot, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	versions := s.snapshots[refKey{labelType: labelType, refID: externalRefID}]
	if len(versions) == 0 {
		return nil, domain.ErrSnapshotNotFound
	}

	copied := *versions[len(versions)-1]
	return &copied, nil
}

// Versions returns every snapshot for a reference in version order.
func (s *MemoryStore) Versions(ctx context.Context, labelType domain.LabelType, externalRefID string) ([]*domain.LabelSnapshot, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	versions := s.snapshots[refKey{labelType: labelType, refID: externalRefID}]
	if len(versions) == 0 {
		return nil, domain.ErrSnapshotNotFound
	}

	out := make([]*domain.LabelSnapshot, len(versions))
	for i, snap := range versions {
		copied := *snap
		out[i] = &copied
	}
	return out, nil
}
