package meeting

import (
	"context"
	"sort"
	"sync"
	"time"
)

//go:generate mockgen -source=meeting_repo.go -destination=mock/meeting_repo_mock.go -package=mock
type Repository interface {
	// Append stores the meeting and assigns its MeetingID.
	Append(ctx context.Context, m *Meeting) error
	// FindByEmployee returns the employee's meetings ordered by datetime
	// ascending; an unknown employee has no meetings.
	FindByEmployee(ctx context.Context, empID string) ([]Meeting, error)
	ExistsAt(ctx context.Context, empID string, at time.Time) (bool, error)
	// RemoveMatching deletes every meeting at the exact datetime whose topic
	// matches the filter (nil matches any topic) and reports how many went.
	RemoveMatching(ctx context.Context, empID string, at time.Time, topic *string) (int, error)
}

type memoryRepository struct {
	mu         sync.Mutex
	byEmployee map[string][]Meeting
	lastID     int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byEmployee: make(map[string][]Meeting)}
}

func (r *memoryRepository) Append(_ context.Context, m *Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	m.MeetingID = r.lastID
	r.byEmployee[m.EmpID] = append(r.byEmployee[m.EmpID], *m)
	return nil
}

func (r *memoryRepository) FindByEmployee(_ context.Context, empID string) ([]Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byEmployee[empID]
	out := make([]Meeting, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeetingDT.Before(out[j].MeetingDT)
	})
	return out, nil
}

func (r *memoryRepository) ExistsAt(_ context.Context, empID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.byEmployee[empID] {
		if m.MeetingDT.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) RemoveMatching(_ context.Context, empID string, at time.Time, topic *string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byEmployee[empID]
	kept := stored[:0:0]
	removed := 0
	for _, m := range stored {
		if m.MeetingDT.Equal(at) && (topic == nil || m.Topic == *topic) {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	r.byEmployee[empID] = kept
	return removed, nil
}
