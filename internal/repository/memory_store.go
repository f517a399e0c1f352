package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// MemoryStore is a volatile Store for development and tests. Everything it
// holds is lost when the process exits. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]*model.User
	submissions map[string]memorySubmission
	seq         uint64
	settings    model.Settings
	now         func() time.Time
}

type memorySubmission struct {
	sub model.ContactSubmission
	seq uint64
}

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store whose settings record is pre-seeded from defaults.
func NewMemoryStore(defaults model.SettingsInput) *MemoryStore {
	s := &MemoryStore{
		users:       make(map[string]*model.User),
		submissions: make(map[string]memorySubmission),
		now:         time.Now,
	}
	s.settings = model.Settings{
		ID:                uuid.NewString(),
		ResendAPIKey:      defaults.ResendAPIKey,
		NotificationEmail: defaults.NotificationEmail,
		UpdatedAt:         s.now().UTC(),
	}
	return s
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrConflict
		}
	}
	user.ID = uuid.NewString()
	stored := *user
	s.users[stored.ID] = &stored
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateContactSubmission(_ context.Context, in model.ContactSubmissionInput) (*model.ContactSubmission, error) {
	sub := model.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Budget:      in.Budget,
		Area:        in.Area,
		Message:     in.Message,
		SubmittedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.seq++
	s.submissions[sub.ID] = memorySubmission{sub: sub, seq: s.seq}
	s.mu.Unlock()

	return &sub, nil
}

func (s *MemoryStore) ListContactSubmissions(context.Context) ([]*model.ContactSubmission, error) {
	s.mu.RLock()
	entries := make([]memorySubmission, 0, len(s.submissions))
	for _, e := range s.submissions {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.sub.SubmittedAt.Equal(b.sub.SubmittedAt) {
			return a.sub.SubmittedAt.After(b.sub.SubmittedAt)
		}
		return a.seq > b.seq
	})

	out := make([]*model.ContactSubmission, len(entries))
	for i := range entries {
		sub := entries[i].sub
		out[i] = &sub
	}
	return out, nil
}

func (s *MemoryStore) GetSettings(context.Context) (*model.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.settings
	return &out, nil
}

func (s *MemoryStore) UpsertSettings(_ context.Context, in model.SettingsInput) (*model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updatedAt := s.now().UTC()
	if !updatedAt.After(s.settings.UpdatedAt) {
		updatedAt = s.settings.UpdatedAt.Add(time.Nanosecond)
	}
	s.settings = model.Settings{
		ID:                s.settings.ID,
		ResendAPIKey:      in.ResendAPIKey,
		NotificationEmail: in.NotificationEmail,
		UpdatedAt:         updatedAt,
	}
	out := s.settings
	return &out, nil
}
