package repository

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	errorvalues "github.com/limbo/habithero/internal/error_values"
	"github.com/limbo/habithero/pkg/cleanup"
	"github.com/limbo/habithero/pkg/entity"
)

// Store owns the canonical user and habit collections. It keeps them in
// memory for the process lifetime and overwrites both snapshot files on
// every mutation. Every read-modify-persist sequence runs under one mutex,
// the whole-collection save is not atomic against concurrent mutation.
//
// Mutations are persist-then-commit: the in-memory change is rolled back
// when the snapshot write fails, so a caller never observes state that the
// disk doesn't have.
type Store struct {
	mu          sync.Mutex
	users       map[string]*entity.User
	habits      map[int]*entity.Habit
	nextUserID  int
	nextHabitID int
	dir         string
}

func NewStore(cfg StoreConfig) (*Store, error) {
	dir := cfg.DataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("creating data dir error: " + err.Error())
	}
	s := &Store{
		users:       map[string]*entity.User{},
		habits:      map[int]*entity.Habit{},
		nextUserID:  1,
		nextHabitID: 1,
		dir:         dir,
	}
	// Corrupt durable state is not fatal: warn once and start empty, the
	// operator sees the data-loss risk in the log.
	users, err := readUsersSnapshot(filepath.Join(dir, usersFileName))
	if err != nil {
		slog.Warn("users snapshot unreadable, starting with empty collection", slog.String("error", err.Error()))
		users = map[string]*entity.User{}
	}
	habits, err := readHabitsSnapshot(filepath.Join(dir, habitsFileName))
	if err != nil {
		slog.Warn("habits snapshot unreadable, starting with empty collection", slog.String("error", err.Error()))
		habits = map[int]*entity.Habit{}
	}
	s.adoptLoaded(users, habits)
	cleanup.Register(&cleanup.Job{
		Name: "final state snapshot",
		F:    s.Flush,
	})
	return s, nil
}

// adoptLoaded validates loaded records, drops the malformed ones with a
// warning and rebuilds the next-id counters as max(seen id)+1.
func (s *Store) adoptLoaded(users map[string]*entity.User, habits map[int]*entity.Habit) {
	for name, user := range users {
		if user == nil || user.ID < 1 || user.Name == "" || user.Name != name {
			slog.Warn("dropping malformed user record", slog.String("key", name))
			continue
		}
		s.users[name] = user
		if user.ID >= s.nextUserID {
			s.nextUserID = user.ID + 1
		}
	}
	for id, habit := range habits {
		if habit == nil || habit.ID < 1 || habit.ID != id || habit.Streak < 0 {
			slog.Warn("dropping malformed habit record", slog.Int("key", id))
			continue
		}
		if (habit.Streak == 0) != (habit.LastCompleted == nil) {
			slog.Warn("dropping habit record with broken streak invariant", slog.Int("key", id))
			continue
		}
		if s.userByIDLocked(habit.UserID) == nil {
			slog.Warn("dropping habit record with unknown owner", slog.Int("key", id), slog.Int("uid", habit.UserID))
			continue
		}
		s.habits[id] = habit
		if habit.ID >= s.nextHabitID {
			s.nextHabitID = habit.ID + 1
		}
	}
}

// persistLocked overwrites both snapshot files with the full collections.
// Callers must hold s.mu.
func (s *Store) persistLocked() error {
	err := writeSnapshot(filepath.Join(s.dir, usersFileName), usersSnapshot{
		Version: snapshotVersion,
		Users:   s.users,
	})
	if err != nil {
		return errors.Join(errorvalues.ErrPersistence, err)
	}
	err = writeSnapshot(filepath.Join(s.dir, habitsFileName), habitsSnapshot{
		Version: snapshotVersion,
		Habits:  s.habits,
	})
	if err != nil {
		return errors.Join(errorvalues.ErrPersistence, err)
	}
	return nil
}

// Flush writes the current state out once more. Registered as a shutdown
// job, also handy after a failed save was reported to the caller.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Store) userByIDLocked(id int) *entity.User {
	for _, user := range s.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

// CreateUser assigns the next user id and inserts the record. The id
// counter only advances when the snapshot write succeeded, so a failed
// registration leaves no gap.
func (s *Store) CreateUser(user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Name]; ok {
		return errorvalues.ErrUserExists
	}
	stored := &entity.User{
		ID:           s.nextUserID,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	}
	s.users[stored.Name] = stored
	if err := s.persistLocked(); err != nil {
		delete(s.users, stored.Name)
		return err
	}
	s.nextUserID++
	return nil
}

func (s *Store) UserByName(name string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[name]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Store) UserByID(id int) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.userByIDLocked(id)
	if user == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// CreateHabit assigns the next habit id and inserts the record. Habit ids
// are never reused, even after deletion: the counter never moves backwards.
func (s *Store) CreateHabit(habit *entity.Habit) (int, error) {
	if habit == nil {
		return 0, errors.New("habit is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userByIDLocked(habit.UserID) == nil {
		return 0, errorvalues.ErrOwnerNotFound
	}
	stored := *habit
	stored.ID = s.nextHabitID
	s.habits[stored.ID] = &stored
	if err := s.persistLocked(); err != nil {
		delete(s.habits, stored.ID)
		return 0, err
	}
	s.nextHabitID++
	return stored.ID, nil
}

func (s *Store) HabitByID(id int) (*entity.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	habit, ok := s.habits[id]
	if !ok {
		return nil, errorvalues.ErrHabitNotFound
	}
	copied := *habit
	return &copied, nil
}

// HabitsByUser lists the user's habits ordered by id. limit <= 0 means
// no limit.
func (s *Store) HabitsByUser(uid int, limit, offset int) ([]*entity.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := make([]*entity.Habit, 0)
	for _, habit := range s.habits {
		if habit.UserID == uid {
			copied := *habit
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	if offset >= len(owned) {
		return []*entity.Habit{}, nil
	}
	owned = owned[offset:]
	if limit > 0 && limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}

// UpdateHabit replaces the stored record by habit.ID. This is the single
// write-back path for completion state, nothing mutates stored habits by
// reference.
func (s *Store) UpdateHabit(habit *entity.Habit) error {
	if habit == nil {
		return errors.New("habit is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.habits[habit.ID]
	if !ok {
		return errorvalues.ErrHabitNotFound
	}
	stored := *habit
	s.habits[stored.ID] = &stored
	if err := s.persistLocked(); err != nil {
		s.habits[stored.ID] = prev
		return err
	}
	return nil
}

func (s *Store) DeleteHabit(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.habits[id]
	if !ok {
		return errorvalues.ErrHabitNotFound
	}
	delete(s.habits, id)
	if err := s.persistLocked(); err != nil {
		s.habits[id] = prev
		return err
	}
	return nil
}
