package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errorvalues "github.com/limbo/habithero/internal/error_values"
	"github.com/limbo/habithero/internal/repository"
	"github.com/limbo/habithero/internal/service"
	"github.com/limbo/habithero/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockState int

const (
	stateSuccess = iota
	stateStoreError
	stateHabitNotFoundError
	stateOwnerNotFoundError
	stateWrongOwner
)

type habitsRepoMock struct {
	state   mockState
	updated *entity.Habit
}

// Variables for tests
var (
	userID    = 1
	habitID   = 1
	testDay   = entity.Date{Year: 2025, Month: time.June, Day: 15}
	testClock = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	}
	testHabit = entity.Habit{
		ID:          habitID,
		UserID:      userID,
		Name:        "test_habit",
		Description: "test_description",
		CreatedDate: testDay,
	}
)

func (hrmock *habitsRepoMock) Create(ctx context.Context, habit *entity.Habit) (int, error) {
	switch hrmock.state {
	case stateOwnerNotFoundError:
		return 0, errorvalues.ErrOwnerNotFound
	case stateStoreError:
		return 0, errors.New("store error")
	default:
		return habitID, nil
	}
}

func (hrmock *habitsRepoMock) GetByID(ctx context.Context, id int) (*entity.Habit, error) {
	switch hrmock.state {
	case stateHabitNotFoundError:
		return nil, errorvalues.ErrHabitNotFound
	case stateStoreError:
		return nil, errors.New("store error")
	case stateWrongOwner:
		h := testHabit
		h.UserID = userID + 1
		return &h, nil
	default:
		h := testHabit
		return &h, nil
	}
}

func (hrmock *habitsRepoMock) GetByUserID(ctx context.Context, uid int, limit, offset int) ([]*entity.Habit, error) {
	switch hrmock.state {
	case stateStoreError:
		return nil, errors.New("store error")
	default:
		h := testHabit
		return []*entity.Habit{&h}, nil
	}
}

func (hrmock *habitsRepoMock) Update(ctx context.Context, habit *entity.Habit) error {
	switch hrmock.state {
	case stateStoreError:
		return errors.New("store error")
	case stateHabitNotFoundError:
		return errorvalues.ErrHabitNotFound
	default:
		hrmock.updated = habit
		return nil
	}
}

func (hrmock *habitsRepoMock) Delete(ctx context.Context, id int) error {
	switch hrmock.state {
	case stateStoreError:
		return errors.New("store error")
	case stateHabitNotFoundError:
		return errorvalues.ErrHabitNotFound
	default:
		return nil
	}
}

func TestCreateHabit(t *testing.T) {
	mock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsServiceWithClock(mock, testClock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		h, err := s.CreateHabit(ctx, userID, service.CreateHabitRequest{
			Name:        testHabit.Name,
			Description: testHabit.Description,
		})
		assert.NoError(t, err)
		assert.Equal(t, testHabit, *h)
	})
	t.Run("store error", func(t *testing.T) {
		mock.state = stateStoreError
		_, err := s.CreateHabit(ctx, userID, service.CreateHabitRequest{
			Name:        testHabit.Name,
			Description: testHabit.Description,
		})
		assert.Error(t, err)
	})
	t.Run("owner not found", func(t *testing.T) {
		mock.state = stateOwnerNotFoundError
		_, err := s.CreateHabit(ctx, userID, service.CreateHabitRequest{
			Name:        testHabit.Name,
			Description: testHabit.Description,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetUserHabits(t *testing.T) {
	mock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		habits, err := s.GetUserHabits(ctx, userID, service.PaginationOpts{Limit: 10, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, 1, len(habits))
		assert.Equal(t, testHabit, *habits[0])
	})
	t.Run("store error", func(t *testing.T) {
		mock.state = stateStoreError
		_, err := s.GetUserHabits(ctx, userID, service.PaginationOpts{Limit: 10, Offset: 0})
		assert.Error(t, err)
	})
}

func TestGetHabitByID(t *testing.T) {
	mock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		h, err := s.GetHabit(ctx, habitID, userID)
		assert.NoError(t, err)
		assert.Equal(t, testHabit, *h)
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		_, err := s.GetHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("habit not found", func(t *testing.T) {
		mock.state = stateHabitNotFoundError
		_, err := s.GetHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestDeleteHabit(t *testing.T) {
	mock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, s.DeleteHabit(ctx, habitID, userID))
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		assert.ErrorIs(t, s.DeleteHabit(ctx, habitID, userID), errorvalues.ErrWrongOwner)
	})
	t.Run("habit not found", func(t *testing.T) {
		mock.state = stateHabitNotFoundError
		assert.ErrorIs(t, s.DeleteHabit(ctx, habitID, userID), errorvalues.ErrHabitNotFound)
	})
	t.Run("store error", func(t *testing.T) {
		mock.state = stateStoreError
		assert.Error(t, s.DeleteHabit(ctx, habitID, userID))
	})
}

func TestHabitsServiceIntegrational(t *testing.T) {
	store, err := repository.NewStore(&repository.FSCfg{Dir: t.TempDir()})
	require.NoError(t, err)
	ctx := context.Background()
	users := service.NewUserService(repository.NewUsersRepo(store))
	owner, err := users.Register(ctx, &service.RegisterRequest{Name: "habit_owner", Password: "test_password"})
	require.NoError(t, err)
	s := service.NewHabitsServiceWithClock(repository.NewHabitsRepo(store), testClock)

	habits := make([]*entity.Habit, 0, 5)
	t.Run("create habits", func(t *testing.T) {
		for i := range 5 {
			h, err := s.CreateHabit(ctx, owner.ID, service.CreateHabitRequest{
				Name:        fmt.Sprintf("test_habit_%d", i),
				Description: fmt.Sprintf("test_description_%d", i),
			})
			assert.NoError(t, err)
			assert.Equal(t, i+1, h.ID)
			assert.Equal(t, testDay, h.CreatedDate)
			assert.Equal(t, 0, h.Streak)
			assert.Nil(t, h.LastCompleted)
			habits = append(habits, h)
		}
	})
	t.Run("error: unexist user", func(t *testing.T) {
		_, err := s.CreateHabit(ctx, 42, service.CreateHabitRequest{Name: "aaa", Description: "bbb"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("get user's habits", func(t *testing.T) {
		result, err := s.GetUserHabits(ctx, owner.ID, service.PaginationOpts{Limit: 5, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, 5, len(result))
		for i := range result {
			assert.Equal(t, *habits[i], *result[i])
		}
	})
	t.Run("delete habit", func(t *testing.T) {
		assert.NoError(t, s.DeleteHabit(ctx, habits[0].ID, owner.ID))
		result, err := s.GetUserHabits(ctx, owner.ID, service.PaginationOpts{Limit: 5, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, 4, len(result))
		t.Run("error: second delete", func(t *testing.T) {
			assert.ErrorIs(t, s.DeleteHabit(ctx, habits[0].ID, owner.ID), errorvalues.ErrHabitNotFound)
		})
		t.Run("error: wrong owner", func(t *testing.T) {
			assert.ErrorIs(t, s.DeleteHabit(ctx, habits[1].ID, 42), errorvalues.ErrWrongOwner)
		})
	})
}
