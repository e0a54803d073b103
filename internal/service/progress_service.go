package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/habithero/internal/error_values"
	"github.com/limbo/habithero/internal/repository"
	"github.com/limbo/habithero/pkg/entity"
)

// ProgressService records daily completions and derives user statistics.
type ProgressService struct {
	habitsRepo repository.HabitsRepositoryI
	now        func() time.Time
}

func NewProgressService(habitsRepo repository.HabitsRepositoryI) *ProgressService {
	return NewProgressServiceWithClock(habitsRepo, time.Now)
}

// NewProgressServiceWithClock lets tests pin "today" for the streak
// arithmetic.
func NewProgressServiceWithClock(habitsRepo repository.HabitsRepositoryI, clock func() time.Time) *ProgressService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo for progress service")
	}
	if clock == nil {
		clock = time.Now
	}
	return &ProgressService{
		habitsRepo: habitsRepo,
		now:        clock,
	}
}

// CompleteHabit credits at most one completion per calendar day:
//   - already completed today -> ErrAlreadyCompleted, habit untouched
//   - last completed exactly yesterday -> streak continues, +1
//   - never completed or a gap of two or more days -> streak resets to 1
//
// The update goes back through the repository write path, the in-memory
// record is never mutated by reference.
func (serv *ProgressService) CompleteHabit(ctx context.Context, habitID, userID int) (*entity.Habit, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	today := entity.DateOf(serv.now())
	if habit.LastCompleted != nil && *habit.LastCompleted == today {
		return nil, errorvalues.ErrAlreadyCompleted
	}
	if habit.LastCompleted != nil && habit.LastCompleted.Next() == today {
		habit.Streak++
	} else {
		habit.Streak = 1
	}
	habit.LastCompleted = &today
	err = serv.habitsRepo.Update(ctx, habit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return habit, nil
}

// GetUserStats aggregates across all the user's habits. SuccessRate is
// truncating integer division, 1 of 3 habits completed reads as 33.
func (serv *ProgressService) GetUserStats(ctx context.Context, userID int) (*entity.UserStats, error) {
	habits, err := serv.habitsRepo.GetByUserID(ctx, userID, 0, 0)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	today := entity.DateOf(serv.now())
	stats := entity.UserStats{
		TotalHabits: len(habits),
	}
	for _, habit := range habits {
		stats.TotalStreak += habit.Streak
		if habit.LastCompleted != nil && *habit.LastCompleted == today {
			stats.CompletedToday++
		}
	}
	if stats.TotalHabits > 0 {
		stats.SuccessRate = stats.CompletedToday * 100 / stats.TotalHabits
	}
	return &stats, nil
}
