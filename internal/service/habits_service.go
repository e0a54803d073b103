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

type HabitsService struct {
	repo repository.HabitsRepositoryI
	now  func() time.Time
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	return NewHabitsServiceWithClock(habitsRepo, time.Now)
}

// NewHabitsServiceWithClock lets tests pin the calendar day used for
// CreatedDate stamping.
func NewHabitsServiceWithClock(habitsRepo repository.HabitsRepositoryI, clock func() time.Time) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	if clock == nil {
		clock = time.Now
	}
	return &HabitsService{
		repo: habitsRepo,
		now:  clock,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid int, req CreateHabitRequest) (*entity.Habit, error) {
	h := entity.Habit{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		CreatedDate: entity.DateOf(hs.now()),
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid int, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID int) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID int) error {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
