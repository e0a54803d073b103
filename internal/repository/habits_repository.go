package repository

import (
	"context"
	"log"

	"github.com/limbo/habithero/pkg/entity"
)

type HabitsRepository struct {
	store *Store
}

func NewHabitsRepo(store *Store) *HabitsRepository {
	if store == nil {
		log.Fatal("provided nil store for habitsRepo")
	}
	return &HabitsRepository{
		store: store,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (int, error) {
	return hr.store.CreateHabit(habit)
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id int) (*entity.Habit, error) {
	return hr.store.HabitByID(id)
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid int, limit, offset int) ([]*entity.Habit, error) {
	return hr.store.HabitsByUser(uid, limit, offset)
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	return hr.store.UpdateHabit(habit)
}

func (hr *HabitsRepository) Delete(ctx context.Context, id int) error {
	return hr.store.DeleteHabit(id)
}
