package service

import (
	"context"

	"github.com/limbo/habithero/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=6,max=72"`
}

type CreateHabitRequest struct {
	Name        string
	Description string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, hashes the password, stores new user. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid int, req CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid int, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID int) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID int) error
}

type ProgressServiceI interface {
	// Credits today's completion and recomputes the streak. Returns the updated habit
	CompleteHabit(ctx context.Context, habitID, userID int) (*entity.Habit, error)
	// Aggregates the user's habits into dashboard stats
	GetUserStats(ctx context.Context, userID int) (*entity.UserStats, error)
}
