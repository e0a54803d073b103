package repository

import (
	"context"
	"path/filepath"

	"github.com/limbo/habithero/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user. ID is assigned by the store
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by id. Can be used for authorization middleware
	FindByID(ctx context.Context, id int) (*entity.User, error)
}

type HabitsRepositoryI interface {
	// Creates new habit. In habit only Name, UserID, Description, CreatedDate are necessary
	Create(ctx context.Context, habit *entity.Habit) (int, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id int) (*entity.Habit, error)
	// Lists habits owned by user with uid, ordered by id. limit <= 0 means no limit
	GetByUserID(ctx context.Context, uid int, limit, offset int) ([]*entity.Habit, error)
	// Writes habit back by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id int) error
}

type StoreConfig interface {
	DataDir() string
}

type FSCfg struct {
	Dir string
}

func (cfg *FSCfg) DataDir() string {
	return filepath.Clean(cfg.Dir)
}
