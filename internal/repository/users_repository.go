package repository

import (
	"context"
	"log"

	"github.com/limbo/habithero/pkg/entity"
)

type UsersRepository struct {
	store *Store
}

func NewUsersRepo(store *Store) *UsersRepository {
	if store == nil {
		log.Fatal("provided nil store for usersRepo")
	}
	return &UsersRepository{
		store: store,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	return ur.store.CreateUser(user)
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return ur.store.UserByName(name)
}

func (ur *UsersRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	return ur.store.UserByID(id)
}
