package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/pkg/entity"
)

// UsersRepository keeps every account in one map under all_users, keyed by id
type UsersRepository struct {
	// read-modify-write of the shared map
	mu    sync.Mutex
	store kvstore.Store
}

func NewUsersRepo(store kvstore.Store) *UsersRepository {
	return &UsersRepository{
		store: store,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	ur.mu.Lock()
	defer ur.mu.Unlock()
	users, err := ur.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return errorvalues.ErrUserExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	users[user.ID.String()] = *user
	return ur.save(ctx, users)
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := ur.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	users, err := ur.load(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := users[uid.String()]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &user, nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ur.mu.Lock()
	defer ur.mu.Unlock()
	users, err := ur.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := users[uid.String()]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(users, uid.String())
	return ur.save(ctx, users)
}

func (ur *UsersRepository) load(ctx context.Context) (map[string]entity.User, error) {
	raw, err := ur.store.Get(ctx, usersKey)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return map[string]entity.User{}, nil
		}
		return nil, errors.New("loading users error: " + err.Error())
	}
	users := map[string]entity.User{}
	if err := sonic.UnmarshalString(raw, &users); err != nil {
		return nil, corrupted(err)
	}
	return users, nil
}

func (ur *UsersRepository) save(ctx context.Context, users map[string]entity.User) error {
	raw, err := sonic.MarshalString(users)
	if err != nil {
		return errors.New("encoding users error: " + err.Error())
	}
	if err := ur.store.Set(ctx, usersKey, raw); err != nil {
		return errors.New("saving users error: " + err.Error())
	}
	return nil
}

var _ UsersRepositoryI = (*UsersRepository)(nil)
