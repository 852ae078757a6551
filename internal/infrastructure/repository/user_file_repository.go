package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
	"github.com/YoshitsuguKoike/filerepo/internal/infra/persistence/file"
)

// DefaultUsersFile is the backing file used when no path is configured
const DefaultUsersFile = "users.json"

// UserFileRepository implements repository.UserRepository on a single file
type UserFileRepository struct {
	fs    afero.Fs
	path  string
	codec file.Codec
}

var _ repository.UserRepository = (*UserFileRepository)(nil)

// NewUserFileRepository creates a file-based user repository, writing an
// empty list to path when the file is missing
func NewUserFileRepository(fs afero.Fs, path string, codec file.Codec) (*UserFileRepository, error) {
	if path == "" {
		path = DefaultUsersFile
	}
	if codec == nil {
		codec = file.JSONCodec{}
	}

	if _, err := file.EnsureFile(fs, path, codec.EmptyList()); err != nil {
		return nil, fmt.Errorf("failed to initialize user store: %w", err)
	}

	return &UserFileRepository{fs: fs, path: path, codec: codec}, nil
}

// Path returns the backing file path
func (r *UserFileRepository) Path() string {
	return r.path
}

func (r *UserFileRepository) Add(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user is nil")
	}

	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	u.ID = 1
	if len(users) > 0 {
		u.ID = maxUserID(users) + 1
	}
	users = append(users, u)

	if err := r.saveList(ctx, users); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserFileRepository) Update(ctx context.Context, u *user.User) error {
	if u == nil {
		return errors.New("user is nil")
	}

	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}

	i, err := indexOfUser(users, u.ID)
	if err != nil {
		return err
	}

	users = append(append(users[:i], users[i+1:]...), u)
	return r.saveList(ctx, users)
}

func (r *UserFileRepository) Delete(ctx context.Context, id int) error {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}

	i, err := indexOfUser(users, id)
	if err != nil {
		return err
	}

	return r.saveList(ctx, append(users[:i], users[i+1:]...))
}

func (r *UserFileRepository) GetSingle(ctx context.Context, id int) (*user.User, error) {
	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	i, err := indexOfUser(users, id)
	if err != nil {
		return nil, err
	}
	return users[i], nil
}

// GetMany returns a snapshot of all users
func (r *UserFileRepository) GetMany(ctx context.Context) ([]*user.User, error) {
	return r.loadUsers(ctx)
}

func (r *UserFileRepository) loadUsers(ctx context.Context) ([]*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := file.LoadList[*user.User](r.fs, r.path, r.codec)
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(all))
	for _, u := range all {
		if u != nil {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *UserFileRepository) saveList(ctx context.Context, users []*user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return file.SaveList(r.fs, r.path, r.codec, users)
}

func indexOfUser(users []*user.User, id int) (int, error) {
	found := -1
	for i, u := range users {
		if u.ID == id {
			if found != -1 {
				return -1, fmt.Errorf("%w: user %d", repository.ErrDuplicateID, id)
			}
			found = i
		}
	}
	if found == -1 {
		return -1, repository.NewNotFoundError(user.EntityName, id)
	}
	return found, nil
}

func maxUserID(users []*user.User) int {
	m := users[0].ID
	for _, u := range users[1:] {
		if u.ID > m {
			m = u.ID
		}
	}
	return m
}
