package repository

import (
	"context"
	"sync"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
)

// SynchronizedCommentRepository runs every call of the wrapped repository
// under one mutex, so load-modify-save cycles from goroutines in this
// process cannot interleave. Other processes are not coordinated.
type SynchronizedCommentRepository struct {
	mu    sync.Mutex
	inner repository.CommentRepository
}

var _ repository.CommentRepository = (*SynchronizedCommentRepository)(nil)

// NewSynchronizedCommentRepository wraps inner with a per-store mutex
func NewSynchronizedCommentRepository(inner repository.CommentRepository) *SynchronizedCommentRepository {
	return &SynchronizedCommentRepository{inner: inner}
}

func (r *SynchronizedCommentRepository) Add(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Add(ctx, c)
}

func (r *SynchronizedCommentRepository) Update(ctx context.Context, c *comment.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Update(ctx, c)
}

func (r *SynchronizedCommentRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Delete(ctx, id)
}

func (r *SynchronizedCommentRepository) GetSingle(ctx context.Context, id int) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.GetSingle(ctx, id)
}

func (r *SynchronizedCommentRepository) GetMany(ctx context.Context) ([]*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.GetMany(ctx)
}

// SynchronizedUserRepository is the user counterpart of SynchronizedCommentRepository
type SynchronizedUserRepository struct {
	mu    sync.Mutex
	inner repository.UserRepository
}

var _ repository.UserRepository = (*SynchronizedUserRepository)(nil)

// NewSynchronizedUserRepository wraps inner with a per-store mutex
func NewSynchronizedUserRepository(inner repository.UserRepository) *SynchronizedUserRepository {
	return &SynchronizedUserRepository{inner: inner}
}

func (r *SynchronizedUserRepository) Add(ctx context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Add(ctx, u)
}

func (r *SynchronizedUserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Update(ctx, u)
}

func (r *SynchronizedUserRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.Delete(ctx, id)
}

func (r *SynchronizedUserRepository) GetSingle(ctx context.Context, id int) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.GetSingle(ctx, id)
}

func (r *SynchronizedUserRepository) GetMany(ctx context.Context) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.GetMany(ctx)
}
