package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
	"github.com/YoshitsuguKoike/filerepo/internal/infra/persistence/file"
)

// DefaultCommentsFile is the backing file used when no path is configured
const DefaultCommentsFile = "comments.json"

// CommentFileRepository stores all comments as one list in a single file.
// Every call loads the whole file and every mutation rewrites it, so it is
// only correct with one writer at a time.
type CommentFileRepository struct {
	fs    afero.Fs
	path  string
	codec file.Codec
}

var _ repository.CommentRepository = (*CommentFileRepository)(nil)

// NewCommentFileRepository creates the repository and bootstraps the backing
// file with an empty list if it does not exist yet
func NewCommentFileRepository(fs afero.Fs, path string, codec file.Codec) (*CommentFileRepository, error) {
	if path == "" {
		path = DefaultCommentsFile
	}
	if codec == nil {
		codec = file.JSONCodec{}
	}

	if _, err := file.EnsureFile(fs, path, codec.EmptyList()); err != nil {
		return nil, fmt.Errorf("failed to initialize comment store: %w", err)
	}

	return &CommentFileRepository{fs: fs, path: path, codec: codec}, nil
}

// Path returns the backing file path
func (r *CommentFileRepository) Path() string {
	return r.path
}

// Add assigns max(id)+1 (1 when empty) to c, appends it and persists the list
func (r *CommentFileRepository) Add(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if c == nil {
		return nil, errors.New("comment is nil")
	}

	comments, err := r.loadComments(ctx)
	if err != nil {
		return nil, err
	}

	c.ID = nextCommentID(comments)
	comments = append(comments, c)

	if err := r.saveComments(ctx, comments); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the stored comment wholesale. The updated comment moves to the end of the list.
func (r *CommentFileRepository) Update(ctx context.Context, c *comment.Comment) error {
	if c == nil {
		return errors.New("comment is nil")
	}

	comments, err := r.loadComments(ctx)
	if err != nil {
		return err
	}

	idx, err := findComment(comments, c.ID)
	if err != nil {
		return err
	}

	comments = append(comments[:idx], comments[idx+1:]...)
	comments = append(comments, c)

	return r.saveComments(ctx, comments)
}

// Delete removes the comment with the given ID
func (r *CommentFileRepository) Delete(ctx context.Context, id int) error {
	comments, err := r.loadComments(ctx)
	if err != nil {
		return err
	}

	idx, err := findComment(comments, id)
	if err != nil {
		return err
	}

	comments = append(comments[:idx], comments[idx+1:]...)
	return r.saveComments(ctx, comments)
}

// GetSingle returns the comment with the given ID
func (r *CommentFileRepository) GetSingle(ctx context.Context, id int) (*comment.Comment, error) {
	comments, err := r.loadComments(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := findComment(comments, id)
	if err != nil {
		return nil, err
	}
	return comments[idx], nil
}

// GetMany returns every stored comment in file order.
// The slice is a fresh snapshot and does not observe later mutations.
func (r *CommentFileRepository) GetMany(ctx context.Context) ([]*comment.Comment, error) {
	return r.loadComments(ctx)
}

func (r *CommentFileRepository) loadComments(ctx context.Context) ([]*comment.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loaded, err := file.LoadList[*comment.Comment](r.fs, r.path, r.codec)
	if err != nil {
		return nil, err
	}

	// "null" entries carry no record
	comments := loaded[:0]
	for _, c := range loaded {
		if c != nil {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (r *CommentFileRepository) saveComments(ctx context.Context, comments []*comment.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return file.SaveList(r.fs, r.path, r.codec, comments)
}

// findComment returns the index of the only comment with id
func findComment(comments []*comment.Comment, id int) (int, error) {
	idx := -1
	for i, c := range comments {
		if c.ID != id {
			continue
		}
		if idx >= 0 {
			return -1, fmt.Errorf("%w: comment %d", repository.ErrDuplicateID, id)
		}
		idx = i
	}

	if idx < 0 {
		return -1, repository.NewNotFoundError(comment.EntityName, id)
	}
	return idx, nil
}

func nextCommentID(comments []*comment.Comment) int {
	if len(comments) == 0 {
		return 1
	}
	maxID := comments[0].ID
	for _, c := range comments[1:] {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}
