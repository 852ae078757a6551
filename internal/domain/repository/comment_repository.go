package repository

import (
	"context"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
)

// CommentRepository defines the interface for comment persistence.
// Implementations are only safe for one writer at a time unless wrapped
// with a serializing decorator.
type CommentRepository interface {
	// Add assigns the next ID to c, stores it and returns c
	Add(ctx context.Context, c *comment.Comment) (*comment.Comment, error)

	// Update replaces the stored comment that has c.ID with c
	Update(ctx context.Context, c *comment.Comment) error

	// Delete removes the comment with the given ID
	Delete(ctx context.Context, id int) error

	// GetSingle returns the comment with the given ID
	GetSingle(ctx context.Context, id int) (*comment.Comment, error)

	// GetMany returns a snapshot of all stored comments
	GetMany(ctx context.Context) ([]*comment.Comment, error)
}
