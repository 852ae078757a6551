package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
	"github.com/YoshitsuguKoike/filerepo/internal/infrastructure/transaction"
)

// CommentRepositoryImpl implements repository.CommentRepository with SQLite.
// IDs and ordering follow the file repository: max(id)+1 on Add, and an
// updated comment moves to the end of GetMany.
type CommentRepositoryImpl struct {
	db        *sql.DB
	txManager *transaction.SQLiteTransactionManager
}

var _ repository.CommentRepository = (*CommentRepositoryImpl)(nil)

// NewCommentRepository creates a new SQLite-based comment repository
func NewCommentRepository(db *sql.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{
		db:        db,
		txManager: transaction.NewSQLiteTransactionManager(db),
	}
}

// Add inserts c with the next ID and sets c.ID
func (r *CommentRepositoryImpl) Add(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if c == nil {
		return nil, errors.New("comment is nil")
	}

	err := r.txManager.InTransaction(ctx, func(txCtx context.Context) error {
		db := getDB(txCtx, r.db)

		id, err := nextValue(txCtx, db, "comments", "id")
		if err != nil {
			return err
		}
		position, err := nextValue(txCtx, db, "comments", "position")
		if err != nil {
			return err
		}

		_, err = db.ExecContext(txCtx,
			`INSERT INTO comments (id, body, post_id, user_id, position) VALUES (?, ?, ?, ?, ?)`,
			id, c.Body, c.PostID, c.UserID, position,
		)
		if err != nil {
			return fmt.Errorf("insert comment failed: %w", err)
		}

		c.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces every column of the stored comment
func (r *CommentRepositoryImpl) Update(ctx context.Context, c *comment.Comment) error {
	if c == nil {
		return errors.New("comment is nil")
	}

	return r.txManager.InTransaction(ctx, func(txCtx context.Context) error {
		db := getDB(txCtx, r.db)

		position, err := nextValue(txCtx, db, "comments", "position")
		if err != nil {
			return err
		}

		result, err := db.ExecContext(txCtx,
			`UPDATE comments SET body = ?, post_id = ?, user_id = ?, position = ? WHERE id = ?`,
			c.Body, c.PostID, c.UserID, position, c.ID,
		)
		if err != nil {
			return fmt.Errorf("update comment failed: %w", err)
		}
		return requireAffected(result, comment.EntityName, c.ID)
	})
}

// Delete removes the comment with the given ID
func (r *CommentRepositoryImpl) Delete(ctx context.Context, id int) error {
	db := getDB(ctx, r.db)
	result, err := db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete comment failed: %w", err)
	}
	return requireAffected(result, comment.EntityName, id)
}

// GetSingle retrieves a comment by its ID
func (r *CommentRepositoryImpl) GetSingle(ctx context.Context, id int) (*comment.Comment, error) {
	db := getDB(ctx, r.db)

	c := &comment.Comment{}
	err := db.QueryRowContext(ctx,
		`SELECT id, body, post_id, user_id FROM comments WHERE id = ?`, id,
	).Scan(&c.ID, &c.Body, &c.PostID, &c.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.NewNotFoundError(comment.EntityName, id)
		}
		return nil, fmt.Errorf("scan comment failed: %w", err)
	}
	return c, nil
}

// GetMany retrieves all comments in list order
func (r *CommentRepositoryImpl) GetMany(ctx context.Context) ([]*comment.Comment, error) {
	db := getDB(ctx, r.db)

	rows, err := db.QueryContext(ctx, `SELECT id, body, post_id, user_id FROM comments ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query comments failed: %w", err)
	}
	defer rows.Close()

	comments := []*comment.Comment{}
	for rows.Next() {
		c := &comment.Comment{}
		if err := rows.Scan(&c.ID, &c.Body, &c.PostID, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments failed: %w", err)
	}
	return comments, nil
}

// requireAffected maps a statement that touched no rows to a NotFoundError
func requireAffected(result sql.Result, entity string, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected failed: %w", err)
	}
	if n == 0 {
		return repository.NewNotFoundError(entity, id)
	}
	return nil
}
