package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
)

// setupTestDB creates a migrated database in a temp directory
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "filerepo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCommentRepositoryImpl_Scenario(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ctx := context.Background()

	comments, err := repo.GetMany(ctx)
	require.NoError(t, err)
	assert.Empty(t, comments)

	hi, err := repo.Add(ctx, &comment.Comment{Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 1, hi.ID)

	bye, err := repo.Add(ctx, &comment.Comment{Body: "bye"})
	require.NoError(t, err)
	assert.Equal(t, 2, bye.ID)

	require.NoError(t, repo.Delete(ctx, 1))

	comments, err = repo.GetMany(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, &comment.Comment{ID: 2, Body: "bye"}, comments[0])
}

func TestCommentRepositoryImpl_UpdateMovesToEnd(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ctx := context.Background()

	for _, body := range []string{"a", "b", "c"} {
		_, err := repo.Add(ctx, comment.NewComment(body, 1, 1))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Update(ctx, &comment.Comment{ID: 1, Body: "a2"}))

	got, err := repo.GetSingle(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &comment.Comment{ID: 1, Body: "a2"}, got)

	comments, err := repo.GetMany(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{comments[0].ID, comments[1].ID, comments[2].ID})
}

func TestCommentRepositoryImpl_DeletedMaxIDIsReused(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, &comment.Comment{Body: "one"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, &comment.Comment{Body: "two"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, 2))

	again, err := repo.Add(ctx, &comment.Comment{Body: "three"})
	require.NoError(t, err)
	assert.Equal(t, 2, again.ID)
}

func TestCommentRepositoryImpl_NotFound(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.GetSingle(ctx, 4)
	assert.True(t, repository.IsNotFound(err))
	assert.EqualError(t, err, "Comment with ID '4' not found")

	err = repo.Update(ctx, &comment.Comment{ID: 4})
	assert.EqualError(t, err, "Comment with ID '4' not found")

	err = repo.Delete(ctx, 4)
	assert.EqualError(t, err, "Comment with ID '4' not found")
}
