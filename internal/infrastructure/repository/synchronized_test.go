package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
	infraRepo "github.com/YoshitsuguKoike/filerepo/internal/infrastructure/repository"
)

func TestSynchronizedCommentRepository_ConcurrentAdds(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner, err := infraRepo.NewCommentFileRepository(afero.NewMemMapFs(), "", nil)
	require.NoError(t, err)
	repo := infraRepo.NewSynchronizedCommentRepository(inner)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Add(ctx, comment.NewComment(fmt.Sprintf("c%d", i), 1, 1))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	comments, err := repo.GetMany(ctx)
	require.NoError(t, err)
	require.Len(t, comments, workers, "no update is lost")

	ids := make(map[int]bool)
	for _, c := range comments {
		ids[c.ID] = true
	}
	assert.Len(t, ids, workers)
	for id := 1; id <= workers; id++ {
		assert.True(t, ids[id], "missing id %d", id)
	}
}

func TestSynchronizedUserRepository_Delegates(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner, err := infraRepo.NewUserFileRepository(afero.NewMemMapFs(), "", nil)
	require.NoError(t, err)
	repo := infraRepo.NewSynchronizedUserRepository(inner)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Add(ctx, user.NewUser(fmt.Sprintf("u%d", i), "pw"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.NoError(t, repo.Update(ctx, &user.User{ID: 3, UserName: "renamed"}))
	got, err := repo.GetSingle(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.UserName)

	require.NoError(t, repo.Delete(ctx, 3))
	_, err = repo.GetSingle(ctx, 3)
	assert.True(t, repository.IsNotFound(err))

	users, err := repo.GetMany(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 9)
}
