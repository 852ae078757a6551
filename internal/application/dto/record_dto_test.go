package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/comment"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/model/user"
)

func TestFromComments(t *testing.T) {
	list := FromComments([]*comment.Comment{
		{ID: 1, Body: "hi", PostID: 2, UserID: 3},
		{ID: 2, Body: "bye"},
	})

	assert.Equal(t, 2, list.Count)
	assert.Equal(t, CommentDTO{ID: 1, Body: "hi", PostID: 2, UserID: 3}, list.Comments[0])
}

func TestFromComments_EmptyEncodesAsList(t *testing.T) {
	data, err := json.Marshal(FromComments(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"comments": [], "count": 0}`, string(data))
}

func TestFromUser_OmitsPassword(t *testing.T) {
	data, err := json.Marshal(FromUser(&user.User{ID: 4, UserName: "kim", Password: "secret"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 4, "user_name": "kim"}`, string(data))
	assert.NotContains(t, string(data), "secret")

	list := FromUsers([]*user.User{{ID: 1}, {ID: 2}})
	assert.Equal(t, 2, list.Count)
}
