package presenter_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/filerepo/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/filerepo/internal/application/dto"
	"github.com/YoshitsuguKoike/filerepo/internal/domain/repository"
)

func TestJSONPresenter_PresentSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewJSONPresenter(buf)

	err := p.PresentSuccess("Comment added", dto.CommentDTO{ID: 1, Body: "hi"})
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(buf).Decode(&result))

	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Comment added", result["message"])
	data, ok := result["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "hi", data["body"])
}

func TestJSONPresenter_PresentError(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewJSONPresenter(buf)

	require.NoError(t, p.PresentError(errors.New("test error")))

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(buf).Decode(&result))

	assert.Equal(t, false, result["success"])
	assert.Equal(t, "test error", result["error"])
	assert.NotContains(t, result, "not_found")
}

func TestJSONPresenter_PresentNotFound(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewJSONPresenter(buf)

	err := fmt.Errorf("get: %w", repository.NewNotFoundError("User", 4))
	require.NoError(t, p.PresentError(err))

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(buf).Decode(&result))

	assert.Equal(t, "get: User with ID '4' not found", result["error"])
	nf, ok := result["not_found"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "User", nf["entity"])
	assert.Equal(t, float64(4), nf["id"])
}
