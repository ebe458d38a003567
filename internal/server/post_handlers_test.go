package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	srv, app, db := newTestServer(t)
	user := createTestUser(t, db, "Author", "author@example.com")
	token := tokenFor(t, srv, user.ID)

	t.Run("success", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]string{
			"text": "Hello world",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var post map[string]any
		require.NoError(t, json.Unmarshal(raw, &post))
		assert.Equal(t, "Hello world", post["text"])
		assert.Equal(t, "Author", post["name"])
		assert.EqualValues(t, user.ID, post["user"])
		// new posts carry empty lists, not null
		assert.Equal(t, []any{}, post["likes"])
		assert.Equal(t, []any{}, post["comments"])
	})

	t.Run("empty text", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]string{
			"text": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Text is required", firstErrorMsg(t, raw))
	})

	t.Run("requires auth", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts", "", map[string]string{
			"text": "Hello",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetPostsOrder(t *testing.T) {
	srv, app, db := newTestServer(t)
	user := createTestUser(t, db, "Author", "author@example.com")
	token := tokenFor(t, srv, user.ID)

	for _, text := range []string{"first", "second", "third"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts", token, map[string]string{"text": text})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/api/posts", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []map[string]any
	require.NoError(t, json.Unmarshal(raw, &posts))
	require.Len(t, posts, 3)
	// newest first
	assert.Equal(t, "third", posts[0]["text"])
	assert.Equal(t, "first", posts[2]["text"])
}

func TestGetPost(t *testing.T) {
	srv, app, db := newTestServer(t)
	user := createTestUser(t, db, "Author", "author@example.com")
	token := tokenFor(t, srv, user.ID)

	post := &models.Post{UserID: user.ID, Text: "a post", Name: user.Name, Avatar: user.Avatar}
	require.NoError(t, db.Create(post).Error)

	t.Run("found", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/api/posts/1", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "a post", got["text"])
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/api/posts/999", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "No post having this id", msgOf(t, raw))
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/api/posts/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "No post having this id", msgOf(t, raw))
	})
}

func TestDeletePost(t *testing.T) {
	srv, app, db := newTestServer(t)
	owner := createTestUser(t, db, "Owner", "owner@example.com")
	other := createTestUser(t, db, "Other", "other@example.com")

	post := &models.Post{UserID: owner.ID, Text: "mine", Name: owner.Name, Avatar: owner.Avatar}
	require.NoError(t, db.Create(post).Error)

	t.Run("non-owner rejected", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodDelete, "/api/posts/1", tokenFor(t, srv, other.ID), nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "The post is owned by another user", msgOf(t, raw))
	})

	t.Run("owner deletes", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodDelete, "/api/posts/1", tokenFor(t, srv, owner.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Successfully deleted", msgOf(t, raw))

		var count int64
		require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestLikeUnlikePost(t *testing.T) {
	srv, app, db := newTestServer(t)
	author := createTestUser(t, db, "Author", "author@example.com")
	liker := createTestUser(t, db, "Liker", "liker@example.com")
	token := tokenFor(t, srv, liker.ID)

	post := &models.Post{UserID: author.ID, Text: "like me", Name: author.Name, Avatar: author.Avatar}
	require.NoError(t, db.Create(post).Error)

	t.Run("like", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPut, "/api/posts/1/like", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var likes []map[string]any
		require.NoError(t, json.Unmarshal(raw, &likes))
		require.Len(t, likes, 1)
		assert.EqualValues(t, liker.ID, likes[0]["user"])
	})

	t.Run("second like rejected", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPut, "/api/posts/1/like", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "The post is already liked by this user", msgOf(t, raw))
	})

	t.Run("unlike", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPut, "/api/posts/1/unlike", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var likes []map[string]any
		require.NoError(t, json.Unmarshal(raw, &likes))
		assert.Empty(t, likes)
	})

	t.Run("unlike without like rejected", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPut, "/api/posts/1/unlike", token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "The post has not yet been liked by this user", msgOf(t, raw))
	})

	t.Run("like unknown post", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPut, "/api/posts/42/like", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "No post having this id", msgOf(t, raw))
	})
}

func TestComments(t *testing.T) {
	srv, app, db := newTestServer(t)
	author := createTestUser(t, db, "Author", "author@example.com")
	commenter := createTestUser(t, db, "Commenter", "commenter@example.com")
	commenterToken := tokenFor(t, srv, commenter.ID)

	post := &models.Post{UserID: author.ID, Text: "discuss", Name: author.Name, Avatar: author.Avatar}
	require.NoError(t, db.Create(post).Error)

	t.Run("add", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/posts/1/comment", commenterToken,
			map[string]string{"text": "nice post"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var comments []map[string]any
		require.NoError(t, json.Unmarshal(raw, &comments))
		require.Len(t, comments, 1)
		assert.Equal(t, "nice post", comments[0]["text"])
		assert.Equal(t, "Commenter", comments[0]["name"])
	})

	t.Run("empty text rejected", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/posts/1/comment", commenterToken,
			map[string]string{"text": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Text is required", firstErrorMsg(t, raw))
	})

	t.Run("delete by non-author rejected", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodDelete, "/api/posts/1/comment/1",
			tokenFor(t, srv, author.ID), nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "The comment is written by another user", msgOf(t, raw))
	})

	t.Run("delete unknown comment", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodDelete, "/api/posts/1/comment/99", commenterToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "No comment found with this id", msgOf(t, raw))
	})

	t.Run("delete by author", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodDelete, "/api/posts/1/comment/1", commenterToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var comments []map[string]any
		require.NoError(t, json.Unmarshal(raw, &comments))
		assert.Empty(t, comments)
	})
}
