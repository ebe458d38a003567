package github

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepos(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/gopher/repos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "devconnector", r.Header.Get("User-Agent"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[{"name":"repo-one"}]`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)

	t.Run("success", func(t *testing.T) {
		body, err := client.Repos("gopher")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"repo-one"}]`, string(body))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := client.Repos("missing")
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.Equal(t, "No Github profile found", appErr.Message)
	})
}
