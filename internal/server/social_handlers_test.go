package server

import (
	"fmt"
	"net/http"
	"testing"

	"bjjsocial/internal/models"
	"bjjsocial/internal/testutil"
	"bjjsocial/internal/views"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAthlete(t *testing.T, env *testEnv, firstName string, overrides ...func(*models.User)) *models.User {
	t.Helper()
	return testutil.CreateUser(t, env.db, append([]func(*models.User){func(u *models.User) {
		u.FirstName = testutil.Ptr(firstName)
		u.LastName = testutil.Ptr("Gracie")
	}}, overrides...)...)
}

func TestUserProfile(t *testing.T) {
	env := newTestEnv(t)
	user := createAthlete(t, env, "Roger", func(u *models.User) {
		u.Competitions = 3
		u.Wins = 2
		u.Losses = 1
	})

	var profile views.PublicUser
	resp := env.do(t, http.MethodGet, "/api/users/"+user.ID, nil, "", &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Roger", *profile.FirstName)

	resp = env.do(t, http.MethodGet, "/api/users/not-a-uuid", nil, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/users/"+uuid.NewString(), nil, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var stats models.UserStats
	resp = env.do(t, http.MethodGet, "/api/users/"+user.ID+"/stats", nil, "", &stats)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 66.67, stats.WinRate)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	user := createAthlete(t, env, "Kyra")
	token := env.tokenFor(t, user.ID)

	var updated views.PublicUser
	resp := env.do(t, http.MethodPut, "/api/user/profile", map[string]any{
		"belt":    "Black",
		"stripes": 2,
		"school":  "Gracie Barra",
	}, token, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Black", updated.Belt)
	assert.Equal(t, 2, updated.Stripes)
	assert.Equal(t, "Kyra", *updated.FirstName)

	resp = env.do(t, http.MethodPut, "/api/user/profile", map[string]any{"stripes": 9}, token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/api/user/profile", map[string]any{"belt": "Blue"}, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFollowFlow(t *testing.T) {
	env := newTestEnv(t)
	alice := createAthlete(t, env, "Alice")
	bob := createAthlete(t, env, "Bob")
	token := env.tokenFor(t, alice.ID)

	resp := env.do(t, http.MethodPost, "/api/users/"+bob.ID+"/follow", nil, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/users/"+bob.ID+"/follow", nil, token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/users/"+alice.ID+"/follow", nil, token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var followers []views.PublicUser
	resp = env.do(t, http.MethodGet, "/api/users/"+bob.ID+"/followers", nil, "", &followers)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)

	var following []views.PublicUser
	env.do(t, http.MethodGet, "/api/users/"+alice.ID+"/following", nil, "", &following)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)

	resp = env.do(t, http.MethodDelete, "/api/users/"+bob.ID+"/follow", nil, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reloadedBob, reloadedAlice models.User
	require.NoError(t, env.db.First(&reloadedBob, "id = ?", bob.ID).Error)
	assert.Equal(t, 0, reloadedBob.FollowersCount)
	require.NoError(t, env.db.First(&reloadedAlice, "id = ?", alice.ID).Error)
	assert.Equal(t, 0, reloadedAlice.FollowingCount)

	resp = env.do(t, http.MethodDelete, "/api/users/"+bob.ID+"/follow", nil, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostLifecycle(t *testing.T) {
	env := newTestEnv(t)
	author := createAthlete(t, env, "Helio")
	fan := createAthlete(t, env, "Carlos")
	authorToken := env.tokenFor(t, author.ID)
	fanToken := env.tokenFor(t, fan.ID)

	var post views.Post
	resp := env.do(t, http.MethodPost, "/api/posts", map[string]any{
		"content":   "Drilled the kimura trap system today",
		"type":      "technique",
		"imageUrls": []string{"https://cdn.example.com/kimura.jpg"},
	}, authorToken, &post)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, post.User)
	assert.Equal(t, author.ID, post.User.ID)
	assert.Equal(t, []string{"https://cdn.example.com/kimura.jpg"}, post.ImageURLs)

	resp = env.do(t, http.MethodPost, "/api/posts", map[string]any{"content": ""}, authorToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/posts/"+post.ID+"/like", nil, fanToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/posts/"+post.ID+"/like", nil, fanToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var comment views.Comment
	resp = env.do(t, http.MethodPost, "/api/posts/"+post.ID+"/comments", map[string]string{"content": "Oss"}, fanToken, &comment)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, comment.User)
	assert.Equal(t, fan.ID, comment.User.ID)

	var comments []views.Comment
	env.do(t, http.MethodGet, "/api/posts/"+post.ID+"/comments", nil, "", &comments)
	assert.Len(t, comments, 1)

	var feed []views.Post
	resp = env.do(t, http.MethodGet, "/api/posts?type=technique&userId="+author.ID, nil, "", &feed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].Likes)

	resp = env.do(t, http.MethodGet, "/api/posts?limit=0", nil, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/posts/"+post.ID+"/like", nil, fanToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, http.MethodDelete, "/api/posts/"+post.ID+"/like", nil, fanToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/posts/"+post.ID, nil, fanToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = env.do(t, http.MethodDelete, "/api/posts/"+post.ID, nil, authorToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, env.db.First(&reloaded, "id = ?", author.ID).Error)
	assert.Equal(t, 0, reloaded.PostsCount)
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	createAthlete(t, env, "Gordon")

	var body struct {
		Results []struct {
			Type  string `json:"type"`
			Title string `json:"title"`
		} `json:"results"`
	}
	resp := env.do(t, http.MethodGet, "/api/search?q=gord", nil, "", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "user", body.Results[0].Type)
	assert.Equal(t, "Gordon Gracie", body.Results[0].Title)

	resp = env.do(t, http.MethodGet, "/api/search", nil, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPosts_Pagination(t *testing.T) {
	env := newTestEnv(t)
	author := createAthlete(t, env, "Pedro")
	token := env.tokenFor(t, author.ID)

	for i := 0; i < 3; i++ {
		resp := env.do(t, http.MethodPost, "/api/posts", map[string]string{"content": fmt.Sprintf("round %d", i)}, token, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var page []views.Post
	env.do(t, http.MethodGet, "/api/posts?limit=2&offset=2", nil, "", &page)
	assert.Len(t, page, 1)
}
