package service

import (
	"context"
	"testing"

	"bjjsocial/internal/models"
	"bjjsocial/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_Validation(t *testing.T) {
	svc := NewPostService(&postRepoStub{
		createFn: func(context.Context, *models.Post) error {
			t.Fatal("create must not be called")
			return nil
		},
	}, nil)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: "u", Content: "  "})
	assert.Equal(t, 400, models.StatusFor(err))

	_, err = svc.CreatePost(context.Background(), CreatePostInput{UserID: "u", Content: "ok", ImageURLs: []string{"javascript:alert(1)"}})
	assert.Equal(t, 400, models.StatusFor(err))
}

func TestCreatePost_ReturnsLoadedPost(t *testing.T) {
	svc := NewPostService(&postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = "p-1"
			return nil
		},
		getByIDFn: func(_ context.Context, id string) (*models.Post, error) {
			return &models.Post{ID: id, UserID: "u", Content: "Rolling tonight", User: models.User{ID: "u"}}, nil
		},
	}, nil)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID: "u", Content: " Rolling tonight ", ImageURLs: []string{"https://cdn.example.com/a.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", post.ID)
	assert.Equal(t, "u", post.User.ID)
}

func TestDeletePost_OwnerOnly(t *testing.T) {
	deleted := false
	svc := NewPostService(&postRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.Post, error) {
			return &models.Post{ID: id, UserID: "owner"}, nil
		},
		deleteFn: func(context.Context, *models.Post) error {
			deleted = true
			return nil
		},
	}, nil)

	err := svc.DeletePost(context.Background(), "someone-else", "p-1")
	assert.Equal(t, 403, models.StatusFor(err))
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePost(context.Background(), "owner", "p-1"))
	assert.True(t, deleted)
}

func TestListPosts_PassesFilter(t *testing.T) {
	svc := NewPostService(&postRepoStub{
		listFn: func(_ context.Context, f repository.PostFilter) ([]models.Post, error) {
			assert.Equal(t, repository.PostFilter{Limit: 5, Offset: 10, Type: "technique", UserID: "u"}, f)
			return nil, nil
		},
	}, nil)

	_, err := svc.ListPosts(context.Background(), ListPostsInput{Limit: 5, Offset: 10, Type: "technique", UserID: "u"})
	require.NoError(t, err)
}

func TestAddComment_MissingPost(t *testing.T) {
	svc := NewPostService(&postRepoStub{
		getByIDFn: func(context.Context, string) (*models.Post, error) {
			return nil, models.NewNotFoundMessage("Post not found")
		},
	}, &commentRepoStub{})

	_, err := svc.AddComment(context.Background(), "u", "p-404", "nice")
	assert.Equal(t, 404, models.StatusFor(err))
}

func TestSearch(t *testing.T) {
	svc := NewSearchService(
		&userRepoStub{searchFn: func(context.Context, string, int) ([]models.User, error) {
			return []models.User{{ID: "u-1", FirstName: strPtr("Gordon"), LastName: strPtr("Ryan")}}, nil
		}},
		&postRepoStub{searchFn: func(context.Context, string, int) ([]models.Post, error) {
			return []models.Post{{ID: "p-1", Content: "Gordon's guard", User: models.User{FirstName: strPtr("Craig")}}}, nil
		}},
		&tournamentRepoStub{searchFn: func(context.Context, string, int) ([]models.Tournament, error) {
			return []models.Tournament{{ID: "t-1", Name: "Gordon Open"}}, nil
		}},
	)

	results, err := svc.Search(context.Background(), "gordon")
	require.NoError(t, err)
	assert.Equal(t, []SearchResult{
		{ID: "u-1", Type: "user", Title: "Gordon Ryan"},
		{ID: "p-1", Type: "post", Title: "Post by Craig", Description: "Gordon's guard"},
		{ID: "t-1", Type: "tournament", Title: "Gordon Open"},
	}, results)

	_, err = svc.Search(context.Background(), "  ")
	assert.Equal(t, 400, models.StatusFor(err))
}
