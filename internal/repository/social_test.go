package repository

import (
	"context"
	"testing"

	"bjjsocial/internal/models"
	"bjjsocial/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func reloadUser(t *testing.T, db *gorm.DB, id string) models.User {
	t.Helper()
	var u models.User
	require.NoError(t, db.First(&u, "id = ?", id).Error)
	return u
}

func TestFollowRepository_FollowUnfollowRestoresCounts(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db)
	bob := testutil.CreateUser(t, db)

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	exists, err := repo.Exists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 1, reloadUser(t, db, bob.ID).FollowersCount)
	assert.Equal(t, 1, reloadUser(t, db, alice.ID).FollowingCount)

	err = repo.Follow(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusFor(err))
	assert.Equal(t, 1, reloadUser(t, db, bob.ID).FollowersCount, "failed follow must not touch counters")

	require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))
	assert.Equal(t, 0, reloadUser(t, db, bob.ID).FollowersCount)
	assert.Equal(t, 0, reloadUser(t, db, alice.ID).FollowingCount)

	err = repo.Unfollow(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	assert.Equal(t, 404, models.StatusFor(err))
}

func TestUserRepository_FollowLists(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db)
	bob := testutil.CreateUser(t, db)
	carol := testutil.CreateUser(t, db)

	require.NoError(t, follows.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, follows.Follow(ctx, carol.ID, alice.ID))
	require.NoError(t, follows.Follow(ctx, alice.ID, carol.ID))

	followers, err := users.ListFollowers(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{bob.ID, carol.ID}, []string{followers[0].ID, followers[1].ID})

	following, err := users.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, carol.ID, following[0].ID)
}

func TestUserRepository_UpdateLeavesCounters(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", u.ID).Update("followers_count", 7).Error)

	u.FollowersCount = 0
	u.Belt = "Brown"
	u.School = testutil.Ptr("Checkmat")
	require.NoError(t, repo.Update(ctx, u))

	got := reloadUser(t, db, u.ID)
	assert.Equal(t, "Brown", got.Belt)
	assert.Equal(t, "Checkmat", *got.School)
	assert.Equal(t, 7, got.FollowersCount)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "dup@example.com", Password: "x"}))
	err := repo.Create(ctx, &models.User{Email: "dup@example.com", Password: "y"})
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusFor(err))
	assert.Contains(t, err.Error(), "Email already registered")

	found, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_SearchEscapesWildcards(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	testutil.CreateUser(t, db, func(u *models.User) { u.FirstName = testutil.Ptr("Roger") })
	testutil.CreateUser(t, db, func(u *models.User) { u.FirstName = testutil.Ptr("100%Gi") })

	found, err := repo.Search(ctx, "rog", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Roger", *found[0].FirstName)

	pct, err := repo.Search(ctx, "%", 10)
	require.NoError(t, err)
	require.Len(t, pct, 1)
	assert.Equal(t, "100%Gi", *pct[0].FirstName)
}

func TestPostRepository_CountersAndCascade(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	author := testutil.CreateUser(t, db)
	fan := testutil.CreateUser(t, db)

	post := &models.Post{UserID: author.ID, Content: "Open mat Sunday", ImageURLs: []string{"https://img.example.com/1.jpg"}}
	require.NoError(t, posts.Create(ctx, post))
	assert.Equal(t, 1, reloadUser(t, db, author.ID).PostsCount)

	require.NoError(t, posts.Like(ctx, fan.ID, post.ID))
	err := posts.Like(ctx, fan.ID, post.ID)
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusFor(err))

	got, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)
	assert.Equal(t, author.ID, got.User.ID)
	assert.Equal(t, []string{"https://img.example.com/1.jpg"}, got.ImageURLs)

	comment := &models.Comment{PostID: post.ID, UserID: fan.ID, Content: "See you there"}
	require.NoError(t, comments.Create(ctx, comment))
	assert.Equal(t, fan.ID, comment.User.ID)

	require.NoError(t, posts.Unlike(ctx, fan.ID, post.ID))
	err = posts.Unlike(ctx, fan.ID, post.ID)
	assert.Equal(t, 404, models.StatusFor(err))

	require.NoError(t, posts.Delete(ctx, got))
	assert.Equal(t, 0, reloadUser(t, db, author.ID).PostsCount)

	var remaining int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	_, err = posts.GetByID(ctx, post.ID)
	assert.Equal(t, 404, models.StatusFor(err))
}

func TestPostRepository_ListFilters(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db)
	b := testutil.CreateUser(t, db)
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: a.ID, Content: "one"}))
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: b.ID, Content: "two", Type: "technique"}))

	byUser, err := repo.List(ctx, PostFilter{Limit: 10, UserID: a.ID})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "one", byUser[0].Content)
	assert.Equal(t, models.PostTypeGeneral, byUser[0].Type)

	byType, err := repo.List(ctx, PostFilter{Limit: 10, Type: "technique"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, b.ID, byType[0].UserID)
}
