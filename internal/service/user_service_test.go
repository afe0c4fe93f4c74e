package service

import (
	"context"
	"testing"

	"bjjsocial/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	var stored *models.User
	repo := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == "taken@example.com" {
				return &models.User{ID: "u-0", Email: email}, nil
			}
			return nil, nil
		},
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = "u-1"
			stored = u
			return nil
		},
	}
	svc := NewUserService(repo).WithBcryptCost(bcrypt.MinCost)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email: "  Marcelo@Example.com ", Password: "buttersweep", FirstName: "Marcelo", LastName: "Garcia",
	})
	require.NoError(t, err)
	assert.Same(t, stored, user)
	assert.Equal(t, "marcelo@example.com", user.Email)
	assert.NotEqual(t, "buttersweep", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("buttersweep")))

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"duplicate email", RegisterInput{Email: "taken@example.com", Password: "longenough", FirstName: "A", LastName: "B"}},
		{"short password", RegisterInput{Email: "new@example.com", Password: "short", FirstName: "A", LastName: "B"}},
		{"bad email", RegisterInput{Email: "nope", Password: "longenough", FirstName: "A", LastName: "B"}},
		{"missing last name", RegisterInput{Email: "new@example.com", Password: "longenough", FirstName: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			require.Error(t, err)
			assert.Equal(t, 400, models.StatusFor(err))
		})
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == "ana@example.com" {
				return &models.User{ID: "u-1", Email: email, Password: string(hash)}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Authenticate(context.Background(), "ANA@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	_, err = svc.Authenticate(context.Background(), "ana@example.com", "wrong")
	assert.Equal(t, 401, models.StatusFor(err))

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "correct-horse")
	assert.Equal(t, 401, models.StatusFor(err))
}

func TestUpdateProfile(t *testing.T) {
	current := &models.User{ID: "u-1", Belt: "Blue", Stripes: 2}
	var updated *models.User
	repo := &userRepoStub{
		getByIDFn: func(context.Context, string) (*models.User, error) { return current, nil },
		updateFn: func(_ context.Context, u *models.User) error {
			updated = u
			return nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.UpdateProfile(context.Background(), "u-1", models.ProfileUpdate{
		Stripes: intPtr(3),
		School:  strPtr("Atos"),
	})
	require.NoError(t, err)
	assert.Same(t, updated, user)
	assert.Equal(t, "Blue", user.Belt)
	assert.Equal(t, 3, user.Stripes)
	assert.Equal(t, "Atos", *user.School)

	updated = nil
	_, err = svc.UpdateProfile(context.Background(), "u-1", models.ProfileUpdate{Stripes: intPtr(5)})
	assert.Equal(t, 400, models.StatusFor(err))
	assert.Nil(t, updated)
}

func TestStats(t *testing.T) {
	repo := &userRepoStub{
		getByIDFn: func(context.Context, string) (*models.User, error) {
			return &models.User{ID: "u-1", Competitions: 3, Wins: 2, Losses: 1}, nil
		},
	}
	stats, err := NewUserService(repo).Stats(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 66.67, stats.WinRate)
}

func TestFollowService(t *testing.T) {
	users := &userRepoStub{
		getByIDFn: func(_ context.Context, id string) (*models.User, error) {
			if id == "ghost" {
				return nil, models.NewNotFoundMessage("User not found")
			}
			return &models.User{ID: id}, nil
		},
	}
	followed := 0
	follows := &followRepoStub{
		existsFn: func(_ context.Context, _ string, target string) (bool, error) { return target == "already", nil },
		followFn: func(context.Context, string, string) error {
			followed++
			return nil
		},
	}
	svc := NewFollowService(follows, users)

	require.NoError(t, svc.Follow(context.Background(), "me", "you"))
	assert.Equal(t, 1, followed)

	err := svc.Follow(context.Background(), "me", "me")
	assert.EqualError(t, err, "Cannot follow yourself")

	err = svc.Follow(context.Background(), "me", "ghost")
	assert.Equal(t, 404, models.StatusFor(err))

	err = svc.Follow(context.Background(), "me", "already")
	assert.Equal(t, 400, models.StatusFor(err))
	assert.Equal(t, 1, followed)
}
