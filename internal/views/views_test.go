package views

import (
	"encoding/json"
	"testing"
	"time"

	"bjjsocial/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_OmitsPasswordAndUsesCamelCase(t *testing.T) {
	school := "Checkmat"
	u := &models.User{
		ID:             "u1",
		Email:          "a@example.com",
		Password:       "$2a$10$hash",
		Belt:           "Brown",
		School:         &school,
		FollowersCount: 3,
	}

	raw, err := json.Marshal(User(u))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "followers_count")
	assert.Equal(t, "Checkmat", body["school"])
	assert.Equal(t, float64(3), body["followersCount"])
	assert.Contains(t, body, "profileImageUrl")
	assert.Contains(t, body, "createdAt")
}

func TestLeaderboardEntryOf_EmbedsUser(t *testing.T) {
	e := &models.LeaderboardEntry{
		ID:          "e1",
		Season:      "2024",
		Ruleset:     "IBJJF",
		IsGi:        true,
		Belt:        "Blue",
		WeightClass: "Light",
		AgeDivision: models.DefaultAgeDivision,
		Gender:      "Male",
		UserID:      "u1",
		Points:      42,
		LastUpdated: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		User:        models.User{ID: "u1", Email: "a@example.com"},
	}

	out := LeaderboardEntryOf(e)
	require.NotNil(t, out.User)
	assert.Equal(t, "u1", out.User.ID)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"isGi":true`)
	assert.Contains(t, string(raw), `"weightClass":"Light"`)
	assert.Contains(t, string(raw), `"lastUpdated":"2024-05-01T00:00:00Z"`)
}

func TestMatchOf_TournamentSummary(t *testing.T) {
	m := &models.Match{
		ID:            "m1",
		TournamentID:  "t1",
		CompetitorAID: "a",
		CompetitorBID: "b",
		CompetitorA:   models.User{ID: "a"},
		CompetitorB:   models.User{ID: "b"},
		Tournament:    &models.Tournament{ID: "t1", Name: "Pan Ams", Ruleset: "IBJJF", IsGi: true},
	}

	out := MatchOf(m)
	require.NotNil(t, out.Tournament)
	assert.Equal(t, "Pan Ams", out.Tournament.Name)
	assert.Nil(t, out.Winner)
	require.NotNil(t, out.CompetitorA)
	assert.Equal(t, "a", out.CompetitorA.ID)
}

func TestNewPage_HasMore(t *testing.T) {
	full := NewPage([]int{1, 2}, 1, 2)
	assert.True(t, full.HasMore)

	short := NewPage([]int{1}, 2, 2)
	assert.False(t, short.HasMore)

	empty := NewPage[int](nil, 1, 50)
	assert.NotNil(t, empty.Data)
	assert.False(t, empty.HasMore)
}
