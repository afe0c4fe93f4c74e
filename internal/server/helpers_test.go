package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bjjsocial/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- humanizeParam (pure function, no HTTP) ---

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"matchId", "match ID"},
		{"tournamentMatchId", "tournament match ID"},
		{"school", "school"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeParam(tt.param))
		})
	}
}

// --- parsePagination ---

func paginationApp() *fiber.App {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		p, err := parsePagination(c, 25)
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"page": p.Page, "limit": p.Limit})
	})
	return app
}

func TestParsePagination_Defaults(t *testing.T) {
	resp, err := paginationApp().Test(httptest.NewRequest(http.MethodGet, "/items", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(25), body["limit"])
}

func TestParsePagination_Bounds(t *testing.T) {
	tests := []struct {
		query  string
		status int
	}{
		{"page=3&limit=100", http.StatusOK},
		{"limit=1", http.StatusOK},
		{"page=0", http.StatusBadRequest},
		{"page=-2", http.StatusBadRequest},
		{"limit=101", http.StatusBadRequest},
		{"limit=ten", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, err := paginationApp().Test(httptest.NewRequest(http.MethodGet, "/items?"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

// --- parseUUIDParam ---

func TestParseUUIDParam(t *testing.T) {
	app := fiber.New()
	app.Get("/matches/:matchId", func(c *fiber.Ctx) error {
		id, err := parseUUIDParam(c, "matchId")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	id := uuid.NewString()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/matches/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/matches/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid match ID", body.Error)
}

// --- parseLeaderboardFilter ---

func TestParseLeaderboardFilter(t *testing.T) {
	var got models.LeaderboardFilter
	app := fiber.New()
	app.Get("/lb", func(c *fiber.Ctx) error {
		f, err := parseLeaderboardFilter(c)
		if err != nil {
			return nil
		}
		got = f
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/lb?isGi=false&belt=Brown&season=2024&gender=", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, got.IsGi)
	assert.False(t, *got.IsGi)
	assert.Equal(t, "Brown", *got.Belt)
	assert.Equal(t, "2024", *got.Season)
	assert.Nil(t, got.Gender)
	assert.Nil(t, got.Ruleset)
	assert.Nil(t, got.WeightClass)
}
