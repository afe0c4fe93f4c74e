package views

import (
	"time"

	"bjjsocial/internal/models"
)

type LeaderboardEntry struct {
	ID          string      `json:"id"`
	Season      string      `json:"season"`
	Ruleset     string      `json:"ruleset"`
	IsGi        bool        `json:"isGi"`
	Belt        string      `json:"belt"`
	WeightClass string      `json:"weightClass"`
	AgeDivision string      `json:"ageDivision"`
	Gender      string      `json:"gender"`
	UserID      string      `json:"userId"`
	Points      int         `json:"points"`
	Submissions int         `json:"submissions"`
	Wins        int         `json:"wins"`
	Losses      int         `json:"losses"`
	LastUpdated time.Time   `json:"lastUpdated"`
	User        *PublicUser `json:"user"`
}

func LeaderboardEntryOf(e *models.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		ID:          e.ID,
		Season:      e.Season,
		Ruleset:     e.Ruleset,
		IsGi:        e.IsGi,
		Belt:        e.Belt,
		WeightClass: e.WeightClass,
		AgeDivision: e.AgeDivision,
		Gender:      e.Gender,
		UserID:      e.UserID,
		Points:      e.Points,
		Submissions: e.Submissions,
		Wins:        e.Wins,
		Losses:      e.Losses,
		LastUpdated: e.LastUpdated,
		User:        optionalUser(&e.User),
	}
}

func LeaderboardEntries(es []models.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(es))
	for i := range es {
		out = append(out, LeaderboardEntryOf(&es[i]))
	}
	return out
}

type SchoolRanking struct {
	School       string `json:"school"`
	TotalPoints  int64  `json:"totalPoints"`
	AthleteCount int64  `json:"athleteCount"`
}

func SchoolRankings(rs []models.SchoolRanking) []SchoolRanking {
	out := make([]SchoolRanking, 0, len(rs))
	for _, r := range rs {
		out = append(out, SchoolRanking(r))
	}
	return out
}

// Page is the envelope of a paginated list. HasMore is true when the page
// came back full, so an exactly exhausted last page still reports true.
type Page[T any] struct {
	Data    []T    `json:"data"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	School  string `json:"school,omitempty"`
	HasMore bool   `json:"hasMore"`
}

func NewPage[T any](data []T, page, limit int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:    data,
		Page:    page,
		Limit:   limit,
		HasMore: len(data) == limit,
	}
}
