package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultAgeDivision is stored when an entry carries no age division.
const DefaultAgeDivision = "UNSPECIFIED"

// LeaderboardEntry holds an athlete's cumulative results in one division.
// (user, season, ruleset, gi, belt, weight class, age division, gender)
// identifies at most one row.
type LeaderboardEntry struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_leaderboard_entry,priority:1" json:"user_id"`
	Season      string    `gorm:"not null;uniqueIndex:idx_leaderboard_entry,priority:2;index" json:"season"`
	Ruleset     string    `gorm:"not null;uniqueIndex:idx_leaderboard_entry,priority:3" json:"ruleset"`
	IsGi        bool      `gorm:"not null;uniqueIndex:idx_leaderboard_entry,priority:4" json:"is_gi"`
	Belt        string    `gorm:"not null;uniqueIndex:idx_leaderboard_entry,priority:5" json:"belt"`
	WeightClass string    `gorm:"not null;uniqueIndex:idx_leaderboard_entry,priority:6" json:"weight_class"`
	AgeDivision string    `gorm:"not null;default:UNSPECIFIED;uniqueIndex:idx_leaderboard_entry,priority:7" json:"age_division"`
	Gender      string    `gorm:"not null;uniqueIndex:idx_leaderboard_entry,priority:8" json:"gender"`
	Points      int       `gorm:"not null;default:0;index" json:"points"`
	Submissions int       `gorm:"not null;default:0" json:"submissions"`
	Wins        int       `gorm:"not null;default:0" json:"wins"`
	Losses      int       `gorm:"not null;default:0" json:"losses"`
	LastUpdated time.Time `json:"last_updated"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}

func (e *LeaderboardEntry) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.AgeDivision == "" {
		e.AgeDivision = DefaultAgeDivision
	}
	if e.LastUpdated.IsZero() {
		e.LastUpdated = time.Now().UTC()
	}
	return nil
}

// LeaderboardFilter narrows a leaderboard query. Nil fields are not applied;
// the rest are combined with AND.
type LeaderboardFilter struct {
	Season      *string
	Ruleset     *string
	IsGi        *bool
	Belt        *string
	WeightClass *string
	AgeDivision *string
	Gender      *string
}

// SchoolRanking is the aggregate standing of one school.
type SchoolRanking struct {
	School       string `json:"school"`
	TotalPoints  int64  `json:"total_points"`
	AthleteCount int64  `json:"athlete_count"`
}
