// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBelt is assigned to athletes that register without a rank.
const DefaultBelt = "White"

// User represents an athlete account.
type User struct {
	ID              string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email           string  `gorm:"uniqueIndex;not null" json:"email"`
	Password        string  `gorm:"not null" json:"-"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	ProfileImageURL *string `json:"profile_image_url"`

	Belt          string  `gorm:"not null;default:White" json:"belt"`
	Stripes       int     `gorm:"not null;default:0" json:"stripes"`
	Weight        *string `json:"weight"`
	WeightClass   *string `json:"weight_class"`
	School        *string `gorm:"index" json:"school"`
	Instructor    *string `json:"instructor"`
	YearsTraining *string `json:"years_training"`
	Competitions  int     `gorm:"not null;default:0" json:"competitions"`
	Wins          int     `gorm:"not null;default:0" json:"wins"`
	Losses        int     `gorm:"not null;default:0" json:"losses"`
	Bio           *string `gorm:"type:text" json:"bio"`
	Location      *string `json:"location"`
	AgeDivision   *string `json:"age_division"`
	Gender        *string `json:"gender"`

	FollowersCount int `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount int `gorm:"not null;default:0" json:"following_count"`
	PostsCount     int `gorm:"not null;default:0" json:"posts_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID and the default belt.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Belt == "" {
		u.Belt = DefaultBelt
	}
	return nil
}

// UserStats is the competition record of one athlete.
type UserStats struct {
	Competitions int     `json:"competitions"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
}

// StatsFor derives the competition record of u. The win rate is a
// percentage rounded to two decimals, zero when u never competed.
func StatsFor(u *User) UserStats {
	stats := UserStats{
		Competitions: u.Competitions,
		Wins:         u.Wins,
		Losses:       u.Losses,
	}
	if u.Competitions > 0 {
		rate := float64(u.Wins) / float64(u.Competitions) * 100
		stats.WinRate = roundTo(rate, 2)
	}
	return stats
}
