package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tournament defaults applied when a create request leaves them out.
const (
	DefaultRuleset = "IBJJF"
	DefaultTier    = "LOCAL"
)

// Tournament is an event organized by a user. Only the organizer may add
// matches to it or record their results.
type Tournament struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"not null;index" json:"name"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Location    *string   `json:"location"`
	IsGi        bool      `gorm:"not null" json:"is_gi"`
	Ruleset     string    `gorm:"not null" json:"ruleset"`
	Tier        string    `gorm:"not null" json:"tier"`
	OrganizerID string    `gorm:"type:varchar(36);not null;index" json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`

	Organizer User    `gorm:"foreignKey:OrganizerID" json:"organizer"`
	Matches   []Match `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Tournament) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Ruleset == "" {
		t.Ruleset = DefaultRuleset
	}
	if t.Tier == "" {
		t.Tier = DefaultTier
	}
	return nil
}

// Match is a single bout between two competitors of a tournament.
type Match struct {
	ID             string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TournamentID   string  `gorm:"type:varchar(36);not null;index" json:"tournament_id"`
	Round          string  `gorm:"not null" json:"round"`
	Belt           string  `gorm:"not null" json:"belt"`
	WeightClass    string  `gorm:"not null" json:"weight_class"`
	AgeDivision    *string `json:"age_division"`
	Gender         string  `gorm:"not null" json:"gender"`
	CompetitorAID  string  `gorm:"column:competitor_a_id;type:varchar(36);not null;index" json:"competitor_a_id"`
	CompetitorBID  string  `gorm:"column:competitor_b_id;type:varchar(36);not null;index" json:"competitor_b_id"`
	WinnerID       *string `gorm:"type:varchar(36)" json:"winner_id"`
	Method         *string `json:"method"`
	SubmissionType *string `json:"submission_type"`

	PointsA     int  `gorm:"column:points_a;not null;default:0" json:"points_a"`
	PointsB     int  `gorm:"column:points_b;not null;default:0" json:"points_b"`
	AdvantagesA int  `gorm:"column:advantages_a;not null;default:0" json:"advantages_a"`
	AdvantagesB int  `gorm:"column:advantages_b;not null;default:0" json:"advantages_b"`
	PenaltiesA  int  `gorm:"column:penalties_a;not null;default:0" json:"penalties_a"`
	PenaltiesB  int  `gorm:"column:penalties_b;not null;default:0" json:"penalties_b"`
	DurationSec *int `json:"duration_sec"`

	ResultFinal      bool      `gorm:"not null;default:false" json:"result_final"`
	AwardedWinnerPts int       `gorm:"not null;default:0" json:"awarded_winner_pts"`
	AwardedLoserPts  int       `gorm:"not null;default:0" json:"awarded_loser_pts"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`

	Tournament  *Tournament `gorm:"foreignKey:TournamentID" json:"tournament,omitempty"`
	CompetitorA User        `gorm:"foreignKey:CompetitorAID" json:"competitor_a"`
	CompetitorB User        `gorm:"foreignKey:CompetitorBID" json:"competitor_b"`
	Winner      *User       `gorm:"foreignKey:WinnerID" json:"winner,omitempty"`
}

func (m *Match) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// HasCompetitor reports whether userID fights in m.
func (m *Match) HasCompetitor(userID string) bool {
	return m.CompetitorAID == userID || m.CompetitorBID == userID
}
