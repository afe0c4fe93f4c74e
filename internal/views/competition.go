package views

import (
	"time"

	"bjjsocial/internal/models"
)

type Tournament struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Date        time.Time   `json:"date"`
	Location    *string     `json:"location"`
	IsGi        bool        `json:"isGi"`
	Ruleset     string      `json:"ruleset"`
	Tier        string      `json:"tier"`
	OrganizerID string      `json:"organizerId"`
	CreatedAt   time.Time   `json:"createdAt"`
	Organizer   *PublicUser `json:"organizer,omitempty"`
}

func TournamentOf(t *models.Tournament) Tournament {
	return Tournament{
		ID:          t.ID,
		Name:        t.Name,
		Date:        t.Date,
		Location:    t.Location,
		IsGi:        t.IsGi,
		Ruleset:     t.Ruleset,
		Tier:        t.Tier,
		OrganizerID: t.OrganizerID,
		CreatedAt:   t.CreatedAt,
		Organizer:   optionalUser(&t.Organizer),
	}
}

func Tournaments(ts []models.Tournament) []Tournament {
	out := make([]Tournament, 0, len(ts))
	for i := range ts {
		out = append(out, TournamentOf(&ts[i]))
	}
	return out
}

// TournamentSummary is the short tournament form nested in match history.
type TournamentSummary struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Ruleset string    `json:"ruleset"`
	IsGi    bool      `json:"isGi"`
}

type Match struct {
	ID               string             `json:"id"`
	TournamentID     string             `json:"tournamentId"`
	Round            string             `json:"round"`
	Belt             string             `json:"belt"`
	WeightClass      string             `json:"weightClass"`
	AgeDivision      *string            `json:"ageDivision"`
	Gender           string             `json:"gender"`
	CompetitorAID    string             `json:"competitorAId"`
	CompetitorBID    string             `json:"competitorBId"`
	WinnerID         *string            `json:"winnerId"`
	Method           *string            `json:"method"`
	SubmissionType   *string            `json:"submissionType"`
	PointsA          int                `json:"pointsA"`
	PointsB          int                `json:"pointsB"`
	AdvantagesA      int                `json:"advantagesA"`
	AdvantagesB      int                `json:"advantagesB"`
	PenaltiesA       int                `json:"penaltiesA"`
	PenaltiesB       int                `json:"penaltiesB"`
	DurationSec      *int               `json:"durationSec"`
	ResultFinal      bool               `json:"resultFinal"`
	AwardedWinnerPts int                `json:"awardedWinnerPts"`
	AwardedLoserPts  int                `json:"awardedLoserPts"`
	CreatedAt        time.Time          `json:"createdAt"`
	CompetitorA      *PublicUser        `json:"competitorA,omitempty"`
	CompetitorB      *PublicUser        `json:"competitorB,omitempty"`
	Winner           *PublicUser        `json:"winner,omitempty"`
	Tournament       *TournamentSummary `json:"tournament,omitempty"`
}

func MatchOf(m *models.Match) Match {
	out := Match{
		ID:               m.ID,
		TournamentID:     m.TournamentID,
		Round:            m.Round,
		Belt:             m.Belt,
		WeightClass:      m.WeightClass,
		AgeDivision:      m.AgeDivision,
		Gender:           m.Gender,
		CompetitorAID:    m.CompetitorAID,
		CompetitorBID:    m.CompetitorBID,
		WinnerID:         m.WinnerID,
		Method:           m.Method,
		SubmissionType:   m.SubmissionType,
		PointsA:          m.PointsA,
		PointsB:          m.PointsB,
		AdvantagesA:      m.AdvantagesA,
		AdvantagesB:      m.AdvantagesB,
		PenaltiesA:       m.PenaltiesA,
		PenaltiesB:       m.PenaltiesB,
		DurationSec:      m.DurationSec,
		ResultFinal:      m.ResultFinal,
		AwardedWinnerPts: m.AwardedWinnerPts,
		AwardedLoserPts:  m.AwardedLoserPts,
		CreatedAt:        m.CreatedAt,
		CompetitorA:      optionalUser(&m.CompetitorA),
		CompetitorB:      optionalUser(&m.CompetitorB),
		Winner:           optionalUser(m.Winner),
	}
	if t := m.Tournament; t != nil && t.ID != "" {
		out.Tournament = &TournamentSummary{
			ID:      t.ID,
			Name:    t.Name,
			Date:    t.Date,
			Ruleset: t.Ruleset,
			IsGi:    t.IsGi,
		}
	}
	return out
}

func Matches(ms []models.Match) []Match {
	out := make([]Match, 0, len(ms))
	for i := range ms {
		out = append(out, MatchOf(&ms[i]))
	}
	return out
}
