package models

import (
	"math"
	"strings"
)

// MatchResultUpdate carries the optional fields of a match result
// submission. A nil pointer means "leave unchanged"; an empty string
// is treated the same as nil.
type MatchResultUpdate struct {
	WinnerID       *string `json:"winnerId"`
	Method         *string `json:"method"`
	SubmissionType *string `json:"submissionType"`
	PointsA        *int    `json:"pointsA"`
	PointsB        *int    `json:"pointsB"`
	AdvantagesA    *int    `json:"advantagesA"`
	AdvantagesB    *int    `json:"advantagesB"`
	PenaltiesA     *int    `json:"penaltiesA"`
	PenaltiesB     *int    `json:"penaltiesB"`
	DurationSec    *int    `json:"durationSec"`

	AwardedWinnerPts *int `json:"awardedWinnerPts"`
	AwardedLoserPts  *int `json:"awardedLoserPts"`
}

// Validate rejects negative scores and a winner that did not fight in m.
func (u *MatchResultUpdate) Validate(m *Match) error {
	counts := []struct {
		name  string
		value *int
	}{
		{"pointsA", u.PointsA},
		{"pointsB", u.PointsB},
		{"advantagesA", u.AdvantagesA},
		{"advantagesB", u.AdvantagesB},
		{"penaltiesA", u.PenaltiesA},
		{"penaltiesB", u.PenaltiesB},
		{"durationSec", u.DurationSec},
		{"awardedWinnerPts", u.AwardedWinnerPts},
		{"awardedLoserPts", u.AwardedLoserPts},
	}
	for _, c := range counts {
		if c.value != nil && *c.value < 0 {
			return NewValidationError(c.name + " must not be negative")
		}
	}
	if w := present(u.WinnerID); w != nil && !m.HasCompetitor(*w) {
		return NewValidationError("winnerId must be one of the match competitors")
	}
	return nil
}

// Apply copies the present fields onto m and marks the result final.
func (u *MatchResultUpdate) Apply(m *Match) {
	if w := present(u.WinnerID); w != nil {
		m.WinnerID = w
	}
	if v := present(u.Method); v != nil {
		m.Method = v
	}
	if v := present(u.SubmissionType); v != nil {
		m.SubmissionType = v
	}
	setInt(&m.PointsA, u.PointsA)
	setInt(&m.PointsB, u.PointsB)
	setInt(&m.AdvantagesA, u.AdvantagesA)
	setInt(&m.AdvantagesB, u.AdvantagesB)
	setInt(&m.PenaltiesA, u.PenaltiesA)
	setInt(&m.PenaltiesB, u.PenaltiesB)
	if u.DurationSec != nil {
		d := *u.DurationSec
		m.DurationSec = &d
	}
	setInt(&m.AwardedWinnerPts, u.AwardedWinnerPts)
	setInt(&m.AwardedLoserPts, u.AwardedLoserPts)
	m.ResultFinal = true
}

// ProfileUpdate carries the editable profile fields. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Belt            *string `json:"belt"`
	Stripes         *int    `json:"stripes"`
	Weight          *string `json:"weight"`
	WeightClass     *string `json:"weightClass"`
	School          *string `json:"school"`
	Instructor      *string `json:"instructor"`
	YearsTraining   *string `json:"yearsTraining"`
	Bio             *string `json:"bio"`
	Location        *string `json:"location"`
	AgeDivision     *string `json:"ageDivision"`
	Gender          *string `json:"gender"`
}

// Validate checks the present fields.
func (p *ProfileUpdate) Validate() error {
	if p.Stripes != nil && (*p.Stripes < 0 || *p.Stripes > 4) {
		return NewValidationError("stripes must be between 0 and 4")
	}
	if p.Belt != nil && strings.TrimSpace(*p.Belt) == "" {
		return NewValidationError("belt must not be empty")
	}
	return nil
}

// Apply copies the present fields onto u. A blank school clears it so the
// athlete drops out of school rankings.
func (p *ProfileUpdate) Apply(u *User) {
	setOptional(&u.FirstName, p.FirstName)
	setOptional(&u.LastName, p.LastName)
	setOptional(&u.ProfileImageURL, p.ProfileImageURL)
	if p.Belt != nil {
		u.Belt = strings.TrimSpace(*p.Belt)
	}
	if p.Stripes != nil {
		u.Stripes = *p.Stripes
	}
	setOptional(&u.Weight, p.Weight)
	setOptional(&u.WeightClass, p.WeightClass)
	setOptional(&u.School, p.School)
	setOptional(&u.Instructor, p.Instructor)
	setOptional(&u.YearsTraining, p.YearsTraining)
	setOptional(&u.Bio, p.Bio)
	setOptional(&u.Location, p.Location)
	setOptional(&u.AgeDivision, p.AgeDivision)
	setOptional(&u.Gender, p.Gender)
}

func present(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// setOptional stores a trimmed copy of src, or nil when src is blank.
func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	*dst = present(src)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
