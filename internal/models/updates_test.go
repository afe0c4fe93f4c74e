package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestMatchResultUpdate_ApplyPartial(t *testing.T) {
	m := &Match{
		CompetitorAID: "a",
		CompetitorBID: "b",
		PointsB:       4,
		AdvantagesA:   1,
		AdvantagesB:   2,
	}

	u := MatchResultUpdate{PointsA: intPtr(10), Method: strPtr("Submission")}
	require.NoError(t, u.Validate(m))
	u.Apply(m)

	assert.Equal(t, 10, m.PointsA)
	assert.Equal(t, 4, m.PointsB)
	assert.Equal(t, 1, m.AdvantagesA)
	assert.Equal(t, 2, m.AdvantagesB)
	require.NotNil(t, m.Method)
	assert.Equal(t, "Submission", *m.Method)
	assert.Nil(t, m.WinnerID)
	assert.True(t, m.ResultFinal)
}

func TestMatchResultUpdate_ZeroIsApplied(t *testing.T) {
	m := &Match{PointsA: 6, PenaltiesB: 2}
	u := MatchResultUpdate{PointsA: intPtr(0), PenaltiesB: intPtr(0), DurationSec: intPtr(0)}
	u.Apply(m)

	assert.Equal(t, 0, m.PointsA)
	assert.Equal(t, 0, m.PenaltiesB)
	require.NotNil(t, m.DurationSec)
	assert.Equal(t, 0, *m.DurationSec)
}

func TestMatchResultUpdate_EmptyStringsIgnored(t *testing.T) {
	method := "Points"
	m := &Match{Method: &method}
	u := MatchResultUpdate{Method: strPtr(""), WinnerID: strPtr("  "), SubmissionType: strPtr("")}
	u.Apply(m)

	require.NotNil(t, m.Method)
	assert.Equal(t, "Points", *m.Method)
	assert.Nil(t, m.WinnerID)
	assert.Nil(t, m.SubmissionType)
}

func TestMatchResultUpdate_Validate(t *testing.T) {
	m := &Match{CompetitorAID: "a", CompetitorBID: "b"}

	tests := []struct {
		name    string
		update  MatchResultUpdate
		wantErr bool
	}{
		{"empty update", MatchResultUpdate{}, false},
		{"winner is competitor b", MatchResultUpdate{WinnerID: strPtr("b")}, false},
		{"winner outside match", MatchResultUpdate{WinnerID: strPtr("c")}, true},
		{"negative points", MatchResultUpdate{PointsA: intPtr(-1)}, true},
		{"negative duration", MatchResultUpdate{DurationSec: intPtr(-30)}, true},
		{"negative awarded points", MatchResultUpdate{AwardedLoserPts: intPtr(-2)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate(m)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var appErr *AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, CodeValidation, appErr.Code)
		})
	}
}

func TestProfileUpdate_Apply(t *testing.T) {
	school := "Gracie Barra"
	u := &User{Belt: "Blue", School: &school, Stripes: 2}

	p := ProfileUpdate{Belt: strPtr(" Purple "), Bio: strPtr("Guard player")}
	require.NoError(t, p.Validate())
	p.Apply(u)

	assert.Equal(t, "Purple", u.Belt)
	assert.Equal(t, 2, u.Stripes)
	require.NotNil(t, u.School)
	assert.Equal(t, "Gracie Barra", *u.School)
	require.NotNil(t, u.Bio)
	assert.Equal(t, "Guard player", *u.Bio)
}

func TestProfileUpdate_BlankSchoolClears(t *testing.T) {
	school := "Alliance"
	u := &User{School: &school}
	p := ProfileUpdate{School: strPtr("")}
	p.Apply(u)
	assert.Nil(t, u.School)
}

func TestProfileUpdate_Validate(t *testing.T) {
	assert.Error(t, (&ProfileUpdate{Stripes: intPtr(5)}).Validate())
	assert.Error(t, (&ProfileUpdate{Belt: strPtr(" ")}).Validate())
	assert.NoError(t, (&ProfileUpdate{Stripes: intPtr(4)}).Validate())
}

func TestStatsFor(t *testing.T) {
	assert.Equal(t, 0.0, StatsFor(&User{}).WinRate)

	stats := StatsFor(&User{Competitions: 3, Wins: 2, Losses: 1})
	assert.Equal(t, 66.67, stats.WinRate)
	assert.Equal(t, 3, stats.Competitions)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 404, StatusFor(NewNotFoundError("User", "x")))
	assert.Equal(t, 400, StatusFor(NewValidationError("bad")))
	assert.Equal(t, 401, StatusFor(NewUnauthorizedError("no")))
	assert.Equal(t, 403, StatusFor(NewForbiddenError("no")))
	assert.Equal(t, 500, StatusFor(NewInternalError(errors.New("boom"))))
	assert.Equal(t, 500, StatusFor(errors.New("plain")))
}
