package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"bjjsocial/internal/middleware"
	"bjjsocial/internal/models"
	"bjjsocial/internal/observability"
	"bjjsocial/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// TournamentService covers tournaments, their matches and the recording
// of match results.
type TournamentService struct {
	tournamentRepo repository.TournamentRepository
	matchRepo      repository.MatchRepository
	userRepo       repository.UserRepository
}

type CreateTournamentInput struct {
	OrganizerID string
	Name        string
	Date        time.Time
	Location    *string
	IsGi        *bool
	Ruleset     string
	Tier        string
}

type CreateMatchInput struct {
	OrganizerID   string
	TournamentID  string
	Round         string
	Belt          string
	WeightClass   string
	AgeDivision   *string
	Gender        string
	CompetitorAID string
	CompetitorBID string
}

func NewTournamentService(
	tournamentRepo repository.TournamentRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		userRepo:       userRepo,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, in CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("name is required")
	}
	if in.Date.IsZero() {
		return nil, models.NewValidationError("date is required")
	}

	isGi := true
	if in.IsGi != nil {
		isGi = *in.IsGi
	}
	tournament := &models.Tournament{
		Name:        name,
		Date:        in.Date.UTC(),
		Location:    in.Location,
		IsGi:        isGi,
		Ruleset:     strings.TrimSpace(in.Ruleset),
		Tier:        strings.TrimSpace(in.Tier),
		OrganizerID: in.OrganizerID,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, err
	}
	return s.tournamentRepo.GetByID(ctx, tournament.ID)
}

func (s *TournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	return s.tournamentRepo.GetByID(ctx, id)
}

func (s *TournamentService) ListTournaments(ctx context.Context, filter repository.TournamentFilter) ([]models.Tournament, error) {
	return s.tournamentRepo.List(ctx, filter)
}

// CreateMatch adds a match to a tournament. Only the organizer may do so.
func (s *TournamentService) CreateMatch(ctx context.Context, in CreateMatchInput) (*models.Match, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, in.TournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.OrganizerID != in.OrganizerID {
		return nil, models.NewForbiddenError("Only tournament organizers can create matches")
	}

	required := []struct{ name, value string }{
		{"round", in.Round},
		{"belt", in.Belt},
		{"weightClass", in.WeightClass},
		{"gender", in.Gender},
		{"competitorAId", in.CompetitorAID},
		{"competitorBId", in.CompetitorBID},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, models.NewValidationError(f.name + " is required")
		}
	}
	if in.CompetitorAID == in.CompetitorBID {
		return nil, models.NewValidationError("A competitor cannot face themselves")
	}
	for _, id := range []string{in.CompetitorAID, in.CompetitorBID} {
		if err := s.ensureCompetitor(ctx, id); err != nil {
			return nil, err
		}
	}

	match := &models.Match{
		TournamentID:  tournament.ID,
		Round:         in.Round,
		Belt:          in.Belt,
		WeightClass:   in.WeightClass,
		AgeDivision:   in.AgeDivision,
		Gender:        in.Gender,
		CompetitorAID: in.CompetitorAID,
		CompetitorBID: in.CompetitorBID,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *TournamentService) ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error) {
	return s.matchRepo.ListByTournament(ctx, tournamentID)
}

func (s *TournamentService) ListUserMatches(ctx context.Context, userID string, limit int) ([]models.Match, error) {
	return s.matchRepo.ListByUser(ctx, userID, limit)
}

// FinalizeMatch applies a partial result to a match and marks it final.
// Only the organizer of the match's tournament may call it; nothing is
// written when the caller is rejected or the update is invalid.
// Finalizing an already final match is allowed and overwrites the result.
func (s *TournamentService) FinalizeMatch(ctx context.Context, userID, matchID string, upd models.MatchResultUpdate) (*models.Match, error) {
	span, ctx := observability.NewSpan(ctx, "TournamentService.FinalizeMatch",
		attribute.String("match.id", matchID))
	defer span.End()

	match, err := s.AuthorizeResult(ctx, userID, matchID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if err := upd.Validate(match); err != nil {
		return nil, err
	}

	refinalized := match.ResultFinal
	upd.Apply(match)
	if err := s.matchRepo.Update(ctx, match); err != nil {
		span.SetError(err)
		return nil, err
	}

	observability.MatchResultsRecorded.WithLabelValues(strconv.FormatBool(refinalized)).Inc()
	span.AddAttributes(attribute.Bool("match.refinalized", refinalized))
	if refinalized {
		middleware.Logger.WarnContext(ctx, "match result overwritten",
			"match_id", match.ID, "tournament_id", match.TournamentID)
	}
	return match, nil
}

// AuthorizeResult loads the match and checks that userID organizes its
// tournament.
func (s *TournamentService) AuthorizeResult(ctx context.Context, userID, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Tournament == nil || match.Tournament.OrganizerID != userID {
		return nil, models.NewForbiddenError("Only tournament organizers can submit match results")
	}
	return match, nil
}

func (s *TournamentService) ensureCompetitor(ctx context.Context, id string) error {
	_, err := s.userRepo.GetByID(ctx, id)
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
		return models.NewValidationError("Competitor " + id + " not found")
	}
	return err
}
