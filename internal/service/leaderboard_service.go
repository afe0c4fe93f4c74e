package service

import (
	"context"

	"bjjsocial/internal/models"
	"bjjsocial/internal/observability"
	"bjjsocial/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// Pagination is a validated page request. Page starts at 1.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) offset() int {
	return (p.Page - 1) * p.Limit
}

// LeaderboardService serves the athlete and school rankings.
type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	userRepo        repository.UserRepository
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository, userRepo repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		userRepo:        userRepo,
	}
}

// Rankings returns one page of entries matching every set filter, highest
// points first.
func (s *LeaderboardService) Rankings(ctx context.Context, filter models.LeaderboardFilter, p Pagination) ([]models.LeaderboardEntry, error) {
	span, ctx := observability.NewSpan(ctx, "LeaderboardService.Rankings",
		attribute.Int("page", p.Page), attribute.Int("limit", p.Limit))
	defer span.End()
	observability.LeaderboardQueries.WithLabelValues("global").Inc()

	entries, err := s.leaderboardRepo.List(ctx, filter, p.Limit, p.offset())
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int("rows", len(entries)))
	return entries, nil
}

// SchoolLeaderboard is Rankings restricted to athletes of one school. A
// school without athletes yields an empty page without touching the
// leaderboard table.
func (s *LeaderboardService) SchoolLeaderboard(ctx context.Context, school string, filter models.LeaderboardFilter, p Pagination) ([]models.LeaderboardEntry, error) {
	span, ctx := observability.NewSpan(ctx, "LeaderboardService.SchoolLeaderboard",
		attribute.String("school", school), attribute.Int("page", p.Page))
	defer span.End()
	observability.LeaderboardQueries.WithLabelValues("school").Inc()

	userIDs, err := s.userRepo.IDsBySchool(ctx, school)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if len(userIDs) == 0 {
		return []models.LeaderboardEntry{}, nil
	}

	entries, err := s.leaderboardRepo.ListForUsers(ctx, userIDs, filter, p.Limit, p.offset())
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return entries, nil
}

func (s *LeaderboardService) SchoolRankings(ctx context.Context, season *string, p Pagination) ([]models.SchoolRanking, error) {
	span, ctx := observability.NewSpan(ctx, "LeaderboardService.SchoolRankings")
	defer span.End()
	observability.LeaderboardQueries.WithLabelValues("school_rankings").Inc()

	rankings, err := s.leaderboardRepo.SchoolRankings(ctx, season, p.Limit, p.offset())
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return rankings, nil
}

// UserEntries lists every entry of one athlete. Unknown users yield an
// empty list.
func (s *LeaderboardService) UserEntries(ctx context.Context, userID string, season *string) ([]models.LeaderboardEntry, error) {
	observability.LeaderboardQueries.WithLabelValues("user").Inc()
	return s.leaderboardRepo.ListByUser(ctx, userID, season)
}
