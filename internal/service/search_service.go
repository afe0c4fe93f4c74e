package service

import (
	"context"
	"strings"

	"bjjsocial/internal/models"
	"bjjsocial/internal/repository"
)

const searchLimitPerKind = 20

// SearchResult is one hit of the combined search.
type SearchResult struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SearchService struct {
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	tournamentRepo repository.TournamentRepository
}

func NewSearchService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	tournamentRepo repository.TournamentRepository,
) *SearchService {
	return &SearchService{
		userRepo:       userRepo,
		postRepo:       postRepo,
		tournamentRepo: tournamentRepo,
	}
}

// Search matches q against athlete names, post content and tournament
// names. Results are grouped users, then posts, then tournaments.
func (s *SearchService) Search(ctx context.Context, q string) ([]SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, models.NewValidationError("q is required")
	}

	users, err := s.userRepo.Search(ctx, q, searchLimitPerKind)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.Search(ctx, q, searchLimitPerKind)
	if err != nil {
		return nil, err
	}
	tournaments, err := s.tournamentRepo.Search(ctx, q, searchLimitPerKind)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(users)+len(posts)+len(tournaments))
	for _, u := range users {
		results = append(results, SearchResult{
			ID:          u.ID,
			Type:        "user",
			Title:       fullName(&u),
			Description: deref(u.Bio),
		})
	}
	for _, p := range posts {
		results = append(results, SearchResult{
			ID:          p.ID,
			Type:        "post",
			Title:       "Post by " + deref(p.User.FirstName),
			Description: p.Content,
		})
	}
	for _, t := range tournaments {
		results = append(results, SearchResult{
			ID:          t.ID,
			Type:        "tournament",
			Title:       t.Name,
			Description: deref(t.Location),
		})
	}
	return results, nil
}

func fullName(u *models.User) string {
	return strings.TrimSpace(deref(u.FirstName) + " " + deref(u.LastName))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
