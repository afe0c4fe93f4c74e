package repository

import (
	"context"
	"errors"
	"time"

	"bjjsocial/internal/models"

	"gorm.io/gorm"
)

// TournamentFilter narrows a tournament listing. Zero values are not applied.
type TournamentFilter struct {
	Query   string
	Ruleset string
	IsGi    *bool
	// Season is a calendar year matched against the tournament date.
	Season *int
	Limit  int
	Offset int
}

// TournamentRepository defines persistence operations for tournaments.
type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context, filter TournamentFilter) ([]models.Tournament, error)
	Search(ctx context.Context, query string, limit int) ([]models.Tournament, error)
}

type tournamentRepository struct {
	db *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	if err := r.db.WithContext(ctx).Omit("Organizer").Create(tournament).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := r.db.WithContext(ctx).Preload("Organizer").Where("id = ?", id).First(&tournament).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundMessage("Tournament not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &tournament, nil
}

func (r *tournamentRepository) List(ctx context.Context, filter TournamentFilter) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	q := r.db.WithContext(ctx).Preload("Organizer")
	if filter.Query != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", likePattern(filter.Query))
	}
	if filter.Ruleset != "" {
		q = q.Where("ruleset = ?", filter.Ruleset)
	}
	if filter.IsGi != nil {
		q = q.Where("is_gi = ?", *filter.IsGi)
	}
	if filter.Season != nil {
		start := time.Date(*filter.Season, time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := q.Order("date DESC").Order("id ASC").Find(&tournaments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tournaments, nil
}

func (r *tournamentRepository) Search(ctx context.Context, query string, limit int) ([]models.Tournament, error) {
	return r.List(ctx, TournamentFilter{Query: query, Limit: limit})
}
