package repository

import (
	"context"
	"errors"

	"bjjsocial/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository defines persistence operations for matches.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Match, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *models.Match) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(match).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID loads the match with its tournament so callers can check the
// organizer without a second lookup.
func (r *matchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).Preload("Tournament").Where("id = ?", id).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundMessage("Match not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

func (r *matchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.Match, error) {
	var matches []models.Match
	if err := r.withParticipants(ctx).
		Where("tournament_id = ?", tournamentID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

func (r *matchRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Match, error) {
	var matches []models.Match
	if err := r.withParticipants(ctx).
		Preload("Tournament").
		Where("competitor_a_id = ? OR competitor_b_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}

// Update writes every column of the match. Associations are left untouched.
func (r *matchRepository) Update(ctx context.Context, match *models.Match) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(match).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) withParticipants(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("CompetitorA").
		Preload("CompetitorB").
		Preload("Winner")
}
