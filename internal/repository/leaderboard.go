package repository

import (
	"context"
	"time"

	"bjjsocial/internal/models"
	"bjjsocial/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// leaderboardKey is the column set that identifies one leaderboard row.
var leaderboardKey = []clause.Column{
	{Name: "user_id"},
	{Name: "season"},
	{Name: "ruleset"},
	{Name: "is_gi"},
	{Name: "belt"},
	{Name: "weight_class"},
	{Name: "age_division"},
	{Name: "gender"},
}

// LeaderboardRepository defines read and upsert operations for leaderboard
// entries. Reads never return domain errors; an empty result is not an error.
type LeaderboardRepository interface {
	List(ctx context.Context, filter models.LeaderboardFilter, limit, offset int) ([]models.LeaderboardEntry, error)
	ListForUsers(ctx context.Context, userIDs []string, filter models.LeaderboardFilter, limit, offset int) ([]models.LeaderboardEntry, error)
	ListByUser(ctx context.Context, userID string, season *string) ([]models.LeaderboardEntry, error)
	SchoolRankings(ctx context.Context, season *string, limit, offset int) ([]models.SchoolRanking, error)
	Upsert(ctx context.Context, entries []models.LeaderboardEntry) error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) List(ctx context.Context, filter models.LeaderboardFilter, limit, offset int) ([]models.LeaderboardEntry, error) {
	defer observability.TrackQuery("list", "leaderboard_entries")()

	return r.ranked(applyLeaderboardFilter(r.db.WithContext(ctx), filter), limit, offset)
}

func (r *leaderboardRepository) ListForUsers(ctx context.Context, userIDs []string, filter models.LeaderboardFilter, limit, offset int) ([]models.LeaderboardEntry, error) {
	defer observability.TrackQuery("list_for_users", "leaderboard_entries")()

	if len(userIDs) == 0 {
		return []models.LeaderboardEntry{}, nil
	}
	q := applyLeaderboardFilter(r.db.WithContext(ctx), filter).Where("user_id IN ?", userIDs)
	return r.ranked(q, limit, offset)
}

func (r *leaderboardRepository) ListByUser(ctx context.Context, userID string, season *string) ([]models.LeaderboardEntry, error) {
	defer observability.TrackQuery("list_by_user", "leaderboard_entries")()

	var entries []models.LeaderboardEntry
	q := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID)
	if season != nil {
		q = q.Where("season = ?", *season)
	}
	if err := q.Order("season DESC").Order("points DESC").Order("id ASC").Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

// SchoolRankings sums points per school across every athlete with a school
// set. A blank school counts as unset and is excluded along with NULL.
// Schools without matching rows are absent from the result.
func (r *leaderboardRepository) SchoolRankings(ctx context.Context, season *string, limit, offset int) ([]models.SchoolRanking, error) {
	defer observability.TrackQuery("school_rankings", "leaderboard_entries")()

	var rankings []models.SchoolRanking
	q := r.db.WithContext(ctx).
		Table("leaderboard_entries AS l").
		Select("u.school AS school, COALESCE(SUM(l.points), 0) AS total_points, COUNT(DISTINCT l.user_id) AS athlete_count").
		Joins("JOIN users u ON u.id = l.user_id").
		Where("u.school IS NOT NULL AND u.school <> ''")
	if season != nil {
		q = q.Where("l.season = ?", *season)
	}
	if err := q.Group("u.school").
		Order("total_points DESC").
		Order("u.school ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rankings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return rankings, nil
}

// Upsert inserts the entries or, when a row with the same division key
// exists, replaces its totals.
func (r *leaderboardRepository) Upsert(ctx context.Context, entries []models.LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}
	defer observability.TrackQuery("upsert", "leaderboard_entries")()

	now := time.Now().UTC()
	for i := range entries {
		if entries[i].AgeDivision == "" {
			entries[i].AgeDivision = models.DefaultAgeDivision
		}
		entries[i].LastUpdated = now
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   leaderboardKey,
				DoUpdates: clause.AssignmentColumns([]string{"points", "submissions", "wins", "losses", "last_updated"}),
			}).
			CreateInBatches(entries, 100).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *leaderboardRepository) ranked(q *gorm.DB, limit, offset int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := q.Preload("User").
		Order("points DESC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func applyLeaderboardFilter(q *gorm.DB, f models.LeaderboardFilter) *gorm.DB {
	if f.Season != nil {
		q = q.Where("season = ?", *f.Season)
	}
	if f.Ruleset != nil {
		q = q.Where("ruleset = ?", *f.Ruleset)
	}
	if f.IsGi != nil {
		q = q.Where("is_gi = ?", *f.IsGi)
	}
	if f.Belt != nil {
		q = q.Where("belt = ?", *f.Belt)
	}
	if f.WeightClass != nil {
		q = q.Where("weight_class = ?", *f.WeightClass)
	}
	if f.AgeDivision != nil {
		q = q.Where("age_division = ?", *f.AgeDivision)
	}
	if f.Gender != nil {
		q = q.Where("gender = ?", *f.Gender)
	}
	return q
}
