package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"bjjsocial/internal/middleware"
	"bjjsocial/internal/models"
	"bjjsocial/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded athlete.
const DefaultPassword = "password123"

// Options configures a seeding run.
type Options struct {
	Users                int
	PostsPerUser         int
	FollowsPerUser       int
	Tournaments          int
	MatchesPerTournament int
	Season               int
	// FastHash hashes passwords with bcrypt.MinCost.
	FastHash bool
	// RandSeed makes the generated data reproducible; zero picks a random seed.
	RandSeed int64
}

// Summary counts what a run created.
type Summary struct {
	Users              int
	Posts              int
	Follows            int
	Tournaments        int
	Matches            int
	LeaderboardEntries int
}

func newFaker(seed int64) *gofakeit.Faker {
	if seed == 0 {
		return gofakeit.NewCrypto()
	}
	return gofakeit.New(seed)
}

type Seeder struct {
	db   *gorm.DB
	opts Options
}

func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, opts: opts}
}

// ClearAll deletes every row of the application tables, children first.
func (s *Seeder) ClearAll(ctx context.Context) error {
	tables := []any{
		&models.LeaderboardEntry{},
		&models.Match{},
		&models.Tournament{},
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Follow{},
		&models.User{},
	}
	tx := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range tables {
		if err := tx.Delete(m).Error; err != nil {
			return fmt.Errorf("clear %T: %w", m, err)
		}
	}
	middleware.Logger.InfoContext(ctx, "cleared existing data")
	return nil
}

// Run creates athletes, then their posts and follows, then tournaments
// with matches, then one leaderboard row per athlete.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	cost := bcrypt.DefaultCost
	if s.opts.FastHash {
		cost = bcrypt.MinCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
	if err != nil {
		return sum, err
	}

	faker := newFaker(s.opts.RandSeed)
	f := NewFactory(s.db, faker, string(hash))

	athletes := make([]*models.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		u, err := f.CreateAthlete(ctx)
		if err != nil {
			return sum, fmt.Errorf("create athlete: %w", err)
		}
		athletes = append(athletes, u)
	}
	sum.Users = len(athletes)
	middleware.Logger.InfoContext(ctx, "seeded athletes", slog.Int("count", sum.Users))

	for _, u := range athletes {
		for i := 0; i < s.opts.PostsPerUser; i++ {
			if _, err := f.CreatePost(ctx, u); err != nil {
				return sum, fmt.Errorf("create post: %w", err)
			}
			sum.Posts++
		}
	}

	if len(athletes) > 1 {
		for _, u := range athletes {
			for i := 0; i < s.opts.FollowsPerUser; i++ {
				target := athletes[faker.Number(0, len(athletes)-1)]
				created, err := f.Follow(ctx, u, target)
				if err != nil {
					return sum, fmt.Errorf("follow: %w", err)
				}
				if created {
					sum.Follows++
				}
			}
		}
	}
	middleware.Logger.InfoContext(ctx, "seeded social graph",
		slog.Int("posts", sum.Posts), slog.Int("follows", sum.Follows))

	if len(athletes) > 1 {
		for i := 0; i < s.opts.Tournaments; i++ {
			organizer := athletes[faker.Number(0, len(athletes)-1)]
			t, err := f.CreateTournament(ctx, organizer, s.opts.Season)
			if err != nil {
				return sum, fmt.Errorf("create tournament: %w", err)
			}
			sum.Tournaments++

			for j := 0; j < s.opts.MatchesPerTournament; j++ {
				a := faker.Number(0, len(athletes)-1)
				b := (a + 1 + faker.Number(0, len(athletes)-2)) % len(athletes)
				if _, err := f.CreateMatch(ctx, t, athletes[a], athletes[b]); err != nil {
					return sum, fmt.Errorf("create match: %w", err)
				}
				sum.Matches++
			}
		}
	}

	entries := make([]models.LeaderboardEntry, 0, len(athletes))
	season := strconv.Itoa(s.opts.Season)
	for _, u := range athletes {
		entries = append(entries, f.BuildLeaderboardEntry(u, season))
	}
	if err := repository.NewLeaderboardRepository(s.db).Upsert(ctx, entries); err != nil {
		return sum, fmt.Errorf("seed leaderboard: %w", err)
	}
	sum.LeaderboardEntries = len(entries)

	middleware.Logger.InfoContext(ctx, "seeding complete",
		slog.Int("tournaments", sum.Tournaments),
		slog.Int("matches", sum.Matches),
		slog.Int("leaderboard_entries", sum.LeaderboardEntries))
	return sum, nil
}
