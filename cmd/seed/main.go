// Command seed fills the configured database with demo athletes, posts,
// tournaments and leaderboard rows.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"bjjsocial/internal/config"
	"bjjsocial/internal/database"
	"bjjsocial/internal/middleware"
	"bjjsocial/internal/seed"
)

func main() {
	users := flag.Int("users", 40, "Number of athletes to create")
	posts := flag.Int("posts", 3, "Posts per athlete")
	follows := flag.Int("follows", 5, "Follow attempts per athlete")
	tournaments := flag.Int("tournaments", 6, "Number of tournaments")
	matches := flag.Int("matches", 8, "Matches per tournament")
	season := flag.Int("season", time.Now().Year(), "Season for tournaments and leaderboard rows")
	clean := flag.Bool("clean", true, "Delete existing data before seeding")
	fast := flag.Bool("fast", false, "Hash passwords with the minimum bcrypt cost")
	randSeed := flag.Int64("rand-seed", 0, "Seed for reproducible data (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.InitLogger(cfg.Env, cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ctx := context.Background()
	s := seed.NewSeeder(db, seed.Options{
		Users:                *users,
		PostsPerUser:         *posts,
		FollowsPerUser:       *follows,
		Tournaments:          *tournaments,
		MatchesPerTournament: *matches,
		Season:               *season,
		FastHash:             *fast,
		RandSeed:             *randSeed,
	})

	if *clean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	sum, err := s.Run(ctx)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d athletes, %d posts, %d follows, %d tournaments, %d matches, %d leaderboard rows",
		sum.Users, sum.Posts, sum.Follows, sum.Tournaments, sum.Matches, sum.LeaderboardEntries)
	log.Printf("All athletes have the password: %s", seed.DefaultPassword)
}
