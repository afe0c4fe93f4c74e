// Command leaderboard-import upserts leaderboard standings from a YAML file.
//
//	leaderboard-import -file standings-2024.yml
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"bjjsocial/internal/config"
	"bjjsocial/internal/database"
	"bjjsocial/internal/importer"
	"bjjsocial/internal/middleware"
	"bjjsocial/internal/repository"
)

func main() {
	path := flag.String("file", "", "YAML file with leaderboard entries")
	flag.Parse()
	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.InitLogger(cfg.Env, cfg.LogLevel)

	fh, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *path, err)
	}
	defer func() { _ = fh.Close() }()

	file, err := importer.Parse(fh)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *path, err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	im := importer.New(repository.NewUserRepository(db), repository.NewLeaderboardRepository(db))
	n, err := im.Import(context.Background(), file)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Imported %d leaderboard entries from %s", n, *path)
}
