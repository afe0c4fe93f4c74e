// Package importer loads leaderboard standings from YAML files and upserts
// them on the division key.
//
// A file looks like:
//
//	season: "2024"
//	ruleset: IBJJF
//	entries:
//	  - user: rickson@example.com
//	    isGi: true
//	    belt: Black
//	    weightClass: Middle
//	    gender: Male
//	    points: 120
//	    wins: 9
//
// File-level season and ruleset apply to rows that leave them out. A row's
// user is either a user id or an email address.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"bjjsocial/internal/middleware"
	"bjjsocial/internal/models"
	"bjjsocial/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// File is the decoded YAML document.
type File struct {
	Season  string `yaml:"season"`
	Ruleset string `yaml:"ruleset"`
	Entries []Row  `yaml:"entries"`
}

// Row is one leaderboard line. IsGi defaults to true when absent.
type Row struct {
	User        string `yaml:"user"`
	Season      string `yaml:"season"`
	Ruleset     string `yaml:"ruleset"`
	IsGi        *bool  `yaml:"isGi"`
	Belt        string `yaml:"belt"`
	WeightClass string `yaml:"weightClass"`
	AgeDivision string `yaml:"ageDivision"`
	Gender      string `yaml:"gender"`
	Points      int    `yaml:"points"`
	Submissions int    `yaml:"submissions"`
	Wins        int    `yaml:"wins"`
	Losses      int    `yaml:"losses"`
}

// Parse decodes a leaderboard file. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode leaderboard file: %w", err)
	}
	return &f, nil
}

type Importer struct {
	users       repository.UserRepository
	leaderboard repository.LeaderboardRepository
}

func New(users repository.UserRepository, leaderboard repository.LeaderboardRepository) *Importer {
	return &Importer{users: users, leaderboard: leaderboard}
}

// Import resolves every row and then upserts them together. Nothing is
// written when any row is invalid.
func (im *Importer) Import(ctx context.Context, f *File) (int, error) {
	entries := make([]models.LeaderboardEntry, 0, len(f.Entries))
	seen := make(map[string]int, len(f.Entries))
	cache := make(map[string]string)

	for i, row := range f.Entries {
		line := i + 1
		entry, err := im.entry(ctx, f, row, cache)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", line, err)
		}
		key := divisionKey(&entry)
		if prev, dup := seen[key]; dup {
			return 0, fmt.Errorf("entry %d: same division as entry %d", line, prev)
		}
		seen[key] = line
		entries = append(entries, entry)
	}

	if err := im.leaderboard.Upsert(ctx, entries); err != nil {
		return 0, err
	}
	middleware.Logger.InfoContext(ctx, "leaderboard imported", "entries", len(entries))
	return len(entries), nil
}

func (im *Importer) entry(ctx context.Context, f *File, row Row, cache map[string]string) (models.LeaderboardEntry, error) {
	userID, err := im.resolveUser(ctx, strings.TrimSpace(row.User), cache)
	if err != nil {
		return models.LeaderboardEntry{}, err
	}

	e := models.LeaderboardEntry{
		UserID:      userID,
		Season:      firstNonEmpty(row.Season, f.Season),
		Ruleset:     firstNonEmpty(row.Ruleset, f.Ruleset),
		IsGi:        row.IsGi == nil || *row.IsGi,
		Belt:        strings.TrimSpace(row.Belt),
		WeightClass: strings.TrimSpace(row.WeightClass),
		AgeDivision: strings.TrimSpace(row.AgeDivision),
		Gender:      strings.TrimSpace(row.Gender),
		Points:      row.Points,
		Submissions: row.Submissions,
		Wins:        row.Wins,
		Losses:      row.Losses,
	}

	required := []struct{ name, value string }{
		{"season", e.Season},
		{"ruleset", e.Ruleset},
		{"belt", e.Belt},
		{"weightClass", e.WeightClass},
		{"gender", e.Gender},
	}
	for _, r := range required {
		if r.value == "" {
			return e, fmt.Errorf("%s is required", r.name)
		}
	}
	if e.Points < 0 || e.Submissions < 0 || e.Wins < 0 || e.Losses < 0 {
		return e, errors.New("counts must not be negative")
	}
	return e, nil
}

func (im *Importer) resolveUser(ctx context.Context, ref string, cache map[string]string) (string, error) {
	if ref == "" {
		return "", errors.New("user is required")
	}
	if id, ok := cache[ref]; ok {
		return id, nil
	}

	var user *models.User
	if _, parseErr := uuid.Parse(ref); parseErr == nil {
		u, err := im.users.GetByID(ctx, ref)
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
				return "", fmt.Errorf("user %s not found", ref)
			}
			return "", err
		}
		user = u
	} else {
		u, err := im.users.GetByEmail(ctx, strings.ToLower(ref))
		if err != nil {
			return "", err
		}
		if u == nil {
			return "", fmt.Errorf("user %s not found", ref)
		}
		user = u
	}

	cache[ref] = user.ID
	return user.ID, nil
}

func divisionKey(e *models.LeaderboardEntry) string {
	age := e.AgeDivision
	if age == "" {
		age = models.DefaultAgeDivision
	}
	return strings.Join([]string{
		e.UserID, e.Season, e.Ruleset, fmt.Sprint(e.IsGi), e.Belt, e.WeightClass, age, e.Gender,
	}, "\x00")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
