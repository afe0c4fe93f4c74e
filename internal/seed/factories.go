// Package seed creates demo data for local development: athletes, posts,
// follows, tournaments with matches, and leaderboard rows.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bjjsocial/internal/models"
	"bjjsocial/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var (
	belts         = []string{"White", "Blue", "Purple", "Brown", "Black"}
	weightClasses = []string{"Rooster", "Light Feather", "Feather", "Light", "Middle", "Medium Heavy", "Heavy", "Super Heavy", "Ultra Heavy"}
	genders       = []string{"Male", "Female"}
	ageDivisions  = []string{"Adult", "Master 1", "Master 2", "Juvenile"}
	rulesets      = []string{"IBJJF", "ADCC", "UAEJJF", "SJJIF"}
	tiers         = []string{"LOCAL", "REGIONAL", "NATIONAL", "INTERNATIONAL"}
	schools       = []string{"Gracie Barra", "Alliance", "Atos", "Checkmat", "Art of Jiu Jitsu", "Unity", "10th Planet", "Nova Uniao"}
	postTypes     = []string{models.PostTypeGeneral, "technique", "competition", "training"}
	rounds        = []string{"Round of 16", "Quarterfinal", "Semifinal", "Final"}
	methods       = []string{"Points", "Submission", "Advantages", "Referee Decision", "DQ"}
	submissions   = []string{"Armbar", "Triangle", "Rear Naked Choke", "Kimura", "Heel Hook", "Bow and Arrow", "Guillotine", "Omoplata"}
)

// Factory builds and persists single entities. Writes that maintain
// counters go through the repositories.
type Factory struct {
	db           *gorm.DB
	faker        *gofakeit.Faker
	passwordHash string

	posts       repository.PostRepository
	follows     repository.FollowRepository
	tournaments repository.TournamentRepository
	matches     repository.MatchRepository
}

// NewFactory returns a factory whose athletes all share passwordHash.
func NewFactory(db *gorm.DB, faker *gofakeit.Faker, passwordHash string) *Factory {
	return &Factory{
		db:           db,
		faker:        faker,
		passwordHash: passwordHash,
		posts:        repository.NewPostRepository(db),
		follows:      repository.NewFollowRepository(db),
		tournaments:  repository.NewTournamentRepository(db),
		matches:      repository.NewMatchRepository(db),
	}
}

func (f *Factory) pick(values []string) string {
	return values[f.faker.Number(0, len(values)-1)]
}

func (f *Factory) ptr(v string) *string {
	return &v
}

// CreateAthlete persists a user with a random competition profile.
func (f *Factory) CreateAthlete(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	first := f.faker.FirstName()
	last := f.faker.LastName()
	wins := f.faker.Number(0, 40)
	losses := f.faker.Number(0, 20)

	user := &models.User{
		Email:           strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", first, last, f.faker.Number(1000, 9999))),
		Password:        f.passwordHash,
		FirstName:       &first,
		LastName:        &last,
		ProfileImageURL: f.ptr(fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.faker.UUID())),
		Belt:            f.pick(belts),
		Stripes:         f.faker.Number(0, 4),
		WeightClass:     f.ptr(f.pick(weightClasses)),
		School:          f.ptr(f.pick(schools)),
		Instructor:      f.ptr(f.faker.Name()),
		YearsTraining:   f.ptr(fmt.Sprintf("%d", f.faker.Number(1, 20))),
		Competitions:    wins + losses,
		Wins:            wins,
		Losses:          losses,
		Bio:             f.ptr(f.faker.Sentence(12)),
		Location:        f.ptr(f.faker.City()),
		AgeDivision:     f.ptr(f.pick(ageDivisions)),
		Gender:          f.ptr(f.pick(genders)),
	}
	for _, o := range overrides {
		o(user)
	}

	if err := f.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post by author through the post repository so the
// author's posts_count stays in step.
func (f *Factory) CreatePost(ctx context.Context, author *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:  author.ID,
		Content: f.faker.Paragraph(1, 3, 12, " "),
		Type:    f.pick(postTypes),
	}
	if f.faker.Bool() {
		post.ImageURLs = []string{fmt.Sprintf("https://picsum.photos/seed/%s/800/800", f.faker.UUID())}
	}
	if err := f.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Follow makes follower follow target. Duplicates and self-follows are
// skipped.
func (f *Factory) Follow(ctx context.Context, follower, target *models.User) (bool, error) {
	if follower.ID == target.ID {
		return false, nil
	}
	exists, err := f.follows.Exists(ctx, follower.ID, target.ID)
	if err != nil || exists {
		return false, err
	}
	if err := f.follows.Follow(ctx, follower.ID, target.ID); err != nil {
		return false, err
	}
	return true, nil
}

// CreateTournament persists a tournament dated inside season.
func (f *Factory) CreateTournament(ctx context.Context, organizer *models.User, season int) (*models.Tournament, error) {
	start := time.Date(season, time.January, 1, 0, 0, 0, 0, time.UTC)
	date := f.faker.DateRange(start, start.AddDate(1, 0, -1)).UTC().Truncate(24 * time.Hour)

	t := &models.Tournament{
		Name:        fmt.Sprintf("%s %s Open", f.faker.City(), f.pick([]string{"Spring", "Summer", "Fall", "Winter"})),
		Date:        date,
		Location:    f.ptr(f.faker.City()),
		IsGi:        f.faker.Bool(),
		Ruleset:     f.pick(rulesets),
		Tier:        f.pick(tiers),
		OrganizerID: organizer.ID,
	}
	if err := f.tournaments.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateMatch persists a finished match between a and b.
func (f *Factory) CreateMatch(ctx context.Context, t *models.Tournament, a, b *models.User) (*models.Match, error) {
	m := &models.Match{
		TournamentID:  t.ID,
		Round:         f.pick(rounds),
		Belt:          a.Belt,
		WeightClass:   f.pick(weightClasses),
		AgeDivision:   a.AgeDivision,
		Gender:        f.pick(genders),
		CompetitorAID: a.ID,
		CompetitorBID: b.ID,
		PointsA:       f.faker.Number(0, 12),
		PointsB:       f.faker.Number(0, 12),
		AdvantagesA:   f.faker.Number(0, 3),
		AdvantagesB:   f.faker.Number(0, 3),
		PenaltiesA:    f.faker.Number(0, 2),
		PenaltiesB:    f.faker.Number(0, 2),
		ResultFinal:   true,
	}

	winner := a.ID
	if f.faker.Bool() {
		winner = b.ID
	}
	m.WinnerID = &winner
	method := f.pick(methods)
	m.Method = &method
	if method == "Submission" {
		m.SubmissionType = f.ptr(f.pick(submissions))
	}
	duration := f.faker.Number(30, 600)
	m.DurationSec = &duration
	m.AwardedWinnerPts = f.faker.Number(3, 15)
	m.AwardedLoserPts = f.faker.Number(0, 2)

	if err := f.matches.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// BuildLeaderboardEntry returns an unsaved leaderboard row for u.
func (f *Factory) BuildLeaderboardEntry(u *models.User, season string) models.LeaderboardEntry {
	wins := f.faker.Number(0, 15)
	e := models.LeaderboardEntry{
		UserID:      u.ID,
		Season:      season,
		Ruleset:     f.pick(rulesets),
		IsGi:        f.faker.Bool(),
		Belt:        u.Belt,
		Points:      wins*f.faker.Number(3, 9) + f.faker.Number(0, 5),
		Submissions: f.faker.Number(0, wins),
		Wins:        wins,
		Losses:      f.faker.Number(0, 10),
	}
	if u.WeightClass != nil {
		e.WeightClass = *u.WeightClass
	} else {
		e.WeightClass = f.pick(weightClasses)
	}
	if u.AgeDivision != nil {
		e.AgeDivision = *u.AgeDivision
	}
	if u.Gender != nil {
		e.Gender = *u.Gender
	} else {
		e.Gender = f.pick(genders)
	}
	return e
}
