package service

import (
	"context"

	"bjjsocial/internal/models"
	"bjjsocial/internal/repository"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFollowersFn func(context.Context, string) ([]models.User, error)
	listFollowingFn func(context.Context, string) ([]models.User, error)
	idsBySchoolFn   func(context.Context, string) ([]string, error)
	searchFn        func(context.Context, string, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) ListFollowers(ctx context.Context, userID string) ([]models.User, error) {
	return s.listFollowersFn(ctx, userID)
}
func (s *userRepoStub) ListFollowing(ctx context.Context, userID string) ([]models.User, error) {
	return s.listFollowingFn(ctx, userID)
}
func (s *userRepoStub) IDsBySchool(ctx context.Context, school string) ([]string, error) {
	return s.idsBySchoolFn(ctx, school)
}
func (s *userRepoStub) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	return s.searchFn(ctx, query, limit)
}

type followRepoStub struct {
	existsFn   func(context.Context, string, string) (bool, error)
	followFn   func(context.Context, string, string) error
	unfollowFn func(context.Context, string, string) error
}

func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID string) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID string) error {
	return s.unfollowFn(ctx, followerID, followingID)
}

type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, string) (*models.Post, error)
	listFn    func(context.Context, repository.PostFilter) ([]models.Post, error)
	deleteFn  func(context.Context, *models.Post) error
	likeFn    func(context.Context, string, string) error
	unlikeFn  func(context.Context, string, string) error
	searchFn  func(context.Context, string, int) ([]models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	return s.listFn(ctx, filter)
}
func (s *postRepoStub) Delete(ctx context.Context, post *models.Post) error {
	return s.deleteFn(ctx, post)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID string) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID string) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit int) ([]models.Post, error) {
	return s.searchFn(ctx, query, limit)
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	listByPostFn func(context.Context, string) ([]models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

type tournamentRepoStub struct {
	createFn  func(context.Context, *models.Tournament) error
	getByIDFn func(context.Context, string) (*models.Tournament, error)
	listFn    func(context.Context, repository.TournamentFilter) ([]models.Tournament, error)
	searchFn  func(context.Context, string, int) ([]models.Tournament, error)
}

func (s *tournamentRepoStub) Create(ctx context.Context, t *models.Tournament) error {
	return s.createFn(ctx, t)
}
func (s *tournamentRepoStub) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tournamentRepoStub) List(ctx context.Context, filter repository.TournamentFilter) ([]models.Tournament, error) {
	return s.listFn(ctx, filter)
}
func (s *tournamentRepoStub) Search(ctx context.Context, query string, limit int) ([]models.Tournament, error) {
	return s.searchFn(ctx, query, limit)
}

type matchRepoStub struct {
	createFn           func(context.Context, *models.Match) error
	getByIDFn          func(context.Context, string) (*models.Match, error)
	listByTournamentFn func(context.Context, string) ([]models.Match, error)
	listByUserFn       func(context.Context, string, int) ([]models.Match, error)
	updateFn           func(context.Context, *models.Match) error
}

func (s *matchRepoStub) Create(ctx context.Context, m *models.Match) error {
	return s.createFn(ctx, m)
}
func (s *matchRepoStub) GetByID(ctx context.Context, id string) (*models.Match, error) {
	return s.getByIDFn(ctx, id)
}
func (s *matchRepoStub) ListByTournament(ctx context.Context, tournamentID string) ([]models.Match, error) {
	return s.listByTournamentFn(ctx, tournamentID)
}
func (s *matchRepoStub) ListByUser(ctx context.Context, userID string, limit int) ([]models.Match, error) {
	return s.listByUserFn(ctx, userID, limit)
}
func (s *matchRepoStub) Update(ctx context.Context, m *models.Match) error {
	return s.updateFn(ctx, m)
}

type leaderboardRepoStub struct {
	listFn           func(context.Context, models.LeaderboardFilter, int, int) ([]models.LeaderboardEntry, error)
	listForUsersFn   func(context.Context, []string, models.LeaderboardFilter, int, int) ([]models.LeaderboardEntry, error)
	listByUserFn     func(context.Context, string, *string) ([]models.LeaderboardEntry, error)
	schoolRankingsFn func(context.Context, *string, int, int) ([]models.SchoolRanking, error)
	upsertFn         func(context.Context, []models.LeaderboardEntry) error
}

func (s *leaderboardRepoStub) List(ctx context.Context, f models.LeaderboardFilter, limit, offset int) ([]models.LeaderboardEntry, error) {
	return s.listFn(ctx, f, limit, offset)
}
func (s *leaderboardRepoStub) ListForUsers(ctx context.Context, ids []string, f models.LeaderboardFilter, limit, offset int) ([]models.LeaderboardEntry, error) {
	return s.listForUsersFn(ctx, ids, f, limit, offset)
}
func (s *leaderboardRepoStub) ListByUser(ctx context.Context, userID string, season *string) ([]models.LeaderboardEntry, error) {
	return s.listByUserFn(ctx, userID, season)
}
func (s *leaderboardRepoStub) SchoolRankings(ctx context.Context, season *string, limit, offset int) ([]models.SchoolRanking, error) {
	return s.schoolRankingsFn(ctx, season, limit, offset)
}
func (s *leaderboardRepoStub) Upsert(ctx context.Context, entries []models.LeaderboardEntry) error {
	return s.upsertFn(ctx, entries)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
