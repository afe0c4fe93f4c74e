package server

import (
	"bjjsocial/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard handles GET /api/leaderboard
// @Summary Ranked leaderboard
// @Description Entries matching every supplied division filter, by points descending.
// @Tags leaderboard
// @Produce json
// @Param page query int false "Page (>= 1)"
// @Param limit query int false "Page size (1-100)"
// @Param season query string false "Season"
// @Param ruleset query string false "Ruleset"
// @Param isGi query bool false "Gi or no-gi"
// @Param belt query string false "Belt"
// @Param weightClass query string false "Weight class"
// @Param ageDivision query string false "Age division"
// @Param gender query string false "Gender"
// @Success 200 {object} views.Page[views.LeaderboardEntry]
// @Failure 400 {object} models.ErrorResponse
// @Router /leaderboard [get]
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	p, err := parsePagination(c, defaultLeaderboardSize)
	if err != nil {
		return nil
	}
	filter, err := parseLeaderboardFilter(c)
	if err != nil {
		return nil
	}

	entries, err := s.leaderboardService.Rankings(c.UserContext(), filter, p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.NewPage(views.LeaderboardEntries(entries), p.Page, p.Limit))
}

// GetSchoolLeaderboard handles GET /api/schools/:school/leaderboard
// @Summary Leaderboard restricted to one school
// @Tags leaderboard
// @Produce json
// @Param school path string true "School name"
// @Success 200 {object} views.Page[views.LeaderboardEntry]
// @Router /schools/{school}/leaderboard [get]
func (s *Server) GetSchoolLeaderboard(c *fiber.Ctx) error {
	school, err := pathParam(c, "school")
	if err != nil {
		return nil
	}
	p, err := parsePagination(c, defaultLeaderboardSize)
	if err != nil {
		return nil
	}
	filter, err := parseLeaderboardFilter(c)
	if err != nil {
		return nil
	}

	entries, err := s.leaderboardService.SchoolLeaderboard(c.UserContext(), school, filter, p)
	if err != nil {
		return respondError(c, err)
	}

	page := views.NewPage(views.LeaderboardEntries(entries), p.Page, p.Limit)
	page.School = school
	return c.JSON(page)
}

// GetSchoolRankings handles GET /api/schools/rankings
// @Summary Schools by total points
// @Tags leaderboard
// @Produce json
// @Param page query int false "Page (>= 1)"
// @Param limit query int false "Page size (1-100)"
// @Param season query string false "Season"
// @Success 200 {object} views.Page[views.SchoolRanking]
// @Router /schools/rankings [get]
func (s *Server) GetSchoolRankings(c *fiber.Ctx) error {
	p, err := parsePagination(c, defaultLeaderboardSize)
	if err != nil {
		return nil
	}

	rankings, err := s.leaderboardService.SchoolRankings(c.UserContext(), optionalQuery(c, "season"), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.NewPage(views.SchoolRankings(rankings), p.Page, p.Limit))
}
