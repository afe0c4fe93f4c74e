package server

import (
	"strconv"
	"strings"
	"time"

	"bjjsocial/internal/models"
	"bjjsocial/internal/repository"
	"bjjsocial/internal/service"
	"bjjsocial/internal/views"

	"github.com/gofiber/fiber/v2"
)

// parseTournamentDate accepts RFC 3339 timestamps and plain dates.
func parseTournamentDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GetTournaments handles GET /api/tournaments?q=&ruleset=&isGi=&season=
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Param q query string false "Name contains"
// @Param ruleset query string false "Ruleset"
// @Param isGi query bool false "Gi or no-gi"
// @Param season query int false "Season year"
// @Success 200 {array} views.Tournament
// @Failure 400 {object} models.ErrorResponse
// @Router /tournaments [get]
func (s *Server) GetTournaments(c *fiber.Ctx) error {
	isGi, err := parseBoolQuery(c, "isGi")
	if err != nil {
		return nil
	}

	filter := repository.TournamentFilter{
		Query:   strings.TrimSpace(c.Query("q")),
		Ruleset: strings.TrimSpace(c.Query("ruleset")),
		IsGi:    isGi,
	}
	if raw := c.Query("season"); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			_ = badRequest(c, "season must be a year")
			return nil
		}
		filter.Season = &season
	}

	tournaments, err := s.tournamentService.ListTournaments(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.Tournaments(tournaments))
}

// CreateTournament handles POST /api/tournaments
// @Summary Create a tournament
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,date=string,location=string,isGi=bool,ruleset=string,tier=string} true "Tournament"
// @Success 201 {object} views.Tournament
// @Failure 400 {object} models.ErrorResponse
// @Router /tournaments [post]
func (s *Server) CreateTournament(c *fiber.Ctx) error {
	var req struct {
		Name     string  `json:"name"`
		Date     string  `json:"date"`
		Location *string `json:"location"`
		IsGi     *bool   `json:"isGi"`
		Ruleset  string  `json:"ruleset"`
		Tier     string  `json:"tier"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var date time.Time
	if req.Date != "" {
		d, ok := parseTournamentDate(req.Date)
		if !ok {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("date must be YYYY-MM-DD or RFC 3339"))
		}
		date = d
	}

	tournament, err := s.tournamentService.CreateTournament(c.UserContext(), service.CreateTournamentInput{
		OrganizerID: currentUserID(c),
		Name:        req.Name,
		Date:        date,
		Location:    req.Location,
		IsGi:        req.IsGi,
		Ruleset:     req.Ruleset,
		Tier:        req.Tier,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(views.TournamentOf(tournament))
}

// GetTournament handles GET /api/tournaments/:id
func (s *Server) GetTournament(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	tournament, err := s.tournamentService.GetTournament(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.TournamentOf(tournament))
}

// GetTournamentMatches handles GET /api/tournaments/:id/matches
func (s *Server) GetTournamentMatches(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	matches, err := s.tournamentService.ListMatches(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.Matches(matches))
}

// CreateMatch handles POST /api/tournaments/:id/matches
// @Summary Add a match to a tournament
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 201 {object} object{id=string,message=string}
// @Failure 403 {object} models.ErrorResponse
// @Router /tournaments/{id}/matches [post]
func (s *Server) CreateMatch(c *fiber.Ctx) error {
	tournamentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Round         string  `json:"round"`
		Belt          string  `json:"belt"`
		WeightClass   string  `json:"weightClass"`
		AgeDivision   *string `json:"ageDivision"`
		Gender        string  `json:"gender"`
		CompetitorAID string  `json:"competitorAId"`
		CompetitorBID string  `json:"competitorBId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	match, err := s.tournamentService.CreateMatch(c.UserContext(), service.CreateMatchInput{
		OrganizerID:   currentUserID(c),
		TournamentID:  tournamentID,
		Round:         req.Round,
		Belt:          req.Belt,
		WeightClass:   req.WeightClass,
		AgeDivision:   req.AgeDivision,
		Gender:        req.Gender,
		CompetitorAID: req.CompetitorAID,
		CompetitorBID: req.CompetitorBID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      match.ID,
		"message": "Match created successfully",
	})
}

// SubmitMatchResult handles POST /api/matches/:matchId/result. The body
// holds the changed result fields; awardedWinnerPts and awardedLoserPts
// may also arrive as query parameters, which take precedence. The caller is
// authorized before any input is parsed.
// @Summary Record a match result
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param request body models.MatchResultUpdate true "Result fields"
// @Param awardedWinnerPts query int false "Ranking points for the winner"
// @Param awardedLoserPts query int false "Ranking points for the loser"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Router /matches/{matchId}/result [post]
func (s *Server) SubmitMatchResult(c *fiber.Ctx) error {
	matchID, err := parseUUIDParam(c, "matchId")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)
	if _, err := s.tournamentService.AuthorizeResult(c.UserContext(), userID, matchID); err != nil {
		return respondError(c, err)
	}

	var upd models.MatchResultUpdate
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&upd); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	for key, dst := range map[string]**int{
		"awardedWinnerPts": &upd.AwardedWinnerPts,
		"awardedLoserPts":  &upd.AwardedLoserPts,
	} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			_ = badRequest(c, key+" must be an integer")
			return nil
		}
		*dst = &v
	}

	if _, err := s.tournamentService.FinalizeMatch(c.UserContext(), userID, matchID, upd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Match result submitted successfully"})
}
