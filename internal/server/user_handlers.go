package server

import (
	"bjjsocial/internal/models"
	"bjjsocial/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:id
// @Summary Athlete profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} views.PublicUser
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.User(user))
}

// UpdateProfile handles PUT /api/user/profile
// @Summary Update own profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ProfileUpdate true "Fields to change"
// @Success 200 {object} views.PublicUser
// @Failure 400 {object} models.ErrorResponse
// @Router /user/profile [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var upd models.ProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), currentUserID(c), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.User(user))
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.userService.Followers(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.Users(users))
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.userService.Following(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.Users(users))
}

// FollowUser handles POST /api/users/:id/follow
// @Summary Follow an athlete
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/{id}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.Follow(c.UserContext(), currentUserID(c), targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Successfully followed user"})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.UserContext(), currentUserID(c), targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Successfully unfollowed user"})
}

// GetUserStats handles GET /api/users/:id/stats
// @Summary Competition record
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserStats
// @Router /users/{id}/stats [get]
func (s *Server) GetUserStats(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	stats, err := s.userService.Stats(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetUserMatches handles GET /api/users/:id/matches?limit=
func (s *Server) GetUserMatches(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}
	limit, err := parseLimit(c, defaultMatchesLimit)
	if err != nil {
		return nil
	}

	matches, err := s.tournamentService.ListUserMatches(c.UserContext(), id, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.Matches(matches))
}

// GetUserLeaderboard handles GET /api/users/:id/leaderboard?season=
// @Summary Leaderboard rows of one athlete
// @Tags leaderboard
// @Produce json
// @Param id path string true "User ID"
// @Param season query string false "Season"
// @Success 200 {array} views.LeaderboardEntry
// @Router /users/{id}/leaderboard [get]
func (s *Server) GetUserLeaderboard(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	entries, err := s.leaderboardService.UserEntries(c.UserContext(), id, optionalQuery(c, "season"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.LeaderboardEntries(entries))
}
