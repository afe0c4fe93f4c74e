package server

import (
	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search?q=
// @Summary Search athletes, posts and tournaments
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} object{results=[]service.SearchResult}
// @Failure 400 {object} models.ErrorResponse
// @Router /search [get]
func (s *Server) Search(c *fiber.Ctx) error {
	results, err := s.searchService.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}
