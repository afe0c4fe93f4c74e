package server

import (
	"strings"

	"bjjsocial/internal/models"
	"bjjsocial/internal/service"
	"bjjsocial/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?limit=&offset=&type=&userId=
// @Summary Feed
// @Tags posts
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Offset"
// @Param type query string false "Post type"
// @Param userId query string false "Author ID"
// @Success 200 {array} views.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	limit, err := parseLimit(c, defaultPostsLimit)
	if err != nil {
		return nil
	}
	offset, err := parseOffset(c)
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		Limit:  limit,
		Offset: offset,
		Type:   strings.TrimSpace(c.Query("type")),
		UserID: strings.TrimSpace(c.Query("userId")),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.Posts(posts))
}

// CreatePost handles POST /api/posts
// @Summary Publish a post
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{content=string,type=string,location=string,imageUrls=[]string} true "Post"
// @Success 201 {object} views.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content   string   `json:"content"`
		Type      string   `json:"type"`
		Location  *string  `json:"location"`
		ImageURLs []string `json:"imageUrls"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:    currentUserID(c),
		Content:   req.Content,
		Type:      req.Type,
		Location:  req.Location,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(views.PostOf(post))
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.LikePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post liked successfully"})
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.UnlikePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post unliked successfully"})
}

// GetComments handles GET /api/posts/:id/comments, newest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.postService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.Comments(comments))
}

// CreateComment handles POST /api/posts/:id/comments
// @Summary Comment on a post
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body object{content=string} true "Comment"
// @Success 201 {object} views.Comment
// @Router /posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.postService.AddComment(c.UserContext(), currentUserID(c), postID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(views.CommentOf(comment))
}
