package service

import (
	"context"
	"net/url"
	"strings"

	"bjjsocial/internal/models"
	"bjjsocial/internal/observability"
	"bjjsocial/internal/repository"
	"bjjsocial/internal/validation"
)

const maxImagesPerPost = 10

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

type CreatePostInput struct {
	UserID    string
	Content   string
	Type      string
	Location  *string
	ImageURLs []string
}

type ListPostsInput struct {
	Limit  int
	Offset int
	Type   string
	UserID string
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidateContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if len(in.ImageURLs) > maxImagesPerPost {
		return nil, models.NewValidationError("Too many images (max 10)")
	}
	for _, raw := range in.ImageURLs {
		if !isHTTPURL(raw) {
			return nil, models.NewValidationError("Image URLs must be absolute http(s) URLs")
		}
	}

	post := &models.Post{
		UserID:    in.UserID,
		Content:   strings.TrimSpace(in.Content),
		Type:      strings.TrimSpace(in.Type),
		Location:  in.Location,
		ImageURLs: in.ImageURLs,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.SocialActions.WithLabelValues("post").Inc()

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]models.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{
		Limit:  in.Limit,
		Offset: in.Offset,
		Type:   in.Type,
		UserID: in.UserID,
	})
}

// DeletePost removes a post owned by userID.
func (s *PostService) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, post)
}

func (s *PostService) LikePost(ctx context.Context, userID, postID string) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return err
	}
	observability.SocialActions.WithLabelValues("like").Inc()
	return nil
}

func (s *PostService) UnlikePost(ctx context.Context, userID, postID string) error {
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return err
	}
	observability.SocialActions.WithLabelValues("unlike").Inc()
	return nil
}

func (s *PostService) AddComment(ctx context.Context, userID, postID, content string) (*models.Comment, error) {
	if err := validation.ValidateContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: strings.TrimSpace(content),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.SocialActions.WithLabelValues("comment").Inc()
	return comment, nil
}

func (s *PostService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
