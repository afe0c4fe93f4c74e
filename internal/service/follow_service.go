package service

import (
	"context"

	"bjjsocial/internal/middleware"
	"bjjsocial/internal/models"
	"bjjsocial/internal/observability"
	"bjjsocial/internal/repository"
)

// FollowService manages the directed follow graph between athletes.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes followerID follow targetID.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	exists, err := s.followRepo.Exists(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return models.NewValidationError("Already following this user")
	}

	if err := s.followRepo.Follow(ctx, followerID, targetID); err != nil {
		return err
	}
	observability.SocialActions.WithLabelValues("follow").Inc()
	middleware.Logger.InfoContext(ctx, "user followed", "target_id", targetID)
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID string) error {
	if err := s.followRepo.Unfollow(ctx, followerID, targetID); err != nil {
		return err
	}
	observability.SocialActions.WithLabelValues("unfollow").Inc()
	return nil
}
