// Package service implements business rules on top of the repositories.
package service

import (
	"context"
	"strings"

	"devconnector/internal/models"
	"devconnector/internal/repository"
)

// PostService owns post, like and comment rules: required text, denormalized
// author fields, and ownership checks on deletion.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID uint
	Text   string
}

type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: in.UserID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
		// keep likes/comments as empty lists, not null, on the wire
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) DeletePost(ctx context.Context, postID, callerID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return models.NewForbiddenError("The post is owned by another user")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records the caller's like and returns the updated likes list,
// newest first.
func (s *PostService) LikePost(ctx context.Context, postID, callerID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Like(ctx, postID, callerID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, postID)
}

func (s *PostService) UnlikePost(ctx context.Context, postID, callerID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Unlike(ctx, postID, callerID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, postID)
}

// AddComment prepends a comment with the caller's denormalized name/avatar
// and returns the updated comment list.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) ([]models.Comment, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: in.PostID,
		UserID: in.UserID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.ListComments(ctx, in.PostID)
}

// DeleteComment removes the comment if the caller owns it and returns the
// remaining comments for the post.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, callerID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != callerID {
		return nil, models.NewForbiddenError("The comment is written by another user")
	}

	if err := s.postRepo.DeleteComment(ctx, commentID); err != nil {
		return nil, err
	}
	return s.postRepo.ListComments(ctx, postID)
}
