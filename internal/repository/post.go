package repository

import (
	"context"
	"errors"

	"devconnector/internal/cache"
	"devconnector/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts, likes and comments.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, postID, userID uint) error
	Unlike(ctx context.Context, postID, userID uint) error
	ListLikes(ctx context.Context, postID uint) ([]models.Like, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID uint) error
	ListComments(ctx context.Context, postID uint) ([]models.Comment, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withNested preloads likes and comments newest-first. The id tiebreak keeps
// ordering stable for entries created within the same second.
func (r *postRepository) withNested(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		})
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostsListKey)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.withNested(r.db.WithContext(ctx)).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("No post having this id")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post

	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.ListTTL, func() error {
		if err := r.withNested(r.db.WithContext(ctx)).
			Order("created_at DESC, id DESC").
			Find(&posts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) Like(ctx context.Context, postID, userID uint) error {
	like := models.Like{PostID: postID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewAlreadyLikedError()
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, postID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotLikedError()
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *postRepository) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	likes := []models.Like{}
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *postRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *postRepository) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND id = ?", postID, commentID).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("No comment found with this id")
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *postRepository) DeleteComment(ctx context.Context, commentID uint) error {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("No comment found with this id")
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, commentID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *postRepository) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
