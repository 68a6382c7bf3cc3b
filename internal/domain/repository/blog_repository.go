package repository

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
)

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.BlogPost, int64, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) error

	// Like/Unlike are field-level patches on likedBy/likeCount.
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error

	CreateComment(ctx context.Context, comment *entity.BlogComment) error
	ListComments(ctx context.Context, postID string, limit, offset int) ([]*entity.BlogComment, int64, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}
