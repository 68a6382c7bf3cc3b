package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type BlogUseCase struct {
	blogRepo repository.BlogRepository
	userRepo repository.UserRepository
}

func NewBlogUseCase(blogRepo repository.BlogRepository, userRepo repository.UserRepository) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
		userRepo: userRepo,
	}
}

type CreatePostInput struct {
	Title    string
	Body     string
	CoverURL string
	Tags     []string
}

func (uc *BlogUseCase) CreatePost(ctx context.Context, authorID string, input CreatePostInput) (*entity.BlogPost, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, errors.BadRequest("Title and body are required", nil)
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &entity.BlogPost{
		AuthorID:   authorID,
		AuthorName: author.DisplayName,
		Title:      input.Title,
		Body:       input.Body,
		CoverURL:   input.CoverURL,
		Tags:       input.Tags,
		LikedBy:    []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (uc *BlogUseCase) GetPost(ctx context.Context, id string) (*entity.BlogPost, error) {
	return uc.blogRepo.GetByID(ctx, id)
}

func (uc *BlogUseCase) ListPosts(ctx context.Context, authorID, tag string, limit, offset int) ([]*entity.BlogPost, int64, error) {
	filter := map[string]interface{}{}
	if authorID != "" {
		filter["authorId"] = authorID
	}
	if tag != "" {
		filter["tag"] = tag
	}

	return uc.blogRepo.List(ctx, filter, limit, offset)
}

type UpdatePostInput struct {
	Title    string
	Body     string
	CoverURL string
	Tags     []string
}

func (uc *BlogUseCase) UpdatePost(ctx context.Context, authorID, postID string, input UpdatePostInput) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, errors.Forbidden("You can only edit your own posts", nil)
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Body != "" {
		post.Body = input.Body
	}
	if input.CoverURL != "" {
		post.CoverURL = input.CoverURL
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	post.UpdatedAt = time.Now()

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (uc *BlogUseCase) DeletePost(ctx context.Context, callerID, postID string, isAdmin bool) error {
	post, err := uc.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != callerID && !isAdmin {
		return errors.Forbidden("You can only delete your own posts", nil)
	}

	return uc.blogRepo.Delete(ctx, postID)
}

func (uc *BlogUseCase) LikePost(ctx context.Context, userID, postID string) error {
	post, err := uc.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	for _, id := range post.LikedBy {
		if id == userID {
			return errors.BadRequest("You already liked this post", nil)
		}
	}

	return uc.blogRepo.Like(ctx, postID, userID)
}

func (uc *BlogUseCase) UnlikePost(ctx context.Context, userID, postID string) error {
	post, err := uc.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	liked := false
	for _, id := range post.LikedBy {
		if id == userID {
			liked = true
			break
		}
	}
	if !liked {
		return errors.BadRequest("You have not liked this post", nil)
	}

	return uc.blogRepo.Unlike(ctx, postID, userID)
}

func (uc *BlogUseCase) AddComment(ctx context.Context, authorID, postID, text string) (*entity.BlogComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Comment text cannot be empty", nil)
	}

	if _, err := uc.blogRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &entity.BlogComment{
		PostID:     postID,
		AuthorID:   authorID,
		AuthorName: author.DisplayName,
		Text:       text,
		CreatedAt:  time.Now(),
	}

	if err := uc.blogRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (uc *BlogUseCase) ListComments(ctx context.Context, postID string, limit, offset int) ([]*entity.BlogComment, int64, error) {
	return uc.blogRepo.ListComments(ctx, postID, limit, offset)
}

func (uc *BlogUseCase) DeleteComment(ctx context.Context, callerID, postID, commentID string, isAdmin bool) error {
	comments, _, err := uc.blogRepo.ListComments(ctx, postID, 100, 0)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if comment.ID == commentID {
			if comment.AuthorID != callerID && !isAdmin {
				return errors.Forbidden("You can only delete your own comments", nil)
			}
			return uc.blogRepo.DeleteComment(ctx, postID, commentID)
		}
	}

	return errors.NotFound("Comment", nil)
}
