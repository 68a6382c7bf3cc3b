package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type firestoreBlogRepository struct {
	client *firestore.Client
}

func NewFirestoreBlogRepository(client *firestore.Client) repository.BlogRepository {
	return &firestoreBlogRepository{
		client: client,
	}
}

func (r *firestoreBlogRepository) posts() *firestore.CollectionRef {
	return r.client.Collection("blogPosts")
}

func (r *firestoreBlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	if post.ID == "" {
		post.ID = r.posts().NewDoc().ID
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}

	_, err := r.posts().Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	doc, err := r.posts().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Blog post", err)
		}
		return nil, errors.Internal("Failed to get blog post", err)
	}

	var post entity.BlogPost
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse blog post data", err)
	}
	post.ID = doc.Ref.ID

	return &post, nil
}

func (r *firestoreBlogRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.BlogPost, int64, error) {
	query := r.posts().Query
	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch blog posts", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var posts []*entity.BlogPost
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate blog posts", err)
		}

		var post entity.BlogPost
		if err := doc.DataTo(&post); err != nil {
			return nil, 0, errors.Internal("Failed to parse blog post data", err)
		}
		post.ID = doc.Ref.ID
		posts = append(posts, &post)
	}

	return posts, total, nil
}

func (r *firestoreBlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	post.UpdatedAt = time.Now()

	_, err := r.posts().Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to update blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.posts().Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) Like(ctx context.Context, postID, userID string) error {
	_, err := r.posts().Doc(postID).Update(ctx, []firestore.Update{
		{Path: "likedBy", Value: firestore.ArrayUnion(userID)},
		{Path: "likeCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Blog post", err)
		}
		return errors.Internal("Failed to like blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) Unlike(ctx context.Context, postID, userID string) error {
	_, err := r.posts().Doc(postID).Update(ctx, []firestore.Update{
		{Path: "likedBy", Value: firestore.ArrayRemove(userID)},
		{Path: "likeCount", Value: firestore.Increment(-1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Blog post", err)
		}
		return errors.Internal("Failed to unlike blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) CreateComment(ctx context.Context, comment *entity.BlogComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	_, err := r.posts().Doc(comment.PostID).Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}

	_, err = r.posts().Doc(comment.PostID).Update(ctx, []firestore.Update{
		{Path: "commentCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to update comment count", err)
	}

	return nil
}

func (r *firestoreBlogRepository) ListComments(ctx context.Context, postID string, limit, offset int) ([]*entity.BlogComment, int64, error) {
	query := r.posts().Doc(postID).Collection("comments").OrderBy("createdAt", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch comments", err)
	}
	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var comments []*entity.BlogComment
	for _, doc := range allDocs[start:end] {
		var comment entity.BlogComment
		if err := doc.DataTo(&comment); err != nil {
			return nil, 0, errors.Internal("Failed to parse comment data", err)
		}
		comment.ID = doc.Ref.ID
		comments = append(comments, &comment)
	}

	return comments, total, nil
}

func (r *firestoreBlogRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	_, err := r.posts().Doc(postID).Collection("comments").Doc(commentID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete comment", err)
	}

	_, err = r.posts().Doc(postID).Update(ctx, []firestore.Update{
		{Path: "commentCount", Value: firestore.Increment(-1)},
	})
	if err != nil {
		return errors.Internal("Failed to update comment count", err)
	}

	return nil
}
