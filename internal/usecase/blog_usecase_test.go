package usecase

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type fakeBlogRepo struct {
	posts    map[string]*entity.BlogPost
	comments map[string][]*entity.BlogComment
	nextID   int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		posts:    make(map[string]*entity.BlogPost),
		comments: make(map[string][]*entity.BlogComment),
	}
}

func (r *fakeBlogRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	r.nextID++
	post.ID = "post" + strconv.Itoa(r.nextID)
	r.posts[post.ID] = post
	return nil
}

func (r *fakeBlogRepo) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	return post, nil
}

func (r *fakeBlogRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.BlogPost, int64, error) {
	var result []*entity.BlogPost
	for _, post := range r.posts {
		result = append(result, post)
	}
	return result, int64(len(result)), nil
}

func (r *fakeBlogRepo) Update(ctx context.Context, post *entity.BlogPost) error {
	r.posts[post.ID] = post
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakeBlogRepo) Like(ctx context.Context, postID, userID string) error {
	post, ok := r.posts[postID]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	post.LikedBy = append(post.LikedBy, userID)
	post.LikeCount++
	return nil
}

func (r *fakeBlogRepo) Unlike(ctx context.Context, postID, userID string) error {
	post, ok := r.posts[postID]
	if !ok {
		return errors.NotFound("Post", nil)
	}
	for i, id := range post.LikedBy {
		if id == userID {
			post.LikedBy = append(post.LikedBy[:i], post.LikedBy[i+1:]...)
			post.LikeCount--
			break
		}
	}
	return nil
}

func (r *fakeBlogRepo) CreateComment(ctx context.Context, comment *entity.BlogComment) error {
	r.nextID++
	comment.ID = "comment" + strconv.Itoa(r.nextID)
	r.comments[comment.PostID] = append(r.comments[comment.PostID], comment)
	if post, ok := r.posts[comment.PostID]; ok {
		post.CommentCount++
	}
	return nil
}

func (r *fakeBlogRepo) ListComments(ctx context.Context, postID string, limit, offset int) ([]*entity.BlogComment, int64, error) {
	comments := r.comments[postID]
	return comments, int64(len(comments)), nil
}

func (r *fakeBlogRepo) DeleteComment(ctx context.Context, postID, commentID string) error {
	comments := r.comments[postID]
	for i, comment := range comments {
		if comment.ID == commentID {
			r.comments[postID] = append(comments[:i], comments[i+1:]...)
			if post, ok := r.posts[postID]; ok {
				post.CommentCount--
			}
			return nil
		}
	}
	return errors.NotFound("Comment", nil)
}

func newBlogFixture() (*BlogUseCase, *fakeBlogRepo) {
	blogRepo := newFakeBlogRepo()
	userRepo := newFakeUserRepo(
		&entity.User{ID: "u1", DisplayName: "Ana"},
		&entity.User{ID: "u2", DisplayName: "Ben"},
	)
	return NewBlogUseCase(blogRepo, userRepo), blogRepo
}

func TestCreatePostSnapshotsAuthorName(t *testing.T) {
	uc, _ := newBlogFixture()

	post, err := uc.CreatePost(context.Background(), "u1", CreatePostInput{
		Title: "Adopting a senior dog",
		Body:  "They are the best companions you could ask for.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", post.AuthorName)
	assert.NotNil(t, post.LikedBy)
}

func TestCreatePostRejectsBlankContent(t *testing.T) {
	uc, _ := newBlogFixture()

	_, err := uc.CreatePost(context.Background(), "u1", CreatePostInput{Title: "   ", Body: "body text here"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLikeIsNotRepeatable(t *testing.T) {
	uc, _ := newBlogFixture()
	ctx := context.Background()

	post, err := uc.CreatePost(ctx, "u1", CreatePostInput{Title: "Title here", Body: "body text here"})
	require.NoError(t, err)

	require.NoError(t, uc.LikePost(ctx, "u2", post.ID))
	err = uc.LikePost(ctx, "u2", post.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	require.NoError(t, uc.UnlikePost(ctx, "u2", post.ID))
	err = uc.UnlikePost(ctx, "u2", post.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdatePostOnlyByAuthor(t *testing.T) {
	uc, _ := newBlogFixture()
	ctx := context.Background()

	post, err := uc.CreatePost(ctx, "u1", CreatePostInput{Title: "Title here", Body: "body text here"})
	require.NoError(t, err)

	_, err = uc.UpdatePost(ctx, "u2", post.ID, UpdatePostInput{Title: "Hijacked"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestDeletePostByAdmin(t *testing.T) {
	uc, blogRepo := newBlogFixture()
	ctx := context.Background()

	post, err := uc.CreatePost(ctx, "u1", CreatePostInput{Title: "Title here", Body: "body text here"})
	require.NoError(t, err)

	err = uc.DeletePost(ctx, "u2", post.ID, false)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.DeletePost(ctx, "u2", post.ID, true))
	_, err = blogRepo.GetByID(ctx, post.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCommentsTrimAndAuthorize(t *testing.T) {
	uc, _ := newBlogFixture()
	ctx := context.Background()

	post, err := uc.CreatePost(ctx, "u1", CreatePostInput{Title: "Title here", Body: "body text here"})
	require.NoError(t, err)

	_, err = uc.AddComment(ctx, "u2", post.ID, "   ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	comment, err := uc.AddComment(ctx, "u2", post.ID, "  great read  ")
	require.NoError(t, err)
	assert.Equal(t, "great read", comment.Text)
	assert.Equal(t, "Ben", comment.AuthorName)

	err = uc.DeleteComment(ctx, "u1", post.ID, comment.ID, false)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.DeleteComment(ctx, "u2", post.ID, comment.ID, false))
}
