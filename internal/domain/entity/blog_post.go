package entity

import (
	"time"
)

type BlogPost struct {
	ID         string `json:"id" firestore:"id"`
	AuthorID   string `json:"author_id" firestore:"authorId"`
	AuthorName string `json:"author_name" firestore:"authorName"`
	Title      string `json:"title" firestore:"title"`
	Body       string `json:"body" firestore:"body"`
	CoverURL   string `json:"cover_url,omitempty" firestore:"coverURL,omitempty"`
	Tags       []string `json:"tags,omitempty" firestore:"tags,omitempty"`

	LikedBy      []string `json:"liked_by" firestore:"likedBy"`
	LikeCount    int      `json:"like_count" firestore:"likeCount"`
	CommentCount int      `json:"comment_count" firestore:"commentCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type BlogComment struct {
	ID         string    `json:"id" firestore:"id"`
	PostID     string    `json:"post_id" firestore:"postId"`
	AuthorID   string    `json:"author_id" firestore:"authorId"`
	AuthorName string    `json:"author_name" firestore:"authorName"`
	Text       string    `json:"text" firestore:"text"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
