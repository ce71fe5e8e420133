package model

import (
	"time"

	"github.com/google/uuid"

	"novablog/internal/domain/entity"
)

// BlogModel is the bson shape of a post document in the blogs collection.
type BlogModel struct {
	ID            string    `bson:"_id"`
	Title         string    `bson:"title"`
	ThumbnailURL  string    `bson:"thumbnailUrl"`
	Tags          []string  `bson:"tags"`
	Description   string    `bson:"description"`
	UserID        string    `bson:"userId"`
	Likes         []string  `bson:"likes"`
	LikesCount    int       `bson:"likesCount"`
	CommentsCount int       `bson:"commentsCount"`
	Views         int64     `bson:"views"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

// FromBlogDomain maps a domain entity to its persistence model.
func FromBlogDomain(blog *entity.Blog) *BlogModel {
	likes := make([]string, len(blog.Likes))
	for i, id := range blog.Likes {
		likes[i] = id.String()
	}

	tags := blog.Tags
	if tags == nil {
		tags = []string{}
	}

	return &BlogModel{
		ID:            blog.ID.String(),
		Title:         blog.Title,
		ThumbnailURL:  blog.ThumbnailURL,
		Tags:          tags,
		Description:   blog.Description,
		UserID:        blog.UserID.String(),
		Likes:         likes,
		LikesCount:    blog.LikesCount,
		CommentsCount: blog.CommentsCount,
		Views:         blog.Views,
		CreatedAt:     blog.CreatedAt,
		UpdatedAt:     blog.UpdatedAt,
	}
}

// ToBlogDomain maps a persistence model back to a pure domain entity.
func ToBlogDomain(m *BlogModel) *entity.Blog {
	id, _ := uuid.Parse(m.ID)
	ownerID, _ := uuid.Parse(m.UserID)

	likes := make([]uuid.UUID, 0, len(m.Likes))
	for _, raw := range m.Likes {
		if likeID, err := uuid.Parse(raw); err == nil {
			likes = append(likes, likeID)
		}
	}

	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Blog{
		ID:            id,
		Title:         m.Title,
		ThumbnailURL:  m.ThumbnailURL,
		Tags:          tags,
		Description:   m.Description,
		UserID:        ownerID,
		Likes:         likes,
		LikesCount:    m.LikesCount,
		CommentsCount: m.CommentsCount,
		Views:         m.Views,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
