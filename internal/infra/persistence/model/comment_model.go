package model

import (
	"time"

	"github.com/google/uuid"

	"novablog/internal/domain/entity"
)

// CommentModel is the bson shape of a comment document in the comments collection.
type CommentModel struct {
	ID        string    `bson:"_id"`
	BlogID    string    `bson:"blogId"`
	UserID    string    `bson:"userId"`
	Username  string    `bson:"username"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"createdAt"`
}

// FromCommentDomain maps a domain entity to its persistence model.
func FromCommentDomain(comment *entity.Comment) *CommentModel {
	return &CommentModel{
		ID:        comment.ID.String(),
		BlogID:    comment.BlogID.String(),
		UserID:    comment.UserID.String(),
		Username:  comment.Username,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentDomain maps a persistence model back to a pure domain entity.
func ToCommentDomain(m *CommentModel) *entity.Comment {
	id, _ := uuid.Parse(m.ID)
	blogID, _ := uuid.Parse(m.BlogID)
	userID, _ := uuid.Parse(m.UserID)

	return &entity.Comment{
		ID:        id,
		BlogID:    blogID,
		UserID:    userID,
		Username:  m.Username,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}
