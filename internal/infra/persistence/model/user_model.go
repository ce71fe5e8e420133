// Package model contains the persistence models for the document store and
// the mappers between them and the pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"

	"novablog/internal/domain/entity"
)

// UserModel is the bson shape of an account document in the users collection.
// IDs are stored as canonical uuid strings.
type UserModel struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	Name         string    `bson:"name"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// FromUserDomain maps a domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	id, _ := uuid.Parse(m.ID)

	return &entity.User{
		ID:           id,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}
