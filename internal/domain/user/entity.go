package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id        uuid.UUID
	email     Email
	name      Name
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(email Email, name Name) *User {
	return &User{
		id:    uuid.New(),
		email: email,
		name:  name,
	}
}

func ReconstructUser(id uuid.UUID, email Email, name Name, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() Name           { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
