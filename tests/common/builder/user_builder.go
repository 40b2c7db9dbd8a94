//go:build unit || e2e

package builder

import (
	domuser "gearshare/internal/domain/user"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID    uuid.UUID
	Email string
	Name  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Email: "user@example.com",
		Name:  "User",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	name, err := domuser.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, name), nil
}

func (b *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:    b.ID,
		Email: b.Email,
		Name:  b.Name,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    b.ID,
		Email: b.Email,
		Name:  b.Name,
	}
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Email: b.Email,
		Name:  b.Name,
	}
}
