package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken      = errs.New("email is already in use")
	ErrInvalidUserData = errs.New("user data is invalid")
)

type UserCommands interface {
	Create(ctx context.Context, email, name string) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, email, name *string) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	users UserStore
}

func NewUserCommands(users UserStore) UserCommands {
	return &userCommandsImpl{users: users}
}

func (c *userCommandsImpl) Create(ctx context.Context, email, name string) (*queries.UserView, error) {
	em, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserData)
	}
	nm, err := user.NewName(name)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserData)
	}

	view, err := c.users.Create(ctx, user.NewUser(em, nm))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return view, nil
}

// Update changes only the fields that were supplied; a nil email or name
// keeps the stored value.
func (c *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, email, name *string) (*queries.UserView, error) {
	snap, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	nextEmail := snap.Email
	if email != nil {
		nextEmail = *email
	}
	nextName := snap.Name
	if name != nil {
		nextName = *name
	}

	em, err := user.NewEmail(nextEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserData)
	}
	nm, err := user.NewName(nextName)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserData)
	}

	u := user.ReconstructUser(userID, em, nm, time.Time{}, time.Time{})

	view, err := c.users.Update(ctx, u)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return view, nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return c.users.Delete(ctx, userID)
}
