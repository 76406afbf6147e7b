package commands

import (
	"context"

	"parkeaze/internal/domain/user"
	"parkeaze/internal/infra"
	"parkeaze/internal/pkg/errs"
	"parkeaze/internal/pkg/jwt"
	"parkeaze/internal/pkg/password"
	"parkeaze/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPhoneAlreadyRegistered = errs.New("phone number already registered")
	ErrInvalidCredentials     = errs.New("invalid phone number or password")
	ErrUserNotFound           = errs.New("user not found")
	ErrTokenGeneration        = errs.New("failed to generate token")
)

type SignupInput struct {
	Name     string
	Phone    string
	Password string
	Role     string
}

type LoginInput struct {
	Phone    string
	Password string
}

type UpdateProfileInput struct {
	Name  *string
	Phone *string
	Role  *string
}

type AuthResult struct {
	UserID uuid.UUID
	Role   user.Role
	Token  string
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwt: jwtService}
}

func (c *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhoneNumber(in.Phone)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	var u *user.User
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		nu := user.NewUser(name, phone, hash, role)
		if derr := tx.Users().Create(ctx, nu); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrPhoneAlreadyRegistered
			}
			return errs.Mark(derr, ErrDatabaseOperation)
		}
		u = nu
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.issue(u)
}

func (c *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	u, err := c.uow.Reads().UserByPhone(ctx, in.Phone)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if err := password.ComparePassword(u.PasswordHash(), in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return c.issue(u)
}

func (c *authCommandsImpl) issue(u *user.User) (*AuthResult, error) {
	token, err := c.jwt.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{UserID: u.ID(), Role: u.Role(), Token: token}, nil
}

func (c *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		var name *user.Name
		if in.Name != nil {
			n, verr := user.NewName(*in.Name)
			if verr != nil {
				return verr
			}
			name = &n
		}
		var phone *user.PhoneNumber
		if in.Phone != nil {
			p, verr := user.NewPhoneNumber(*in.Phone)
			if verr != nil {
				return verr
			}
			phone = &p
		}
		var role *user.Role
		if in.Role != nil {
			r, verr := user.NewRole(*in.Role)
			if verr != nil {
				return verr
			}
			role = &r
		}
		u.UpdateProfile(name, phone, role)
		if err := tx.Users().Update(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPhoneAlreadyRegistered
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

func (c *authCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if err := password.ComparePassword(u.PasswordHash(), current); err != nil {
			return ErrInvalidCredentials
		}
		pw, err := user.NewPassword(next)
		if err != nil {
			return err
		}
		hash, err := password.HashPassword(pw.Value())
		if err != nil {
			return errs.Wrap(err, "failed to hash password")
		}
		u.ChangePassword(hash)
		if err := tx.Users().Update(ctx, u); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}
