//go:build unit || e2e

package builder

import (
	"parkeaze/internal/domain/user"
	reqdto "parkeaze/internal/handler/dto/request"
)

type UserBuilder struct {
	UserName    string
	PhoneNumber string
	Password    string
	Role        string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		UserName:    "Test Seeker",
		PhoneNumber: "+919876543210",
		Password:    "password123",
		Role:        "seeker",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) AsOwner() *UserBuilder {
	b.Role = "owner"
	b.UserName = "Test Owner"
	b.PhoneNumber = "+919876500001"
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(b.UserName)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhoneNumber(b.PhoneNumber)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(name, phone, "hashed-password", role), nil
}

func (b *UserBuilder) BuildSignupRequestDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		UserName:    b.UserName,
		PhoneNumber: b.PhoneNumber,
		Password:    b.Password,
		Role:        b.Role,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		PhoneNumber: b.PhoneNumber,
		Password:    b.Password,
	}
}
