package response

import (
	"time"

	"parkeaze/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuthResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	resp := &UserResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
