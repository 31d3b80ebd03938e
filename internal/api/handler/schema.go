package handler

import "github.com/smartrestaurant/restaurant-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	AdminKey string `json:"adminKey,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

func toUserView(u *domain.User, withEmail bool) userView {
	v := userView{ID: u.ID, Name: u.Name, Role: u.Role}
	if withEmail {
		v.Email = u.Email
	}
	return v
}

type registerResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
	Token   string   `json:"token"`
}

type loginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    userView `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type orderCreatedResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

// statusRequest is the admin status update body. An empty status selects
// the resource's default.
type statusRequest struct {
	Status string `json:"status" validate:"omitempty,max=64"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type learnRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// errorResponse documents the {"message": "..."} error envelope.
type errorResponse struct {
	Message string `json:"message"`
}
