package v1

import "time"

// SignupRequest registers a new user account. Email shape is enforced by the
// binding layer; presence checks live in the handler so the error messages
// stay stable.
type SignupRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

// CollaboratorRequest is the body for both create and full-replacement
// update of a collaborator.
type CollaboratorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"omitempty,email"`
	Post      string `json:"post"`
}

// User is the public projection of an account. The password hash never
// appears here.
type User struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AuthResponse carries a freshly issued bearer token and the public user.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Collaborator struct {
	Id        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Post      string    `json:"post"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StatusResponse struct {
	Ok bool `json:"ok"`
}
