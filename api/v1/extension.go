package v1

import (
	"github.com/collabhq/roster/internal/models"
)

// NewUser converts a models.User to its public API shape.
func NewUser(u *models.User) User {
	return User{
		Id:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewAuthResponse(u *models.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  NewUser(u),
	}
}

// NewCollaborator converts a models.Collaborator to an API Collaborator.
func NewCollaborator(c *models.Collaborator) Collaborator {
	return Collaborator{
		Id:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Post:      c.Post,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewCollaboratorList(collabs []models.Collaborator) []Collaborator {
	out := make([]Collaborator, 0, len(collabs))
	for i := range collabs {
		out = append(out, NewCollaborator(&collabs[i]))
	}
	return out
}

// Fields extracts the writable model fields from a request body.
func (r CollaboratorRequest) Fields() models.CollaboratorFields {
	return models.CollaboratorFields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Post:      r.Post,
	}
}
