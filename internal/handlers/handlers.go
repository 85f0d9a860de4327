package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/collabhq/roster/internal/models"
)

// UserService is the signup/login surface the handlers depend on.
type UserService interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// CollaboratorService is the CRUD surface the handlers depend on.
type CollaboratorService interface {
	Create(ctx context.Context, fields models.CollaboratorFields) (*models.Collaborator, error)
	List(ctx context.Context) ([]models.Collaborator, error)
	Get(ctx context.Context, id string) (*models.Collaborator, error)
	Update(ctx context.Context, id string, fields models.CollaboratorFields) (*models.Collaborator, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	userSrv   UserService
	collabSrv CollaboratorService
}

func New(userSrv UserService, collabSrv CollaboratorService) *Handler {
	return &Handler{
		userSrv:   userSrv,
		collabSrv: collabSrv,
	}
}

// Routes registers all endpoints. Which of them require a token is decided
// by the auth gate's allow-list, not here.
func (h *Handler) Routes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)

	api.GET("/collaborators", h.ListCollaborators)
	api.GET("/collaborators/:id", h.GetCollaborator)
	api.POST("/collaborators", h.CreateCollaborator)
	api.PUT("/collaborators/:id", h.UpdateCollaborator)
	api.DELETE("/collaborators/:id", h.DeleteCollaborator)
}
