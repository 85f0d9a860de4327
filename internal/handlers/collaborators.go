package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/collabhq/roster/api/v1"
	srvErrors "github.com/collabhq/roster/pkg/errors"
)

// ListCollaborators returns every collaborator record.
// (GET /api/collaborators)
func (h *Handler) ListCollaborators(c *gin.Context) {
	collabs, err := h.collabSrv.List(c.Request.Context())
	if err != nil {
		zap.S().Named("collaborator_handler").Errorw("failed to list collaborators", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list collaborators"})
		return
	}
	c.JSON(http.StatusOK, v1.NewCollaboratorList(collabs))
}

// GetCollaborator returns a single record by id.
// (GET /api/collaborators/:id)
func (h *Handler) GetCollaborator(c *gin.Context) {
	collab, err := h.collabSrv.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		zap.S().Named("collaborator_handler").Errorw("failed to get collaborator", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get collaborator"})
		return
	}
	c.JSON(http.StatusOK, v1.NewCollaborator(collab))
}

// CreateCollaborator adds a new record.
// (POST /api/collaborators)
func (h *Handler) CreateCollaborator(c *gin.Context) {
	req, ok := bindCollaborator(c)
	if !ok {
		return
	}

	collab, err := h.collabSrv.Create(c.Request.Context(), req.Fields())
	if err != nil {
		if srvErrors.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		zap.S().Named("collaborator_handler").Errorw("failed to create collaborator", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create collaborator"})
		return
	}

	c.JSON(http.StatusCreated, v1.NewCollaborator(collab))
}

// UpdateCollaborator replaces a record. Updates validate the same way
// creates do: all four fields are required.
// (PUT /api/collaborators/:id)
func (h *Handler) UpdateCollaborator(c *gin.Context) {
	req, ok := bindCollaborator(c)
	if !ok {
		return
	}

	collab, err := h.collabSrv.Update(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		switch {
		case srvErrors.IsResourceNotFoundError(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case srvErrors.IsDuplicateKeyError(err):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		default:
			zap.S().Named("collaborator_handler").Errorw("failed to update collaborator", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update collaborator"})
		}
		return
	}

	c.JSON(http.StatusOK, v1.NewCollaborator(collab))
}

// DeleteCollaborator removes a record.
// (DELETE /api/collaborators/:id)
func (h *Handler) DeleteCollaborator(c *gin.Context) {
	if err := h.collabSrv.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		zap.S().Named("collaborator_handler").Errorw("failed to delete collaborator", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete collaborator"})
		return
	}

	c.Status(http.StatusNoContent)
}

// bindCollaborator parses and validates a collaborator body. On failure it
// writes the 400 response and returns ok=false.
func bindCollaborator(c *gin.Context) (v1.CollaboratorRequest, bool) {
	var req v1.CollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return req, false
	}

	// Validate required fields
	if req.FirstName == "" || req.LastName == "" || req.Post == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, lastName, post and email are required"})
		return req, false
	}

	return req, true
}
