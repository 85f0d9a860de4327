package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/collabhq/roster/api/v1"
	"github.com/collabhq/roster/internal/handlers"
	"github.com/collabhq/roster/internal/models"
	srvErrors "github.com/collabhq/roster/pkg/errors"
)

var _ = Describe("Collaborator Handlers", func() {
	var (
		mockUsers   *MockUserService
		mockCollabs *MockCollaboratorService
		router      *gin.Engine
	)

	sample := &models.Collaborator{
		ID:        "collab-1",
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Post:      "Engineer",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		mockUsers = &MockUserService{}
		mockCollabs = &MockCollaboratorService{}
		handler := handlers.New(mockUsers, mockCollabs)
		router = gin.New()
		handler.Routes(router.Group("/"))
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("List", func() {
		It("returns an empty JSON array when there are no records", func() {
			mockCollabs.ListResult = []models.Collaborator{}

			w := do(http.MethodGet, "/api/collaborators", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(HavePrefix("["))

			var resp []v1.Collaborator
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(BeEmpty())
		})

		It("returns all records", func() {
			mockCollabs.ListResult = []models.Collaborator{*sample}

			w := do(http.MethodGet, "/api/collaborators", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp []v1.Collaborator
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveLen(1))
			Expect(resp[0].Id).To(Equal("collab-1"))
		})

		It("returns a generic 500 on store failure", func() {
			mockCollabs.ListError = errors.New("connection lost")

			w := do(http.MethodGet, "/api/collaborators", "")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection lost"))
		})
	})

	Describe("Get", func() {
		It("returns the record", func() {
			mockCollabs.GetResult = sample

			w := do(http.MethodGet, "/api/collaborators/collab-1", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(mockCollabs.LastID).To(Equal("collab-1"))
		})

		It("returns 404 for an unknown id", func() {
			mockCollabs.GetError = srvErrors.NewCollaboratorNotFoundError()

			w := do(http.MethodGet, "/api/collaborators/unknown", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(MatchJSON(`{"error": "Not found"}`))
		})
	})

	Describe("Create", func() {
		It("returns 201 with the created record", func() {
			mockCollabs.CreateResult = sample

			w := do(http.MethodPost, "/api/collaborators",
				`{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","post":"Engineer"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(mockCollabs.LastFields.Email).To(Equal("grace@example.com"))
		})

		It("returns 400 when any field is missing", func() {
			for _, body := range []string{
				`{"lastName":"Hopper","email":"g@h.com","post":"Engineer"}`,
				`{"firstName":"Grace","email":"g@h.com","post":"Engineer"}`,
				`{"firstName":"Grace","lastName":"Hopper","post":"Engineer"}`,
				`{"firstName":"Grace","lastName":"Hopper","email":"g@h.com"}`,
			} {
				w := do(http.MethodPost, "/api/collaborators", body)
				Expect(w.Code).To(Equal(http.StatusBadRequest), "body %s", body)
				Expect(w.Body.String()).To(MatchJSON(`{"error": "firstName, lastName, post and email are required"}`))
			}
		})

		It("returns 409 for a duplicate email", func() {
			mockCollabs.CreateError = srvErrors.NewDuplicateKeyError("Email")

			w := do(http.MethodPost, "/api/collaborators",
				`{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","post":"Engineer"}`)
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(MatchJSON(`{"error": "Email already exists"}`))
		})
	})

	Describe("Update", func() {
		It("returns 200 with the updated record", func() {
			mockCollabs.UpdateResult = sample

			w := do(http.MethodPut, "/api/collaborators/collab-1",
				`{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","post":"Rear Admiral"}`)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(mockCollabs.LastID).To(Equal("collab-1"))
			Expect(mockCollabs.LastFields.Post).To(Equal("Rear Admiral"))
		})

		It("validates required fields the same way create does", func() {
			w := do(http.MethodPut, "/api/collaborators/collab-1", `{"firstName":"Grace"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(MatchJSON(`{"error": "firstName, lastName, post and email are required"}`))
		})

		It("returns 404 for an unknown id", func() {
			mockCollabs.UpdateError = srvErrors.NewCollaboratorNotFoundError()

			w := do(http.MethodPut, "/api/collaborators/unknown",
				`{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com","post":"Engineer"}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Delete", func() {
		It("returns 204 with no body", func() {
			w := do(http.MethodDelete, "/api/collaborators/collab-1", "")
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(Equal(0))
		})

		It("returns 404 for an unknown id", func() {
			mockCollabs.DeleteError = srvErrors.NewCollaboratorNotFoundError()

			w := do(http.MethodDelete, "/api/collaborators/unknown", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
