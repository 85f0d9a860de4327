package store_test

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabhq/roster/internal/models"
	"github.com/collabhq/roster/internal/store"
	"github.com/collabhq/roster/internal/store/migrations"
	srvErrors "github.com/collabhq/roster/pkg/errors"
)

var _ = Describe("CollaboratorStore", func() {
	var (
		ctx context.Context
		db  *sql.DB
		st  *store.Store
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		st = store.NewStore(db)
	})

	AfterEach(func() {
		if st != nil {
			st.Close()
		}
	})

	newCollab := func(email string) *models.Collaborator {
		return &models.Collaborator{
			ID:        uuid.New().String(),
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     email,
			Post:      "Engineer",
		}
	}

	Describe("Create and Get", func() {
		It("round-trips a collaborator", func() {
			collab := newCollab("grace@example.com")
			Expect(st.Collaborators().Create(ctx, collab)).To(Succeed())

			got, err := st.Collaborators().Get(ctx, collab.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.FirstName).To(Equal("Grace"))
			Expect(got.Post).To(Equal("Engineer"))
		})

		It("rejects a duplicate email", func() {
			Expect(st.Collaborators().Create(ctx, newCollab("grace@example.com"))).To(Succeed())

			err := st.Collaborators().Create(ctx, newCollab("grace@example.com"))
			Expect(srvErrors.IsDuplicateKeyError(err)).To(BeTrue())
		})

		It("keeps user and collaborator email domains independent", func() {
			user := &models.User{
				ID:           uuid.New().String(),
				Email:        "shared@example.com",
				PasswordHash: "hash",
			}
			Expect(st.Users().Create(ctx, user)).To(Succeed())
			Expect(st.Collaborators().Create(ctx, newCollab("shared@example.com"))).To(Succeed())
		})

		It("returns ResourceNotFoundError for an unknown id", func() {
			_, err := st.Collaborators().Get(ctx, uuid.New().String())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("List", func() {
		It("returns an empty slice when there are no records", func() {
			collabs, err := st.Collaborators().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(collabs).To(BeEmpty())
		})

		It("returns all records", func() {
			Expect(st.Collaborators().Create(ctx, newCollab("a@example.com"))).To(Succeed())
			Expect(st.Collaborators().Create(ctx, newCollab("b@example.com"))).To(Succeed())

			collabs, err := st.Collaborators().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(collabs).To(HaveLen(2))
		})
	})

	Describe("Update", func() {
		It("replaces the writable fields", func() {
			collab := newCollab("grace@example.com")
			Expect(st.Collaborators().Create(ctx, collab)).To(Succeed())

			updated, err := st.Collaborators().Update(ctx, collab.ID, models.CollaboratorFields{
				FirstName: "Grace",
				LastName:  "Hopper",
				Email:     "hopper@example.com",
				Post:      "Rear Admiral",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Email).To(Equal("hopper@example.com"))
			Expect(updated.Post).To(Equal("Rear Admiral"))
		})

		It("returns ResourceNotFoundError for an unknown id", func() {
			_, err := st.Collaborators().Update(ctx, uuid.New().String(), models.CollaboratorFields{
				FirstName: "X", LastName: "Y", Email: "x@example.com", Post: "Z",
			})
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("removes the record", func() {
			collab := newCollab("grace@example.com")
			Expect(st.Collaborators().Create(ctx, collab)).To(Succeed())

			Expect(st.Collaborators().Delete(ctx, collab.ID)).To(Succeed())

			_, err := st.Collaborators().Get(ctx, collab.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("returns ResourceNotFoundError for an unknown id", func() {
			err := st.Collaborators().Delete(ctx, uuid.New().String())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
