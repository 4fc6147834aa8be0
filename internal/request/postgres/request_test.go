package postgres

import (
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appErrors "github.com/KunjShah95/gearguard/internal"
	equipmentDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/equipment"
	requestDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/request"
	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
	userDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/user"
	"github.com/KunjShah95/gearguard/internal/request"
)

func TestRequestRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RequestRepository Suite")
}

var _ = Describe("RequestRepository", func() {
	var (
		db   *gorm.DB
		repo *RequestRepository
	)

	const (
		teamID      = "team-1"
		equipmentID = "eq-1"
		userID      = "user-1"
	)

	teamRef := teamID

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&userDatamodel.User{},
			&teamDatamodel.MaintenanceTeam{},
			&teamDatamodel.TeamMember{},
			&equipmentDatamodel.Equipment{},
			&requestDatamodel.MaintenanceRequest{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = NewRequestRepository(db)

		Expect(db.Create(&userDatamodel.User{
			ID: userID, Email: "tech@gearguard.local", Name: "Terry", Role: "TECHNICIAN",
			PasswordHash: "x", IsActive: true,
		}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&teamDatamodel.MaintenanceTeam{
			ID: teamID, Name: "Mechanical Maintenance",
		}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&equipmentDatamodel.Equipment{
			ID: equipmentID, Name: "Hydraulic Press 10T", Category: "PRESS",
			MaintenanceTeamID: &teamRef, Status: "OPERATIONAL",
		}).Error).NotTo(HaveOccurred())
	})

	createRequest := func(id string, team *string) {
		Expect(repo.Create(&requestDatamodel.MaintenanceRequest{
			ID:          id,
			Subject:     "Press making noise",
			Type:        "CORRECTIVE",
			Priority:    "MEDIUM",
			Status:      "NEW",
			EquipmentID: equipmentID,
			TeamID:      team,
			CreatedByID: userID,
		})).NotTo(HaveOccurred())
	}

	Describe("GetByID", func() {
		It("should load the request with its joined records", func() {
			createRequest("req-1", &teamRef)

			req, err := repo.GetByID("req-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(req.Subject).To(Equal("Press making noise"))
			Expect(req.Equipment).NotTo(BeNil())
			Expect(req.Equipment.Name).To(Equal("Hydraulic Press 10T"))
			Expect(req.Team).NotTo(BeNil())
			Expect(req.Team.Name).To(Equal("Mechanical Maintenance"))
			Expect(req.CreatedBy).NotTo(BeNil())
		})

		It("should return a typed error for a missing request", func() {
			_, err := repo.GetByID("missing")

			Expect(err).To(Equal(appErrors.ErrRequestNotFound))
		})
	})

	Describe("Update", func() {
		It("should apply column updates", func() {
			createRequest("req-1", &teamRef)

			err := repo.Update("req-1", map[string]interface{}{"status": "IN_PROGRESS"})

			Expect(err).NotTo(HaveOccurred())
			req, err := repo.GetByID("req-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Status).To(Equal("IN_PROGRESS"))
		})

		It("should return a typed error when nothing matches", func() {
			err := repo.Update("missing", map[string]interface{}{"status": "IN_PROGRESS"})

			Expect(err).To(Equal(appErrors.ErrRequestNotFound))
		})
	})

	Describe("GetForTeams", func() {
		var otherTeam = "team-2"

		BeforeEach(func() {
			Expect(db.Create(&teamDatamodel.MaintenanceTeam{ID: otherTeam, Name: "Electrical"}).Error).NotTo(HaveOccurred())
			createRequest("req-unowned", nil)
			createRequest("req-mine", &teamRef)
			createRequest("req-other", &otherTeam)
		})

		It("should return unowned requests and the given teams' requests", func() {
			records, err := repo.GetForTeams([]string{teamID})

			Expect(err).NotTo(HaveOccurred())
			ids := make([]string, len(records))
			for i, r := range records {
				ids[i] = r.ID
			}
			Expect(ids).To(ConsistOf("req-unowned", "req-mine"))
		})

		It("should return only unowned requests for an empty team list", func() {
			records, err := repo.GetForTeams(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].ID).To(Equal("req-unowned"))
		})
	})

	Describe("GetScheduledBetween", func() {
		It("should return requests scheduled inside the window", func() {
			inside := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)
			outside := time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)

			createRequest("req-1", nil)
			createRequest("req-2", nil)
			Expect(repo.Update("req-1", map[string]interface{}{"scheduled_date": inside})).NotTo(HaveOccurred())
			Expect(repo.Update("req-2", map[string]interface{}{"scheduled_date": outside})).NotTo(HaveOccurred())

			from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
			records, err := repo.GetScheduledBetween(from, to)

			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].ID).To(Equal("req-1"))
		})
	})

	Describe("IsTeamMember", func() {
		It("should report membership from the join table", func() {
			Expect(db.Create(&teamDatamodel.TeamMember{
				ID: "tm-1", UserID: userID, TeamID: teamID, Role: "MEMBER",
			}).Error).NotTo(HaveOccurred())

			isMember, err := repo.IsTeamMember(userID, teamID)
			Expect(err).NotTo(HaveOccurred())
			Expect(isMember).To(BeTrue())

			isMember, err = repo.IsTeamMember("stranger", teamID)
			Expect(err).NotTo(HaveOccurred())
			Expect(isMember).To(BeFalse())
		})
	})

	Describe("SetEquipmentStatus", func() {
		It("should update the equipment row", func() {
			err := repo.SetEquipmentStatus(equipmentID, "SCRAPPED")

			Expect(err).NotTo(HaveOccurred())
			var eq equipmentDatamodel.Equipment
			Expect(db.First(&eq, "id = ?", equipmentID).Error).NotTo(HaveOccurred())
			Expect(eq.Status).To(Equal("SCRAPPED"))
		})

		It("should return a typed error for unknown equipment", func() {
			err := repo.SetEquipmentStatus("missing", "SCRAPPED")

			Expect(err).To(Equal(appErrors.ErrEquipmentNotFound))
		})
	})

	Describe("Transaction", func() {
		It("should roll back every write when fn fails", func() {
			createRequest("req-1", &teamRef)

			err := repo.Transaction(func(tx request.Repository) error {
				if err := tx.Update("req-1", map[string]interface{}{"status": "SCRAP"}); err != nil {
					return err
				}
				if err := tx.SetEquipmentStatus(equipmentID, "SCRAPPED"); err != nil {
					return err
				}
				return errors.New("abort")
			})
			Expect(err).To(HaveOccurred())

			req, err := repo.GetByID("req-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Status).To(Equal("NEW"))

			var eq equipmentDatamodel.Equipment
			Expect(db.First(&eq, "id = ?", equipmentID).Error).NotTo(HaveOccurred())
			Expect(eq.Status).To(Equal("OPERATIONAL"))
		})

		It("should commit when fn succeeds", func() {
			createRequest("req-1", &teamRef)

			err := repo.Transaction(func(tx request.Repository) error {
				return tx.Update("req-1", map[string]interface{}{"status": "IN_PROGRESS"})
			})
			Expect(err).NotTo(HaveOccurred())

			req, err := repo.GetByID("req-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Status).To(Equal("IN_PROGRESS"))
		})
	})
})
