package postgres

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appErrors "github.com/KunjShah95/gearguard/internal"
	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
)

func TestTeamRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "TeamRepository Suite")
}

var _ = Describe("TeamRepository", func() {
	var (
		db   *gorm.DB
		repo *TeamRepository
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&teamDatamodel.MaintenanceTeam{}, &teamDatamodel.TeamMember{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewTeamRepository(db)
	})

	createTeam := func(id, name string) {
		Expect(repo.Create(&teamDatamodel.MaintenanceTeam{ID: id, Name: name})).NotTo(HaveOccurred())
	}

	Describe("GetByID", func() {
		It("should load the team with its members", func() {
			createTeam("team-1", "Mechanical Maintenance")
			Expect(repo.AddMember(&teamDatamodel.TeamMember{
				ID: "tm-1", UserID: "user-1", TeamID: "team-1", Role: "LEAD",
			})).NotTo(HaveOccurred())

			team, err := repo.GetByID("team-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(team.Name).To(Equal("Mechanical Maintenance"))
			Expect(team.Members).To(HaveLen(1))
			Expect(team.Members[0].UserID).To(Equal("user-1"))
		})

		It("should return a typed error for a missing team", func() {
			_, err := repo.GetByID("missing")

			Expect(err).To(Equal(appErrors.ErrTeamNotFound))
		})
	})

	Describe("AddMember", func() {
		It("should enforce one membership per user and team", func() {
			createTeam("team-1", "Mechanical Maintenance")

			Expect(repo.AddMember(&teamDatamodel.TeamMember{
				ID: "tm-1", UserID: "user-1", TeamID: "team-1", Role: "MEMBER",
			})).NotTo(HaveOccurred())

			err := repo.AddMember(&teamDatamodel.TeamMember{
				ID: "tm-2", UserID: "user-1", TeamID: "team-1", Role: "LEAD",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should allow the same user on different teams", func() {
			createTeam("team-1", "Mechanical")
			createTeam("team-2", "Electrical")

			Expect(repo.AddMember(&teamDatamodel.TeamMember{
				ID: "tm-1", UserID: "user-1", TeamID: "team-1",
			})).NotTo(HaveOccurred())
			Expect(repo.AddMember(&teamDatamodel.TeamMember{
				ID: "tm-2", UserID: "user-1", TeamID: "team-2",
			})).NotTo(HaveOccurred())

			teamIDs, err := repo.GetTeamIDsForUser("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(teamIDs).To(ConsistOf("team-1", "team-2"))
		})
	})

	Describe("RemoveMember", func() {
		It("should delete the membership row", func() {
			createTeam("team-1", "Mechanical")
			Expect(repo.AddMember(&teamDatamodel.TeamMember{
				ID: "tm-1", UserID: "user-1", TeamID: "team-1",
			})).NotTo(HaveOccurred())

			Expect(repo.RemoveMember("user-1", "team-1")).NotTo(HaveOccurred())

			isMember, err := repo.IsMember("user-1", "team-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(isMember).To(BeFalse())
		})

		It("should return a typed error when nothing matches", func() {
			createTeam("team-1", "Mechanical")

			err := repo.RemoveMember("user-1", "team-1")

			Expect(err).To(Equal(appErrors.ErrTeamMemberNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove the team and its memberships together", func() {
			createTeam("team-1", "Mechanical")
			Expect(repo.AddMember(&teamDatamodel.TeamMember{
				ID: "tm-1", UserID: "user-1", TeamID: "team-1",
			})).NotTo(HaveOccurred())

			Expect(repo.Delete("team-1")).NotTo(HaveOccurred())

			_, err := repo.GetByID("team-1")
			Expect(err).To(Equal(appErrors.ErrTeamNotFound))

			var count int64
			Expect(db.Model(&teamDatamodel.TeamMember{}).Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})
})
