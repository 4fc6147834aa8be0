package team_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	appErrors "github.com/KunjShah95/gearguard/internal"
	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
	"github.com/KunjShah95/gearguard/internal/team"
)

func TestTeamService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "TeamService Suite")
}

// Mock repository for testing
type mockTeamRepository struct {
	teams   map[string]*teamDatamodel.MaintenanceTeam
	members map[string]map[string]string // teamID -> userID -> role

	createError error
	memberError error
}

func newMockTeamRepository() *mockTeamRepository {
	return &mockTeamRepository{
		teams:   make(map[string]*teamDatamodel.MaintenanceTeam),
		members: make(map[string]map[string]string),
	}
}

func (m *mockTeamRepository) Create(t *teamDatamodel.MaintenanceTeam) error {
	if m.createError != nil {
		return m.createError
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	m.teams[t.ID] = t
	return nil
}

func (m *mockTeamRepository) GetByID(id string) (*teamDatamodel.MaintenanceTeam, error) {
	t, exists := m.teams[id]
	if !exists {
		return nil, appErrors.ErrTeamNotFound
	}
	return t, nil
}

func (m *mockTeamRepository) GetAll() ([]*teamDatamodel.MaintenanceTeam, error) {
	result := make([]*teamDatamodel.MaintenanceTeam, 0, len(m.teams))
	for _, t := range m.teams {
		result = append(result, t)
	}
	return result, nil
}

func (m *mockTeamRepository) Update(id string, updates map[string]interface{}) error {
	t, exists := m.teams[id]
	if !exists {
		return appErrors.ErrTeamNotFound
	}
	if name, ok := updates["name"]; ok {
		t.Name = name.(string)
	}
	if description, ok := updates["description"]; ok {
		t.Description = description.(string)
	}
	return nil
}

func (m *mockTeamRepository) Delete(id string) error {
	if _, exists := m.teams[id]; !exists {
		return appErrors.ErrTeamNotFound
	}
	delete(m.teams, id)
	delete(m.members, id)
	return nil
}

func (m *mockTeamRepository) AddMember(member *teamDatamodel.TeamMember) error {
	if m.memberError != nil {
		return m.memberError
	}
	if m.members[member.TeamID] == nil {
		m.members[member.TeamID] = make(map[string]string)
	}
	m.members[member.TeamID][member.UserID] = member.Role
	return nil
}

func (m *mockTeamRepository) RemoveMember(userID, teamID string) error {
	delete(m.members[teamID], userID)
	return nil
}

func (m *mockTeamRepository) IsMember(userID, teamID string) (bool, error) {
	if m.memberError != nil {
		return false, m.memberError
	}
	_, exists := m.members[teamID][userID]
	return exists, nil
}

func (m *mockTeamRepository) GetTeamIDsForUser(userID string) ([]string, error) {
	var teamIDs []string
	for teamID, users := range m.members {
		if _, exists := users[userID]; exists {
			teamIDs = append(teamIDs, teamID)
		}
	}
	return teamIDs, nil
}

var _ = Describe("TeamService", func() {
	var (
		service  *team.Service
		mockRepo *mockTeamRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockTeamRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = team.NewService(mockRepo, logger)
	})

	Describe("CreateTeam", func() {
		It("should create a team with a generated id", func() {
			result, err := service.CreateTeam(team.CreateTeamDTO{
				Name:        "Mechanical Maintenance",
				Description: "Pumps and presses",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).ToNot(BeEmpty())
			Expect(result.Name).To(Equal("Mechanical Maintenance"))
		})

		It("should reject an empty name", func() {
			_, err := service.CreateTeam(team.CreateTeamDTO{})

			appErr, ok := appErrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(appErrors.ErrorTypeValidation))
		})
	})

	Describe("AddMember", func() {
		var teamID string

		BeforeEach(func() {
			created, err := service.CreateTeam(team.CreateTeamDTO{Name: "Electrical"})
			Expect(err).ToNot(HaveOccurred())
			teamID = created.ID
		})

		It("should add a member with the default role", func() {
			member, err := service.AddMember(teamID, team.AddMemberDTO{UserID: "user-1"})

			Expect(err).ToNot(HaveOccurred())
			Expect(member.UserID).To(Equal("user-1"))
			Expect(member.Role).To(Equal(team.MemberRoleMember))
		})

		It("should refuse a duplicate membership", func() {
			_, err := service.AddMember(teamID, team.AddMemberDTO{UserID: "user-1"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.AddMember(teamID, team.AddMemberDTO{UserID: "user-1"})
			Expect(err).To(Equal(appErrors.ErrAlreadyTeamMember))
		})

		It("should refuse an unknown role", func() {
			_, err := service.AddMember(teamID, team.AddMemberDTO{UserID: "user-1", Role: "BOSS"})

			appErr, ok := appErrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(appErrors.ErrorTypeValidation))
		})

		It("should refuse an unknown team", func() {
			_, err := service.AddMember("missing", team.AddMemberDTO{UserID: "user-1"})

			Expect(err).To(Equal(appErrors.ErrTeamNotFound))
		})
	})

	Describe("RemoveMember", func() {
		var teamID string

		BeforeEach(func() {
			created, err := service.CreateTeam(team.CreateTeamDTO{Name: "Electrical"})
			Expect(err).ToNot(HaveOccurred())
			teamID = created.ID
			_, err = service.AddMember(teamID, team.AddMemberDTO{UserID: "user-1"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should remove an existing membership", func() {
			Expect(service.RemoveMember(teamID, "user-1")).To(Succeed())

			isMember, err := service.IsUserTeamMember("user-1", teamID)
			Expect(err).ToNot(HaveOccurred())
			Expect(isMember).To(BeFalse())
		})

		It("should report a missing membership", func() {
			err := service.RemoveMember(teamID, "stranger")

			Expect(err).To(Equal(appErrors.ErrTeamMemberNotFound))
		})
	})

	Describe("GetTeamIDsForUser", func() {
		It("should list every team the user belongs to", func() {
			first, err := service.CreateTeam(team.CreateTeamDTO{Name: "Mechanical"})
			Expect(err).ToNot(HaveOccurred())
			second, err := service.CreateTeam(team.CreateTeamDTO{Name: "Electrical"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.AddMember(first.ID, team.AddMemberDTO{UserID: "user-1"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.AddMember(second.ID, team.AddMemberDTO{UserID: "user-1"})
			Expect(err).ToNot(HaveOccurred())

			teamIDs, err := service.GetTeamIDsForUser("user-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(teamIDs).To(ConsistOf(first.ID, second.ID))
		})
	})
})
