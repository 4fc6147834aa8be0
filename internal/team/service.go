package team

import (
	"log/slog"

	"github.com/KunjShah95/gearguard/internal"
	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
	"github.com/google/uuid"
)

// Repository defines the data access methods for teams and memberships
type Repository interface {
	Create(team *teamDatamodel.MaintenanceTeam) error
	GetByID(id string) (*teamDatamodel.MaintenanceTeam, error)
	GetAll() ([]*teamDatamodel.MaintenanceTeam, error)
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error

	AddMember(member *teamDatamodel.TeamMember) error
	RemoveMember(userID, teamID string) error
	IsMember(userID, teamID string) (bool, error)
	GetTeamIDsForUser(userID string) ([]string, error)
}

// Service handles team management and answers membership queries for the
// request lifecycle engine.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateTeam(dto CreateTeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("team validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	t := &teamDatamodel.MaintenanceTeam{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create team", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("team created", "team_id", t.ID, "name", t.Name)
	return FromDataModel(t), nil
}

func (s *Service) GetTeamByID(id string) (*Team, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get team", "error", err, "team_id", id)
		return nil, err
	}
	return FromDataModel(t), nil
}

func (s *Service) GetAllTeams() ([]*Team, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list teams", "error", err)
		return nil, err
	}
	return FromDataModelSlice(teams), nil
}

func (s *Service) UpdateTeam(id string, dto UpdateTeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			s.logger.Error("failed to update team", "error", err, "team_id", id)
			return nil, err
		}
	}

	return s.GetTeamByID(id)
}

func (s *Service) DeleteTeam(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete team", "error", err, "team_id", id)
		return err
	}

	s.logger.Info("team deleted", "team_id", id)
	return nil
}

func (s *Service) AddMember(teamID string, dto AddMemberDTO) (*Member, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, err
	}

	exists, err := s.repo.IsMember(dto.UserID, teamID)
	if err != nil {
		s.logger.Error("membership lookup failed", "error", err, "user_id", dto.UserID, "team_id", teamID)
		return nil, err
	}
	if exists {
		return nil, internal.ErrAlreadyTeamMember
	}

	role := dto.Role
	if role == "" {
		role = MemberRoleMember
	}

	m := &teamDatamodel.TeamMember{
		ID:     uuid.NewString(),
		UserID: dto.UserID,
		TeamID: teamID,
		Role:   role,
	}

	if err := s.repo.AddMember(m); err != nil {
		s.logger.Error("failed to add team member", "error", err, "user_id", dto.UserID, "team_id", teamID)
		return nil, err
	}

	s.logger.Info("team member added", "user_id", dto.UserID, "team_id", teamID, "role", role)
	member := MemberFromDataModel(m)
	return &member, nil
}

func (s *Service) RemoveMember(teamID, userID string) error {
	exists, err := s.repo.IsMember(userID, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return internal.ErrTeamMemberNotFound
	}

	if err := s.repo.RemoveMember(userID, teamID); err != nil {
		s.logger.Error("failed to remove team member", "error", err, "user_id", userID, "team_id", teamID)
		return err
	}

	s.logger.Info("team member removed", "user_id", userID, "team_id", teamID)
	return nil
}

// IsUserTeamMember is the single authorization primitive the request
// lifecycle engine builds its gating on.
func (s *Service) IsUserTeamMember(userID, teamID string) (bool, error) {
	return s.repo.IsMember(userID, teamID)
}

// GetTeamIDsForUser backs the "my requests" visibility rule.
func (s *Service) GetTeamIDsForUser(userID string) ([]string, error) {
	return s.repo.GetTeamIDsForUser(userID)
}
