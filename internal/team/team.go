package team

import (
	"time"

	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
)

const (
	MemberRoleLead   = "LEAD"
	MemberRoleMember = "MEMBER"
)

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Members     []Member  `json:"members,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Member struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TeamID    string    `json:"team_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDataModel(t *teamDatamodel.MaintenanceTeam) *Team {
	members := make([]Member, len(t.Members))
	for i, m := range t.Members {
		members[i] = MemberFromDataModel(&m)
	}
	return &Team{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Members:     members,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func MemberFromDataModel(m *teamDatamodel.TeamMember) Member {
	return Member{
		ID:        m.ID,
		UserID:    m.UserID,
		TeamID:    m.TeamID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func FromDataModelSlice(teams []*teamDatamodel.MaintenanceTeam) []*Team {
	result := make([]*Team, len(teams))
	for i, t := range teams {
		result[i] = FromDataModel(t)
	}
	return result
}
