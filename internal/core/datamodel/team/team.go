package team

import "time"

type MaintenanceTeam struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Members []TeamMember `gorm:"foreignKey:TeamID"`
}

func (MaintenanceTeam) TableName() string {
	return "maintenance_teams"
}

// TeamMember is the membership join row. The composite unique index keeps at
// most one membership per (user, team) pair.
type TeamMember struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"column:user_id;size:36;not null;uniqueIndex:idx_team_members_user_team"`
	TeamID    string    `gorm:"column:team_id;size:36;not null;uniqueIndex:idx_team_members_user_team"`
	Role      string    `gorm:"column:role;default:MEMBER"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
