package request

import (
	"time"

	equipmentDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/equipment"
	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
	userDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/user"
)

type MaintenanceRequest struct {
	ID            string     `gorm:"primaryKey;size:36"`
	Subject       string     `gorm:"column:subject;not null"`
	Description   string     `gorm:"column:description"`
	Type          string     `gorm:"column:type;default:CORRECTIVE"`
	Priority      string     `gorm:"column:priority;default:MEDIUM"`
	Status        string     `gorm:"column:status;default:NEW"`
	EquipmentID   string     `gorm:"column:equipment_id;size:36;not null"`
	TeamID        *string    `gorm:"column:team_id;size:36"`
	CreatedByID   string     `gorm:"column:created_by_id;size:36;not null"`
	AssignedToID  *string    `gorm:"column:assigned_to_id;size:36"`
	ScheduledDate *time.Time `gorm:"column:scheduled_date"`
	CompletedDate *time.Time `gorm:"column:completed_date"`
	DurationHours *float64   `gorm:"column:duration_hours"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Equipment  *equipmentDatamodel.Equipment  `gorm:"foreignKey:EquipmentID"`
	Team       *teamDatamodel.MaintenanceTeam `gorm:"foreignKey:TeamID"`
	CreatedBy  *userDatamodel.User            `gorm:"foreignKey:CreatedByID"`
	AssignedTo *userDatamodel.User            `gorm:"foreignKey:AssignedToID"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
