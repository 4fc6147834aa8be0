package equipment

import "time"

type Equipment struct {
	ID                string     `gorm:"primaryKey;size:36"`
	Name              string     `gorm:"column:name;not null"`
	Category          string     `gorm:"column:category;not null"`
	SerialNumber      string     `gorm:"column:serial_number"`
	Location          string     `gorm:"column:location"`
	PurchaseDate      *time.Time `gorm:"column:purchase_date"`
	WarrantyEnd       *time.Time `gorm:"column:warranty_end"`
	MaintenanceTeamID *string    `gorm:"column:maintenance_team_id;size:36"`
	Status            string     `gorm:"column:status;default:OPERATIONAL"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Equipment) TableName() string {
	return "equipment"
}
