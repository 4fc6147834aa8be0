package equipment

import (
	"time"

	equipmentDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/equipment"
)

const (
	StatusOperational      = "OPERATIONAL"
	StatusUnderMaintenance = "UNDER_MAINTENANCE"
	StatusScrapped         = "SCRAPPED"
	StatusDecommissioned   = "DECOMMISSIONED"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusOperational, StatusUnderMaintenance, StatusScrapped, StatusDecommissioned:
		return true
	}
	return false
}

type Equipment struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	SerialNumber      string     `json:"serialNumber,omitempty"`
	Location          string     `json:"location,omitempty"`
	PurchaseDate      *time.Time `json:"purchaseDate,omitempty"`
	WarrantyEnd       *time.Time `json:"warrantyEnd,omitempty"`
	MaintenanceTeamID *string    `json:"maintenanceTeamId,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func FromDataModel(dm *equipmentDatamodel.Equipment) *Equipment {
	if dm == nil {
		return nil
	}
	return &Equipment{
		ID:                dm.ID,
		Name:              dm.Name,
		Category:          dm.Category,
		SerialNumber:      dm.SerialNumber,
		Location:          dm.Location,
		PurchaseDate:      dm.PurchaseDate,
		WarrantyEnd:       dm.WarrantyEnd,
		MaintenanceTeamID: dm.MaintenanceTeamID,
		Status:            dm.Status,
		CreatedAt:         dm.CreatedAt,
		UpdatedAt:         dm.UpdatedAt,
	}
}
