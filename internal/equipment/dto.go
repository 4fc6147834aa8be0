package equipment

import (
	"errors"
	"time"
)

type CreateEquipmentDTO struct {
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	SerialNumber      string     `json:"serialNumber,omitempty"`
	Location          string     `json:"location,omitempty"`
	PurchaseDate      *time.Time `json:"purchaseDate,omitempty"`
	WarrantyEnd       *time.Time `json:"warrantyEnd,omitempty"`
	MaintenanceTeamID *string    `json:"maintenanceTeamId,omitempty"`
}

func (dto CreateEquipmentDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

type UpdateEquipmentDTO struct {
	Name              *string    `json:"name,omitempty"`
	Category          *string    `json:"category,omitempty"`
	SerialNumber      *string    `json:"serialNumber,omitempty"`
	Location          *string    `json:"location,omitempty"`
	PurchaseDate      *time.Time `json:"purchaseDate,omitempty"`
	WarrantyEnd       *time.Time `json:"warrantyEnd,omitempty"`
	MaintenanceTeamID *string    `json:"maintenanceTeamId,omitempty"`
}

func (dto UpdateEquipmentDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.New("name cannot be empty")
	}
	if dto.Category != nil && *dto.Category == "" {
		return errors.New("category cannot be empty")
	}
	return nil
}

type UpdateEquipmentStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateEquipmentStatusDTO) Validate() error {
	if dto.Status == "" {
		return errors.New("status is required")
	}
	if !ValidStatus(dto.Status) {
		return errors.New("status must be one of OPERATIONAL, UNDER_MAINTENANCE, SCRAPPED, DECOMMISSIONED")
	}
	return nil
}
