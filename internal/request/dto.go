package request

import (
	"errors"
	"time"
)

type CreateRequestDTO struct {
	Subject       string     `json:"subject"`
	Description   string     `json:"description,omitempty"`
	Type          string     `json:"type,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	EquipmentID   string     `json:"equipmentId"`
	TeamID        *string    `json:"teamId,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
}

func (dto CreateRequestDTO) Validate() error {
	if dto.Subject == "" {
		return errors.New("subject is required")
	}
	if dto.EquipmentID == "" {
		return errors.New("equipmentId is required")
	}
	if dto.Type != "" && !ValidType(dto.Type) {
		return errors.New("type must be either CORRECTIVE or PREVENTIVE")
	}
	if dto.Priority != "" && !ValidPriority(dto.Priority) {
		return errors.New("priority must be one of LOW, MEDIUM, HIGH, CRITICAL")
	}
	return nil
}

type UpdateRequestDTO struct {
	Subject       *string    `json:"subject,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Type          *string    `json:"type,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	DurationHours *float64   `json:"duration,omitempty"`
}

func (dto UpdateRequestDTO) Validate() error {
	if dto.Subject != nil && *dto.Subject == "" {
		return errors.New("subject cannot be empty")
	}
	if dto.Type != nil && !ValidType(*dto.Type) {
		return errors.New("type must be either CORRECTIVE or PREVENTIVE")
	}
	if dto.Priority != nil && !ValidPriority(*dto.Priority) {
		return errors.New("priority must be one of LOW, MEDIUM, HIGH, CRITICAL")
	}
	if dto.DurationHours != nil && *dto.DurationHours < 0 {
		return errors.New("duration cannot be negative")
	}
	return nil
}

type UpdateRequestStatusDTO struct {
	Status        string   `json:"status"`
	DurationHours *float64 `json:"duration,omitempty"`
}

func (dto UpdateRequestStatusDTO) Validate() error {
	if dto.Status == "" {
		return errors.New("status is required")
	}
	if !ValidStatus(dto.Status) {
		return errors.New("status must be one of NEW, IN_PROGRESS, REPAIRED, SCRAP")
	}
	if dto.DurationHours != nil && *dto.DurationHours < 0 {
		return errors.New("duration cannot be negative")
	}
	return nil
}

type AssignRequestDTO struct {
	AssignedToID string `json:"assignedToId"`
}
