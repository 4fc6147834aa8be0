package request

import (
	"time"

	requestDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/request"
)

const (
	StatusNew        = "NEW"
	StatusInProgress = "IN_PROGRESS"
	StatusRepaired   = "REPAIRED"
	StatusScrap      = "SCRAP"
)

const (
	TypeCorrective = "CORRECTIVE"
	TypePreventive = "PREVENTIVE"
)

const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return true
	}
	return false
}

func ValidType(t string) bool {
	return t == TypeCorrective || t == TypePreventive
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Request is the API representation of a maintenance request, with the
// joined records flattened into lightweight summaries.
type Request struct {
	ID            string     `json:"id"`
	Subject       string     `json:"subject"`
	Description   string     `json:"description,omitempty"`
	Type          string     `json:"type"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	EquipmentID   string     `json:"equipmentId"`
	TeamID        *string    `json:"teamId,omitempty"`
	CreatedByID   string     `json:"createdById"`
	AssignedToID  *string    `json:"assignedToId,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	DurationHours *float64   `json:"duration,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Equipment  *EquipmentSummary `json:"equipment,omitempty"`
	Team       *TeamSummary      `json:"team,omitempty"`
	CreatedBy  *UserSummary      `json:"createdBy,omitempty"`
	AssignedTo *UserSummary      `json:"assignedTo,omitempty"`
}

type EquipmentSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type TeamSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromDataModel(dm *requestDatamodel.MaintenanceRequest) *Request {
	if dm == nil {
		return nil
	}

	r := &Request{
		ID:            dm.ID,
		Subject:       dm.Subject,
		Description:   dm.Description,
		Type:          dm.Type,
		Priority:      dm.Priority,
		Status:        dm.Status,
		EquipmentID:   dm.EquipmentID,
		TeamID:        dm.TeamID,
		CreatedByID:   dm.CreatedByID,
		AssignedToID:  dm.AssignedToID,
		ScheduledDate: dm.ScheduledDate,
		CompletedDate: dm.CompletedDate,
		DurationHours: dm.DurationHours,
		CreatedAt:     dm.CreatedAt,
		UpdatedAt:     dm.UpdatedAt,
	}

	if dm.Equipment != nil {
		r.Equipment = &EquipmentSummary{
			ID:     dm.Equipment.ID,
			Name:   dm.Equipment.Name,
			Status: dm.Equipment.Status,
		}
	}
	if dm.Team != nil {
		r.Team = &TeamSummary{ID: dm.Team.ID, Name: dm.Team.Name}
	}
	if dm.CreatedBy != nil {
		r.CreatedBy = &UserSummary{ID: dm.CreatedBy.ID, Name: dm.CreatedBy.Name}
	}
	if dm.AssignedTo != nil {
		r.AssignedTo = &UserSummary{ID: dm.AssignedTo.ID, Name: dm.AssignedTo.Name}
	}

	return r
}

func FromDataModelSlice(records []*requestDatamodel.MaintenanceRequest) []*Request {
	result := make([]*Request, len(records))
	for i, dm := range records {
		result[i] = FromDataModel(dm)
	}
	return result
}
