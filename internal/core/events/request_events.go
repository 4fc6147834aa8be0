package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeRequestCreated       = "request.created"
	EventTypeRequestStatusChanged = "request.status_changed"
	EventTypeRequestAssigned      = "request.assigned"
	EventTypeEquipmentScrapped    = "equipment.scrapped"
)

type RequestCreatedEvent struct {
	BaseEvent
	RequestID   string `json:"request_id"`
	EquipmentID string `json:"equipment_id"`
	TeamID      string `json:"team_id,omitempty"`
	CreatedByID string `json:"created_by_id"`
}

func NewRequestCreatedEvent(requestID, equipmentID, teamID, createdByID string) *RequestCreatedEvent {
	return &RequestCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRequestCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":    requestID,
				"equipment_id":  equipmentID,
				"team_id":       teamID,
				"created_by_id": createdByID,
			},
		},
		RequestID:   requestID,
		EquipmentID: equipmentID,
		TeamID:      teamID,
		CreatedByID: createdByID,
	}
}

type RequestStatusChangedEvent struct {
	BaseEvent
	RequestID string `json:"request_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	ChangedBy string `json:"changed_by,omitempty"`
}

func NewRequestStatusChangedEvent(requestID, oldStatus, newStatus, changedBy string) *RequestStatusChangedEvent {
	return &RequestStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRequestStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id": requestID,
				"old_status": oldStatus,
				"new_status": newStatus,
				"changed_by": changedBy,
			},
		},
		RequestID: requestID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
	}
}

type RequestAssignedEvent struct {
	BaseEvent
	RequestID    string `json:"request_id"`
	AssignedToID string `json:"assigned_to_id"`
}

func NewRequestAssignedEvent(requestID, assignedToID string) *RequestAssignedEvent {
	return &RequestAssignedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeRequestAssigned,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id":     requestID,
				"assigned_to_id": assignedToID,
			},
		},
		RequestID:    requestID,
		AssignedToID: assignedToID,
	}
}

type EquipmentScrappedEvent struct {
	BaseEvent
	EquipmentID string `json:"equipment_id"`
	RequestID   string `json:"request_id"`
}

func NewEquipmentScrappedEvent(equipmentID, requestID string) *EquipmentScrappedEvent {
	return &EquipmentScrappedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEquipmentScrapped,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"equipment_id": equipmentID,
				"request_id":   requestID,
			},
		},
		EquipmentID: equipmentID,
		RequestID:   requestID,
	}
}
