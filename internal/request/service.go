package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KunjShah95/gearguard/internal"
	equipmentDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/equipment"
	requestDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/request"
	"github.com/KunjShah95/gearguard/internal/core/events"
	"github.com/KunjShah95/gearguard/internal/equipment"
)

// Repository defines the data access methods for maintenance requests.
// Transaction runs fn against a repository bound to a single database
// transaction, so membership checks and the writes they guard commit
// together.
type Repository interface {
	Transaction(fn func(Repository) error) error

	Create(req *requestDatamodel.MaintenanceRequest) error
	GetByID(id string) (*requestDatamodel.MaintenanceRequest, error)
	GetAll() ([]*requestDatamodel.MaintenanceRequest, error)
	Update(id string, updates map[string]interface{}) error
	GetByEquipment(equipmentID string) ([]*requestDatamodel.MaintenanceRequest, error)
	GetForTeams(teamIDs []string) ([]*requestDatamodel.MaintenanceRequest, error)
	GetScheduledBetween(from, to time.Time) ([]*requestDatamodel.MaintenanceRequest, error)

	GetEquipment(equipmentID string) (*equipmentDatamodel.Equipment, error)
	SetEquipmentStatus(equipmentID, status string) error
	IsTeamMember(userID, teamID string) (bool, error)
}

// MembershipDirectory resolves which teams a user belongs to.
type MembershipDirectory interface {
	GetTeamIDsForUser(userID string) ([]string, error)
}

// EventPublisher decouples the service from the event bus. A nil publisher
// disables event emission.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo   Repository
	teams  MembershipDirectory
	events EventPublisher
	logger *slog.Logger
}

func NewService(repo Repository, teams MembershipDirectory, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		teams:  teams,
		events: publisher,
		logger: logger,
	}
}

// CreateRequest records a new maintenance request. When the caller does not
// name a team, the responsible team is derived from the equipment: whatever
// maintenance team the unit is linked to at creation time becomes the
// request's team.
func (s *Service) CreateRequest(callerID string, dto CreateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("request validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	eq, err := s.repo.GetEquipment(dto.EquipmentID)
	if err != nil {
		s.logger.Error("failed to resolve equipment for request", "error", err, "equipment_id", dto.EquipmentID)
		return nil, err
	}

	requestType := dto.Type
	if requestType == "" {
		requestType = TypeCorrective
	}
	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	teamID := dto.TeamID
	if teamID == nil {
		teamID = eq.MaintenanceTeamID
	}

	req := &requestDatamodel.MaintenanceRequest{
		ID:            uuid.NewString(),
		Subject:       dto.Subject,
		Description:   dto.Description,
		Type:          requestType,
		Priority:      priority,
		Status:        StatusNew,
		EquipmentID:   dto.EquipmentID,
		TeamID:        teamID,
		CreatedByID:   callerID,
		ScheduledDate: dto.ScheduledDate,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create request", "error", err, "equipment_id", dto.EquipmentID)
		return nil, err
	}

	s.logger.Info("maintenance request created",
		"request_id", req.ID,
		"equipment_id", req.EquipmentID,
		"team_id", derefOrEmpty(req.TeamID),
		"created_by", callerID)

	s.publish(events.NewRequestCreatedEvent(req.ID, req.EquipmentID, derefOrEmpty(req.TeamID), callerID))

	created, err := s.repo.GetByID(req.ID)
	if err != nil {
		return FromDataModel(req), nil
	}
	return FromDataModel(created), nil
}

func (s *Service) GetRequestByID(id string) (*Request, error) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(req), nil
}

func (s *Service) GetAllRequests() ([]*Request, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list requests", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// GetRequestsForUser returns the requests relevant to a technician: every
// request not yet owned by any team, plus the requests of the teams the
// user belongs to.
func (s *Service) GetRequestsForUser(userID string) ([]*Request, error) {
	teamIDs, err := s.teams.GetTeamIDsForUser(userID)
	if err != nil {
		s.logger.Error("failed to resolve team memberships", "error", err, "user_id", userID)
		return nil, err
	}

	records, err := s.repo.GetForTeams(teamIDs)
	if err != nil {
		s.logger.Error("failed to list requests for user", "error", err, "user_id", userID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

func (s *Service) GetRequestsByEquipment(equipmentID string) ([]*Request, error) {
	records, err := s.repo.GetByEquipment(equipmentID)
	if err != nil {
		s.logger.Error("failed to list requests for equipment", "error", err, "equipment_id", equipmentID)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// GetCalendar returns the requests scheduled inside [from, to].
func (s *Service) GetCalendar(from, to time.Time) ([]*Request, error) {
	records, err := s.repo.GetScheduledBetween(from, to)
	if err != nil {
		s.logger.Error("failed to load calendar", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}

// GetKanban groups every request by status, with all four columns present
// even when empty.
func (s *Service) GetKanban() (map[string][]*Request, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load kanban board", "error", err)
		return nil, err
	}

	board := map[string][]*Request{
		StatusNew:        {},
		StatusInProgress: {},
		StatusRepaired:   {},
		StatusScrap:      {},
	}
	for _, dm := range records {
		board[dm.Status] = append(board[dm.Status], FromDataModel(dm))
	}
	return board, nil
}

func (s *Service) UpdateRequest(id string, dto UpdateRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("request validation failed", "error", err, "request_id", id)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Subject != nil {
		updates["subject"] = *dto.Subject
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Type != nil {
		updates["type"] = *dto.Type
	}
	if dto.Priority != nil {
		updates["priority"] = *dto.Priority
	}
	if dto.ScheduledDate != nil {
		updates["scheduled_date"] = *dto.ScheduledDate
	}
	if dto.DurationHours != nil {
		updates["duration_hours"] = *dto.DurationHours
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			s.logger.Error("failed to update request", "error", err, "request_id", id)
			return nil, err
		}
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("request updated", "request_id", id)
	return FromDataModel(req), nil
}

// UpdateStatus moves a request through its lifecycle. Starting work on a
// team-owned request requires the caller to belong to that team; REPAIRED
// stamps the completion date; SCRAP also scraps the underlying equipment.
// The membership check and the resulting writes run in one transaction.
func (s *Service) UpdateStatus(id, callerID string, dto UpdateRequestStatusDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("status validation failed", "error", err, "request_id", id)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	var oldStatus string
	var scrappedEquipmentID string

	err := s.repo.Transaction(func(tx Repository) error {
		req, err := tx.GetByID(id)
		if err != nil {
			return err
		}
		oldStatus = req.Status

		if dto.Status == StatusInProgress && req.TeamID != nil && callerID != "" {
			isMember, err := tx.IsTeamMember(callerID, *req.TeamID)
			if err != nil {
				return err
			}
			if !isMember {
				s.logger.Warn("caller is not on the responsible team",
					"request_id", id, "caller_id", callerID, "team_id", *req.TeamID)
				return internal.ErrNotTeamMember
			}
		}

		updates := map[string]interface{}{"status": dto.Status}

		if dto.Status == StatusRepaired {
			updates["completed_date"] = time.Now()
			if dto.DurationHours != nil {
				updates["duration_hours"] = *dto.DurationHours
			}
		}

		if dto.Status == StatusScrap {
			if err := tx.SetEquipmentStatus(req.EquipmentID, equipment.StatusScrapped); err != nil {
				return err
			}
			scrappedEquipmentID = req.EquipmentID
		}

		return tx.Update(id, updates)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request status updated",
		"request_id", id, "old_status", oldStatus, "new_status", dto.Status, "caller_id", callerID)

	s.publish(events.NewRequestStatusChangedEvent(id, oldStatus, dto.Status, callerID))
	if scrappedEquipmentID != "" {
		s.publish(events.NewEquipmentScrappedEvent(scrappedEquipmentID, id))
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(req), nil
}

// AssignRequest hands a request to a technician. The assignee must belong
// to the responsible team when one is set, and assignment always puts the
// request in progress, regardless of its previous status.
func (s *Service) AssignRequest(id string, dto AssignRequestDTO) (*Request, error) {
	if dto.AssignedToID == "" {
		return nil, internal.ErrMissingAssignee
	}

	var oldStatus string

	err := s.repo.Transaction(func(tx Repository) error {
		req, err := tx.GetByID(id)
		if err != nil {
			return err
		}
		oldStatus = req.Status

		if req.TeamID != nil {
			isMember, err := tx.IsTeamMember(dto.AssignedToID, *req.TeamID)
			if err != nil {
				return err
			}
			if !isMember {
				s.logger.Warn("assignee is not on the responsible team",
					"request_id", id, "assignee_id", dto.AssignedToID, "team_id", *req.TeamID)
				return internal.ErrAssigneeNotTeamMember
			}
		}

		return tx.Update(id, map[string]interface{}{
			"assigned_to_id": dto.AssignedToID,
			"status":         StatusInProgress,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request assigned",
		"request_id", id, "assignee_id", dto.AssignedToID, "old_status", oldStatus)

	s.publish(events.NewRequestAssignedEvent(id, dto.AssignedToID))
	if oldStatus != StatusInProgress {
		s.publish(events.NewRequestStatusChangedEvent(id, oldStatus, StatusInProgress, ""))
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(req), nil
}

func (s *Service) publish(event events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(context.Background(), event); err != nil {
		s.logger.Error("failed to publish event", "error", err, "event_type", event.EventType())
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
