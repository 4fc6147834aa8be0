package equipment

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/KunjShah95/gearguard/internal"
	equipmentDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/equipment"
)

// Repository defines the data access methods for equipment records
type Repository interface {
	Create(eq *equipmentDatamodel.Equipment) error
	GetByID(id string) (*equipmentDatamodel.Equipment, error)
	GetAll() ([]*equipmentDatamodel.Equipment, error)
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateEquipment(dto CreateEquipmentDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("equipment validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	eq := &equipmentDatamodel.Equipment{
		ID:                uuid.NewString(),
		Name:              dto.Name,
		Category:          dto.Category,
		SerialNumber:      dto.SerialNumber,
		Location:          dto.Location,
		PurchaseDate:      dto.PurchaseDate,
		WarrantyEnd:       dto.WarrantyEnd,
		MaintenanceTeamID: dto.MaintenanceTeamID,
		Status:            StatusOperational,
	}

	if err := s.repo.Create(eq); err != nil {
		s.logger.Error("failed to create equipment", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("equipment created", "equipment_id", eq.ID, "name", eq.Name)
	return FromDataModel(eq), nil
}

func (s *Service) GetEquipmentByID(id string) (*Equipment, error) {
	eq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(eq), nil
}

func (s *Service) GetAllEquipment() ([]*Equipment, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list equipment", "error", err)
		return nil, err
	}

	result := make([]*Equipment, 0, len(records))
	for _, eq := range records {
		result = append(result, FromDataModel(eq))
	}
	return result, nil
}

func (s *Service) UpdateEquipment(id string, dto UpdateEquipmentDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("equipment validation failed", "error", err, "equipment_id", id)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.SerialNumber != nil {
		updates["serial_number"] = *dto.SerialNumber
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.PurchaseDate != nil {
		updates["purchase_date"] = *dto.PurchaseDate
	}
	if dto.WarrantyEnd != nil {
		updates["warranty_end"] = *dto.WarrantyEnd
	}
	if dto.MaintenanceTeamID != nil {
		updates["maintenance_team_id"] = *dto.MaintenanceTeamID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			s.logger.Error("failed to update equipment", "error", err, "equipment_id", id)
			return nil, err
		}
	}

	eq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment updated", "equipment_id", id)
	return FromDataModel(eq), nil
}

// UpdateStatus changes the lifecycle status of a unit. Scrapped equipment
// can only move on to DECOMMISSIONED; it never returns to service.
func (s *Service) UpdateStatus(id string, dto UpdateEquipmentStatusDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("equipment status validation failed", "error", err, "equipment_id", id)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	eq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if eq.Status == StatusScrapped && dto.Status != StatusScrapped && dto.Status != StatusDecommissioned {
		s.logger.Warn("rejected status change for scrapped equipment",
			"equipment_id", id, "requested_status", dto.Status)
		return nil, internal.ErrScrappedEquipment
	}

	if err := s.repo.Update(id, map[string]interface{}{"status": dto.Status}); err != nil {
		s.logger.Error("failed to update equipment status", "error", err, "equipment_id", id)
		return nil, err
	}

	eq.Status = dto.Status
	s.logger.Info("equipment status updated", "equipment_id", id, "status", dto.Status)
	return FromDataModel(eq), nil
}

func (s *Service) DeleteEquipment(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete equipment", "error", err, "equipment_id", id)
		return err
	}

	s.logger.Info("equipment deleted", "equipment_id", id)
	return nil
}
