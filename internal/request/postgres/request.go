package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	appErrors "github.com/KunjShah95/gearguard/internal"
	equipmentDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/equipment"
	requestDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/request"
	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
	"github.com/KunjShah95/gearguard/internal/request"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Transaction runs fn with a repository bound to one database transaction.
// Any error from fn rolls everything back.
func (r *RequestRepository) Transaction(fn func(request.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&RequestRepository{db: tx})
	})
}

func (r *RequestRepository) Create(req *requestDatamodel.MaintenanceRequest) error {
	return r.db.Create(req).Error
}

func (r *RequestRepository) GetByID(id string) (*requestDatamodel.MaintenanceRequest, error) {
	var req requestDatamodel.MaintenanceRequest
	err := r.preloaded().Where("id = ?", id).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) GetAll() ([]*requestDatamodel.MaintenanceRequest, error) {
	var records []*requestDatamodel.MaintenanceRequest
	err := r.preloaded().Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RequestRepository) Update(id string, updates map[string]interface{}) error {
	result := r.db.Model(&requestDatamodel.MaintenanceRequest{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) GetByEquipment(equipmentID string) ([]*requestDatamodel.MaintenanceRequest, error) {
	var records []*requestDatamodel.MaintenanceRequest
	err := r.preloaded().
		Where("equipment_id = ?", equipmentID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetForTeams returns unowned requests together with the requests of the
// given teams. An empty team list still returns the unowned ones.
func (r *RequestRepository) GetForTeams(teamIDs []string) ([]*requestDatamodel.MaintenanceRequest, error) {
	var records []*requestDatamodel.MaintenanceRequest
	query := r.preloaded()
	if len(teamIDs) > 0 {
		query = query.Where("team_id IS NULL OR team_id IN ?", teamIDs)
	} else {
		query = query.Where("team_id IS NULL")
	}
	err := query.Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RequestRepository) GetScheduledBetween(from, to time.Time) ([]*requestDatamodel.MaintenanceRequest, error) {
	var records []*requestDatamodel.MaintenanceRequest
	err := r.preloaded().
		Where("scheduled_date IS NOT NULL AND scheduled_date >= ? AND scheduled_date <= ?", from, to).
		Order("scheduled_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RequestRepository) GetEquipment(equipmentID string) (*equipmentDatamodel.Equipment, error) {
	var eq equipmentDatamodel.Equipment
	err := r.db.Where("id = ?", equipmentID).First(&eq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &eq, nil
}

func (r *RequestRepository) SetEquipmentStatus(equipmentID, status string) error {
	result := r.db.Model(&equipmentDatamodel.Equipment{}).
		Where("id = ?", equipmentID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *RequestRepository) IsTeamMember(userID, teamID string) (bool, error) {
	var count int64
	err := r.db.Model(&teamDatamodel.TeamMember{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RequestRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Equipment").
		Preload("Team").
		Preload("CreatedBy").
		Preload("AssignedTo")
}
