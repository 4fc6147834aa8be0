package postgres

import (
	"errors"

	"gorm.io/gorm"

	appErrors "github.com/KunjShah95/gearguard/internal"
	equipmentDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/equipment"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(eq *equipmentDatamodel.Equipment) error {
	return r.db.Create(eq).Error
}

func (r *EquipmentRepository) GetByID(id string) (*equipmentDatamodel.Equipment, error) {
	var eq equipmentDatamodel.Equipment
	err := r.db.Where("id = ?", id).First(&eq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &eq, nil
}

func (r *EquipmentRepository) GetAll() ([]*equipmentDatamodel.Equipment, error) {
	var records []*equipmentDatamodel.Equipment
	err := r.db.Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *EquipmentRepository) Update(id string, updates map[string]interface{}) error {
	result := r.db.Model(&equipmentDatamodel.Equipment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&equipmentDatamodel.Equipment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrEquipmentNotFound
	}
	return nil
}
