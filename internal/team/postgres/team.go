package postgres

import (
	"errors"

	"gorm.io/gorm"

	appErrors "github.com/KunjShah95/gearguard/internal"
	teamDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/team"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(team *teamDatamodel.MaintenanceTeam) error {
	return r.db.Create(team).Error
}

func (r *TeamRepository) GetByID(id string) (*teamDatamodel.MaintenanceTeam, error) {
	var team teamDatamodel.MaintenanceTeam
	err := r.db.Preload("Members").Where("id = ?", id).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) GetAll() ([]*teamDatamodel.MaintenanceTeam, error) {
	var teams []*teamDatamodel.MaintenanceTeam
	err := r.db.Preload("Members").Order("created_at DESC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepository) Update(id string, updates map[string]interface{}) error {
	result := r.db.Model(&teamDatamodel.MaintenanceTeam{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&teamDatamodel.TeamMember{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&teamDatamodel.MaintenanceTeam{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrTeamNotFound
		}
		return nil
	})
}

func (r *TeamRepository) AddMember(member *teamDatamodel.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *TeamRepository) RemoveMember(userID, teamID string) error {
	result := r.db.Where("user_id = ? AND team_id = ?", userID, teamID).Delete(&teamDatamodel.TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTeamMemberNotFound
	}
	return nil
}

func (r *TeamRepository) IsMember(userID, teamID string) (bool, error) {
	var count int64
	err := r.db.Model(&teamDatamodel.TeamMember{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TeamRepository) GetTeamIDsForUser(userID string) ([]string, error) {
	var teamIDs []string
	err := r.db.Model(&teamDatamodel.TeamMember{}).
		Where("user_id = ?", userID).
		Pluck("team_id", &teamIDs).Error
	if err != nil {
		return nil, err
	}
	return teamIDs, nil
}
