package postgres

import (
	"errors"

	"github.com/KunjShah95/gearguard/internal"
	userDatamodel "github.com/KunjShah95/gearguard/internal/core/datamodel/user"
	"github.com/KunjShah95/gearguard/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID string) (*user.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&u), nil
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var users []*userDatamodel.User
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(users), nil
}
