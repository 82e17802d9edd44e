package repositories

import (
	"errors"

	"alumni_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEducationNotFound = errors.New("education not found")
)

// EducationRepository - read-only доступ к справочнику направлений
type EducationRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Education, error)
	FindAll(db *gorm.DB) ([]models.Education, error)
}

type educationRepository struct{}

func NewEducationRepository() EducationRepository {
	return &educationRepository{}
}

func (r *educationRepository) FindByID(db *gorm.DB, id string) (*models.Education, error) {
	var education models.Education
	if err := db.First(&education, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, err
	}
	return &education, nil
}

func (r *educationRepository) FindAll(db *gorm.DB) ([]models.Education, error) {
	var educations []models.Education
	err := db.Order("id").Find(&educations).Error
	return educations, err
}
