package repositories

import (
	"errors"

	"alumni_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository определяет интерфейс для операций с админ-пользователями
type UserRepository interface {
	// Create создает пользователя; ErrUserAlreadyExists если email занят
	Create(db *gorm.DB, user *models.User) error

	// FindByID находит пользователя по id
	FindByID(db *gorm.DB, id string) (*models.User, error)

	// FindByEmail находит пользователя по email
	FindByEmail(db *gorm.DB, email string) (*models.User, error)

	// UpdatePassword сохраняет новый хеш пароля
	UpdatePassword(db *gorm.DB, userID, passwordHash string) error

	// FindAll возвращает всех пользователей (админ-листинг)
	FindAll(db *gorm.DB) ([]models.User, error)
}

type userRepository struct{}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	// Проверяем занятость email до вставки: уникальный индекс останется
	// последней линией обороны, но наружу должна уходить доменная ошибка
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(db *gorm.DB, userID, passwordHash string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("created_at DESC").Find(&users).Error
	return users, err
}
