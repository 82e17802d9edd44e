package repositories

import (
	"errors"

	"alumni_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already exists")
)

// ClientFilter - критерии листинга клиентов
type ClientFilter struct {
	// Search - подстрока без учета регистра; матчится по имени ИЛИ фамилии ИЛИ email
	Search   string
	Page     int
	PageSize int
}

// ClientRepository определяет интерфейс для операций с клиентами и их исходами.
//
// Инвариант слоя: у активного клиента не больше одной записи исхода суммарно
// по четырем таблицам. Обе мутации (создание и замена) держат его внутри
// одной транзакции.
type ClientRepository interface {
	// CreateWithOutcome создает клиента и ровно одну запись исхода.
	// ErrClientAlreadyExists если email занят активным клиентом.
	CreateWithOutcome(db *gorm.DB, client *models.Client, outcome models.Outcome) error

	// UpdateWithOutcome - замена целиком: скалярные поля клиента, затем
	// удаление записей исхода во ВСЕХ четырех таблицах (статус мог смениться),
	// затем вставка ровно одной новой. Все в одной транзакции: упасть между
	// delete и insert без отката - значит потерять исход клиента.
	UpdateWithOutcome(db *gorm.DB, client *models.Client, outcome models.Outcome) error

	// FindByID находит активного клиента со справочником и записью исхода
	FindByID(db *gorm.DB, id string) (*models.Client, error)

	// EmailTaken проверяет, занят ли email активным клиентом, кроме excludeID
	EmailTaken(db *gorm.DB, email, excludeID string) (bool, error)

	// SoftDelete проставляет deleted_at; записи исхода не трогаем - они
	// становятся инертными, потому что владелец отфильтрован отовсюду
	SoftDelete(db *gorm.DB, id string) error

	// FindWithFilter возвращает страницу активных клиентов и общее число
	// совпадений. Сортировка created_at DESC - стабильна между страницами.
	FindWithFilter(db *gorm.DB, criteria ClientFilter) ([]models.Client, int64, error)

	// CountAll считает активных клиентов
	CountAll(db *gorm.DB) (int64, error)

	// CountByEducationName считает активных клиентов направления
	CountByEducationName(db *gorm.DB, educationName string) (int64, error)

	// OutcomeFor возвращает запись исхода клиента (nil если ее нет)
	OutcomeFor(db *gorm.DB, clientID string) (models.Outcome, error)
}

type clientRepository struct{}

// NewClientRepository создает новый экземпляр ClientRepository
func NewClientRepository() ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) CreateWithOutcome(db *gorm.DB, client *models.Client, outcome models.Outcome) error {
	taken, err := r.EmailTaken(db, client.Email, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrClientAlreadyExists
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		return createOutcome(tx, client.ID, outcome)
	})
}

func (r *clientRepository) UpdateWithOutcome(db *gorm.DB, client *models.Client, outcome models.Outcome) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Client{}).Where("id = ?", client.ID).
			Updates(map[string]interface{}{
				"first_name":    client.FirstName,
				"last_name":     client.LastName,
				"email":         client.Email,
				"phone":         client.Phone,
				"education_id":  client.EducationID,
				"academic_year": client.AcademicYear,
				"status":        client.Status,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrClientNotFound
		}

		// Чистим все четыре таблицы, а не только таблицу прежнего статуса:
		// это единственный способ удержать взаимную исключительность
		// при раздельных схемах без дискриминированного union в хранилище
		if err := deleteAllOutcomes(tx, client.ID); err != nil {
			return err
		}

		return createOutcome(tx, client.ID, outcome)
	})
}

// createOutcome - диспетчеризация статус -> таблица
func createOutcome(tx *gorm.DB, clientID string, outcome models.Outcome) error {
	switch rec := outcome.(type) {
	case *models.Recruited:
		rec.ClientID = clientID
		return tx.Create(rec).Error
	case *models.Further:
		rec.ClientID = clientID
		return tx.Create(rec).Error
	case *models.SelfEmployed:
		rec.ClientID = clientID
		return tx.Create(rec).Error
	case *models.Searching:
		rec.ClientID = clientID
		return tx.Create(rec).Error
	default:
		// Неизвестный статус обязан быть отбит валидацией задолго до нас
		return errors.New("unknown outcome variant")
	}
}

func deleteAllOutcomes(tx *gorm.DB, clientID string) error {
	if err := tx.Where("client_id = ?", clientID).Delete(&models.Recruited{}).Error; err != nil {
		return err
	}
	if err := tx.Where("client_id = ?", clientID).Delete(&models.Further{}).Error; err != nil {
		return err
	}
	if err := tx.Where("client_id = ?", clientID).Delete(&models.SelfEmployed{}).Error; err != nil {
		return err
	}
	return tx.Where("client_id = ?", clientID).Delete(&models.Searching{}).Error
}

func (r *clientRepository) FindByID(db *gorm.DB, id string) (*models.Client, error) {
	var client models.Client
	err := db.Preload("Education").
		Preload("Recruited").Preload("Further").
		Preload("SelfEmployed").Preload("Searching").
		First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) EmailTaken(db *gorm.DB, email, excludeID string) (bool, error) {
	var count int64
	query := db.Model(&models.Client{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *clientRepository) SoftDelete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) FindWithFilter(db *gorm.DB, criteria ClientFilter) ([]models.Client, int64, error) {
	query := db.Model(&models.Client{})

	if criteria.Search != "" {
		// LOWER + LIKE вместо ILIKE: одинаково работает в Postgres и sqlite
		pattern := "%" + criteria.Search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (criteria.Page - 1) * criteria.PageSize

	var clients []models.Client
	err := query.
		Preload("Education").
		Preload("Recruited").Preload("Further").
		Preload("SelfEmployed").Preload("Searching").
		Order("created_at DESC").
		Limit(criteria.PageSize).Offset(offset).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *clientRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Client{}).Count(&count).Error
	return count, err
}

func (r *clientRepository) CountByEducationName(db *gorm.DB, educationName string) (int64, error) {
	var count int64
	err := db.Model(&models.Client{}).
		Joins("JOIN educations ON educations.id = clients.education_id").
		Where("educations.name = ?", educationName).
		Count(&count).Error
	return count, err
}

// OutcomeFor читает исход клиента. Используется тестами и сборкой ответов.
func (r *clientRepository) OutcomeFor(db *gorm.DB, clientID string) (models.Outcome, error) {
	var recruited models.Recruited
	if err := db.Where("client_id = ?", clientID).First(&recruited).Error; err == nil {
		return &recruited, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var further models.Further
	if err := db.Where("client_id = ?", clientID).First(&further).Error; err == nil {
		return &further, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var selfEmployed models.SelfEmployed
	if err := db.Where("client_id = ?", clientID).First(&selfEmployed).Error; err == nil {
		return &selfEmployed, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var searching models.Searching
	if err := db.Where("client_id = ?", clientID).First(&searching).Error; err == nil {
		return &searching, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, nil
}
