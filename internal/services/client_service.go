package services

import (
	"math"

	"alumni_backend/internal/config"
	"alumni_backend/internal/models"
	"alumni_backend/internal/repositories"
	"alumni_backend/internal/services/dto"
	"alumni_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ClientService interface {
	AddClient(db *gorm.DB, req *dto.ClientRequest) (*dto.ClientResponse, error)
	UpdateClient(db *gorm.DB, clientID string, req *dto.ClientRequest) (*dto.ClientResponse, error)
	DeleteClient(db *gorm.DB, clientID string) error
	ListClients(db *gorm.DB, search string, page int) (*dto.ClientListResponse, error)
	GetStats(db *gorm.DB) (*dto.StatsResponse, error)
}

type ClientServiceImpl struct {
	clientRepo    repositories.ClientRepository
	educationRepo repositories.EducationRepository
}

func NewClientService(
	clientRepo repositories.ClientRepository,
	educationRepo repositories.EducationRepository,
) ClientService {
	return &ClientServiceImpl{
		clientRepo:    clientRepo,
		educationRepo: educationRepo,
	}
}

// buildOutcome - диспетчеризация статус -> вариант исхода.
// Статус уже прошел правило is-client-status, поэтому default недостижим;
// nil наружу не уходит никогда - клиент без исхода не создается.
func buildOutcome(req *dto.ClientRequest) models.Outcome {
	switch models.ClientStatus(req.Status) {
	case models.ClientStatusRecruited:
		return &models.Recruited{
			Title:     req.Title,
			Company:   req.Company,
			Position:  req.Position,
			StartYear: req.StartYear,
			WorkCity:  req.WorkCity,
		}
	case models.ClientStatusFarther:
		return &models.Further{
			School:    req.School,
			FurtherEd: req.FurtherEd,
			City:      req.City,
		}
	case models.ClientStatusEmployed:
		return &models.SelfEmployed{
			SelfEmployed: req.SelfEmployed,
		}
	case models.ClientStatusSearching:
		return &models.Searching{
			Duration: req.Duration,
		}
	default:
		return nil
	}
}

func buildClientResponse(client *models.Client, outcome models.Outcome) *dto.ClientResponse {
	resp := &dto.ClientResponse{Client: client}
	if outcome != nil {
		resp.Outcome = &dto.OutcomeResponse{
			Status:  outcome.OutcomeStatus(),
			Details: outcome,
		}
	}
	return resp
}

// AddClient - создание клиента вместе с записью исхода
func (s *ClientServiceImpl) AddClient(db *gorm.DB, req *dto.ClientRequest) (*dto.ClientResponse, error) {
	outcome := buildOutcome(req)
	if outcome == nil {
		// Защитный пояс: сюда можно попасть только мимо валидации
		return nil, apperrors.ValidationError(map[string]string{"status": "Unknown client status"})
	}

	client := &models.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		EducationID:  req.EducationID,
		AcademicYear: req.AcademicYear,
		Status:       models.ClientStatus(req.Status),
	}

	if err := s.clientRepo.CreateWithOutcome(db, client, outcome); err != nil {
		if apperrors.Is(err, repositories.ErrClientAlreadyExists) {
			return nil, apperrors.ErrClientAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Подтягиваем справочник для ответа; ошибка здесь не фатальна
	if education, err := s.educationRepo.FindByID(db, client.EducationID); err == nil {
		client.Education = education
	}

	return buildClientResponse(client, outcome), nil
}

// UpdateClient - полная замена: скаляры клиента + замена исхода в одной транзакции
func (s *ClientServiceImpl) UpdateClient(db *gorm.DB, clientID string, req *dto.ClientRequest) (*dto.ClientResponse, error) {
	outcome := buildOutcome(req)
	if outcome == nil {
		return nil, apperrors.ValidationError(map[string]string{"status": "Unknown client status"})
	}

	if _, err := s.clientRepo.FindByID(db, clientID); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	taken, err := s.clientRepo.EmailTaken(db, req.Email, clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrClientEmailTaken
	}

	client := &models.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		EducationID:  req.EducationID,
		AcademicYear: req.AcademicYear,
		Status:       models.ClientStatus(req.Status),
	}
	client.ID = clientID

	if err := s.clientRepo.UpdateWithOutcome(db, client, outcome); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if education, err := s.educationRepo.FindByID(db, client.EducationID); err == nil {
		client.Education = education
	}

	return buildClientResponse(client, outcome), nil
}

// DeleteClient - мягкое удаление. Записи исхода не трогаем: владелец
// исключен из всех выборок, строки становятся инертными.
func (s *ClientServiceImpl) DeleteClient(db *gorm.DB, clientID string) error {
	if err := s.clientRepo.SoftDelete(db, clientID); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return apperrors.ErrClientNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListClients - постраничный листинг активных клиентов.
// Политика API: страница за пределами totalPages - это 404 "No more results",
// а не пустой список. Пустой результат по фильтру отдается только на 1-й странице.
func (s *ClientServiceImpl) ListClients(db *gorm.DB, search string, page int) (*dto.ClientListResponse, error) {
	if page < 1 {
		page = 1
	}
	pageSize := config.GetConfig().Pagination.PageSize

	clients, total, err := s.clientRepo.FindWithFilter(db, repositories.ClientFilter{
		Search:   search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if page > totalPages && total > 0 {
		return nil, apperrors.ErrNoMoreResults
	}

	data := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		client := &clients[i]
		data = append(data, *buildClientResponse(client, client.CurrentOutcome()))
	}

	return &dto.ClientListResponse{
		Data: data,
		Pagination: dto.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
		},
	}, nil
}

// GetStats - агрегаты по направлениям обучения.
// При нуле клиентов все проценты равны 0: NaN до клиента не доезжает.
func (s *ClientServiceImpl) GetStats(db *gorm.DB) (*dto.StatsResponse, error) {
	total, err := s.clientRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stat := func(educationName string) (dto.EducationStat, error) {
		count, err := s.clientRepo.CountByEducationName(db, educationName)
		if err != nil {
			return dto.EducationStat{}, err
		}
		es := dto.EducationStat{Count: count}
		if total > 0 {
			es.Percentage = float64(count) / float64(total) * 100
		}
		return es, nil
	}

	softwareDev, err := stat(models.EducationSoftwareDevelopment)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	dataScience, err := stat(models.EducationDataScience)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	creativeTech, err := stat(models.EducationCreativeTechnologies)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StatsResponse{
		TotalClients:         total,
		SoftwareDevelopment:  softwareDev,
		DataScience:          dataScience,
		CreativeTechnologies: creativeTech,
	}, nil
}
