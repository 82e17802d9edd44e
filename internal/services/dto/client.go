package dto

import "alumni_backend/internal/models"

// ClientRequest - общий payload для addClient и updateClient (replace-семантика).
// Поля варианта исхода опциональны и СОЗНАТЕЛЬНО не сверяются со статусом:
// лишние поля игнорируются диспетчеризацией, недостающие остаются пустыми.
type ClientRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=3"`
	LastName     string `json:"lastName" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=10"`
	EducationID  string `json:"educationId" validate:"required,min=6"`
	AcademicYear string `json:"academicYear" validate:"required,min=4"`
	Status       string `json:"status" validate:"required,is-client-status"`

	// RECRUITED
	Title     string `json:"title,omitempty"`
	Company   string `json:"company,omitempty"`
	Position  string `json:"position,omitempty"`
	StartYear string `json:"startYear,omitempty"`
	WorkCity  string `json:"workCity,omitempty"`

	// FARTHER
	School    string `json:"school,omitempty"`
	FurtherEd string `json:"furtherEd,omitempty"`
	City      string `json:"city,omitempty"`

	// EMPLOYED
	SelfEmployed string `json:"selfEmployed,omitempty"`

	// SEARCHING
	Duration string `json:"duration,omitempty"`
}

// OutcomeResponse - помеченный union исхода: статус + детали одного варианта
type OutcomeResponse struct {
	Status  models.ClientStatus `json:"status"`
	Details models.Outcome      `json:"details"`
}

// ClientResponse - клиент вместе с исходом
type ClientResponse struct {
	Client  *models.Client   `json:"client"`
	Outcome *OutcomeResponse `json:"outcome"`
}

// Pagination - блок пагинации листинга
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

// ClientListResponse - страница листинга
type ClientListResponse struct {
	Data       []ClientResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// EducationStat - количество и доля направления
type EducationStat struct {
	Count int64 `json:"count"`
	// Percentage - доля от общего числа клиентов; при нуле клиентов всегда 0
	Percentage float64 `json:"percentage"`
}

// StatsResponse - агрегаты по активным клиентам
type StatsResponse struct {
	TotalClients         int64         `json:"totalClients"`
	SoftwareDevelopment  EducationStat `json:"softwareDevelopment"`
	DataScience          EducationStat `json:"dataScience"`
	CreativeTechnologies EducationStat `json:"creativeTechnologies"`
}
