package models

import "gorm.io/gorm"

// Client - выпускник программы. Удаление только мягкое (gorm.DeletedAt),
// уникальность email среди НЕудаленных контролируется в репозитории.
type Client struct {
	BaseModel
	FirstName    string         `gorm:"not null" json:"firstName"`
	LastName     string         `gorm:"not null" json:"lastName"`
	Email        string         `gorm:"index;not null" json:"email"`
	Phone        string         `gorm:"not null" json:"phone"`
	EducationID  string         `gorm:"not null;index" json:"educationId"`
	AcademicYear string         `gorm:"not null" json:"academicYear"`
	Status       ClientStatus   `gorm:"type:varchar(20);not null" json:"status"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Education    *Education    `gorm:"foreignKey:EducationID" json:"education,omitempty"`
	Recruited    *Recruited    `gorm:"foreignKey:ClientID" json:"-"`
	Further      *Further      `gorm:"foreignKey:ClientID" json:"-"`
	SelfEmployed *SelfEmployed `gorm:"foreignKey:ClientID" json:"-"`
	Searching    *Searching    `gorm:"foreignKey:ClientID" json:"-"`
}

// Инвариант: у клиента не больше ОДНОЙ записи исхода суммарно по четырем
// таблицам, и ее вариант совпадает с Client.Status. Замена делается только
// через "удалить все + вставить одну" в одной транзакции (см. репозиторий).

// Outcome - помеченный union четырех вариантов исхода.
// Наружу всегда отдается вариант целиком, а не четыре независимых
// опциональных поля.
type Outcome interface {
	OutcomeStatus() ClientStatus
}

// Recruited - исход "трудоустроен"
type Recruited struct {
	BaseModel
	ClientID  string `gorm:"not null;uniqueIndex" json:"-"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	StartYear string `json:"startYear"`
	WorkCity  string `json:"workCity"`
}

// Further - исход "продолжил обучение"
type Further struct {
	BaseModel
	ClientID  string `gorm:"not null;uniqueIndex" json:"-"`
	School    string `json:"school"`
	FurtherEd string `json:"furtherEd"`
	City      string `json:"city"`
}

// SelfEmployed - исход "самозанят"
type SelfEmployed struct {
	BaseModel
	ClientID     string `gorm:"not null;uniqueIndex" json:"-"`
	SelfEmployed string `json:"selfEmployed"`
}

// Searching - исход "в поиске"
type Searching struct {
	BaseModel
	ClientID string `gorm:"not null;uniqueIndex" json:"-"`
	Duration string `json:"duration"`
}

func (*Recruited) OutcomeStatus() ClientStatus    { return ClientStatusRecruited }
func (*Further) OutcomeStatus() ClientStatus      { return ClientStatusFarther }
func (*SelfEmployed) OutcomeStatus() ClientStatus { return ClientStatusEmployed }
func (*Searching) OutcomeStatus() ClientStatus    { return ClientStatusSearching }

// CurrentOutcome возвращает подгруженную запись исхода (nil если нет ни одной)
func (c *Client) CurrentOutcome() Outcome {
	switch {
	case c.Recruited != nil:
		return c.Recruited
	case c.Further != nil:
		return c.Further
	case c.SelfEmployed != nil:
		return c.SelfEmployed
	case c.Searching != nil:
		return c.Searching
	default:
		return nil
	}
}
