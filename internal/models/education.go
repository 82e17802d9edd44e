package models

// Education - справочник направлений обучения. Read-only для API.
type Education struct {
	ID   string `gorm:"primaryKey;type:varchar(20)" json:"educationId"`
	Name string `gorm:"uniqueIndex;not null" json:"educationName"`
}

// Названия направлений, по которым считается статистика
const (
	EducationSoftwareDevelopment  = "Software Development"
	EducationDataScience          = "Data Science & AI"
	EducationCreativeTechnologies = "Creative Technologies"
)
