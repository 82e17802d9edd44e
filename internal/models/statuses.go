package models

type UserRole string
type ClientStatus string

const (
	UserRoleAdmin UserRole = "ADMIN"

	// Статусы выпускника после программы
	ClientStatusRecruited ClientStatus = "RECRUITED" // трудоустроен в компанию
	ClientStatusFarther   ClientStatus = "FARTHER"   // продолжил обучение
	ClientStatusEmployed  ClientStatus = "EMPLOYED"  // самозанят
	ClientStatusSearching ClientStatus = "SEARCHING" // в поиске
)

// AllClientStatuses - закрытый список статусов.
// Любое другое значение отклоняется на границе валидации.
var AllClientStatuses = []ClientStatus{
	ClientStatusRecruited,
	ClientStatusFarther,
	ClientStatusEmployed,
	ClientStatusSearching,
}

// IsValidClientStatus проверяет, входит ли значение в закрытый enum
func IsValidClientStatus(value string) bool {
	switch ClientStatus(value) {
	case ClientStatusRecruited, ClientStatusFarther, ClientStatusEmployed, ClientStatusSearching:
		return true
	default:
		return false
	}
}
