package models

import "time"

type Status string

const (
	StatusOK          Status = "OK"
	StatusDegraded    Status = "Degraded"
	StatusUnreachable Status = "Unreachable"
	StatusUnknown     Status = "Unknown"
)

// IsValid Валидация статуса.
func (s Status) IsValid() bool {
	switch s {
	case StatusOK, StatusDegraded, StatusUnreachable, StatusUnknown:
		return true
	default:
		return false
	}
}

// String Стрингер для Status.
func (s Status) String() string {
	return string(s)
}

// EspressoStatus Модель статуса Espresso сервера.
type EspressoStatus struct {
	Address   string    `json:"address"`
	Status    Status    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// SameState Сравнивает статусы без учёта времени проверки.
func (s EspressoStatus) SameState(other EspressoStatus) bool {
	return s.Address == other.Address && s.Status == other.Status && s.Message == other.Message
}
