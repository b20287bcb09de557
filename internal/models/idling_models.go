package models

// ClassNamesRequest Тело запросов регистрации и снятия регистрации idling-ресурсов.
type ClassNamesRequest struct {
	ClassNames *string `json:"classNames"`
}

// ExecuteRequest Тело запроса выполнения произвольной mobile-команды.
type ExecuteRequest struct {
	Script string         `json:"script"`
	Args   map[string]any `json:"args"`
}

// ExecuteResponse Результат выполнения mobile-команды.
type ExecuteResponse struct {
	Value any `json:"value"`
}
