package contextkeys

type contextKey string

const (
	Subject   contextKey = "subject"
	RequestID contextKey = "request_id"
)
