package models

const (
	// DefaultTokenCookie is the cookie holding the backend bearer token.
	DefaultTokenCookie = "proyecto1sa-user-token"

	// DefaultSessionTTL is how long a persisted session survives, in seconds.
	DefaultSessionTTL = 24 * 60 * 60

	// DefaultErrorMessage is used when a failed backend response has no message.
	DefaultErrorMessage = "Ha ocurrido un error"

	// Placeholder is printed in documents for missing values.
	Placeholder = "—"
)

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
	NoticeInfo    = "info"
)

// Notice is a user-facing message, the server-side counterpart of a toast.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
