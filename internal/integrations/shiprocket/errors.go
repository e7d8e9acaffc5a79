package shiprocket

import (
	"encoding/json"
	"fmt"
)

// AuthError — не смогли получить токен. Unauthorized=true когда апстрим
// отверг логин (non-2xx), иначе сеть/таймаут/битое тело.
type AuthError struct {
	Unauthorized bool
	Err          error
}

func (e *AuthError) Error() string {
	if e.Unauthorized {
		return fmt.Sprintf("failed to authenticate with shiprocket: %v", e.Err)
	}
	return fmt.Sprintf("shiprocket authentication error: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// StatusError — non-2xx от апстрима на уже аутентифицированном вызове.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("shiprocket http %d", e.Code)
}

// Detail returns the upstream error body when it is valid JSON,
// otherwise the plain status line.
func (e *StatusError) Detail() string {
	if len(e.Body) > 0 && json.Valid(e.Body) {
		return string(e.Body)
	}
	return e.Error()
}
