// Package identity wraps session lookup behind a small interface so the rest
// of the application never touches tokens directly. The core only cares about
// the user attached to a request and whether their role is "admin".
package identity

import (
	"net/http"

	"github.com/naborsk/racequiz/internal/model"
)

type Session struct {
	User model.User
}

// Provider resolves the session carried by a request. A nil session with a
// nil error means the request is anonymous; errors are reserved for storage
// failures during user lookup.
type Provider interface {
	GetSession(r *http.Request) (*Session, error)
}
