// Package guard decides, per request path, whether the visitor may proceed.
package guard

import (
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/models"
)

const (
	LoginPath = "/login"
	HomePath  = "/"

	loginRequiredMessage = "Debes loguearte para acceder al sitio"
)

type Kind string

const (
	Allow         Kind = "allow"
	RedirectLogin Kind = "redirect_login"
	RedirectHome  Kind = "redirect_home"
	Deny          Kind = "deny"
)

// Decision is the outcome for one navigation. Notice is nil when nothing
// should be shown to the user.
type Decision struct {
	Kind     Kind
	Location string
	Group    auth.RouteGroup
	Notice   *models.Notice
}

type protectedPrefix struct {
	prefix string
	group  auth.RouteGroup
}

var protected = []protectedPrefix{
	{prefix: "/admin", group: auth.GroupAdmin},
	{prefix: "/reservaciones", group: auth.GroupReservations},
	{prefix: "/ordenes", group: auth.GroupOrders},
	{prefix: "/reportes", group: auth.GroupReports},
}

// Evaluate applies the access rules in order: public paths, missing token,
// signed-in visit to the login view, then the role check for protected
// prefixes.
func Evaluate(path, token string, role auth.Role) Decision {
	if IsPublic(path) {
		return Decision{Kind: Allow}
	}

	login := isLoginView(path)
	if token == "" && !login {
		return Decision{
			Kind:     RedirectLogin,
			Location: LoginPath,
			Notice:   &models.Notice{Level: models.NoticeError, Message: loginRequiredMessage},
		}
	}
	if token != "" && login {
		return Decision{Kind: RedirectHome, Location: HomePath}
	}

	for _, p := range protected {
		if !hasPrefix(path, p.prefix) {
			continue
		}
		if auth.IsAllowed(role, p.group) {
			break
		}
		return Decision{
			Kind:     Deny,
			Location: HomePath,
			Group:    p.group,
			Notice: &models.Notice{
				Level:   models.NoticeError,
				Message: "No tienes permisos para acceder a " + p.group.Title(),
			},
		}
	}

	return Decision{Kind: Allow}
}

// IsPublic reports whether path needs no session: /example and any path
// with a "public" or "juegos" segment.
func IsPublic(path string) bool {
	if path == "/example" {
		return true
	}
	for _, s := range segments(path) {
		if s == "public" || s == "juegos" {
			return true
		}
	}
	return false
}

func isLoginView(path string) bool {
	for _, s := range segments(path) {
		if s == "login" {
			return true
		}
	}
	return false
}

func hasPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func segments(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
