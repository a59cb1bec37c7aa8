// Package validation replica las reglas de entrada por campo: cada validador
// devuelve un mapa campo -> mensaje listo para responder como cuerpo 400.
package validation

import (
	"net/mail"
	"net/url"
	"strings"
)

type Result struct {
	Errors  map[string]string
	IsValid bool
}

func newResult(errs map[string]string) Result {
	return Result{Errors: errs, IsValid: len(errs) == 0}
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, min, max int) bool {
	n := len([]rune(strings.TrimSpace(s)))
	return n >= min && n <= max
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Address == strings.TrimSpace(s)
}

// isURL acepta también valores sin esquema, como "example.com".
func isURL(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && strings.Contains(u.Host, ".")
}
