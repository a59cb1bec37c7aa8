package service

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL deriva la URL del avatar a partir del email: md5 del email
// normalizado, tamaño 200, rating pg y placeholder "mm".
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
