package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// El script incrementa el contador de intentos y fija la expiración de la
// ventana sólo en el primer golpe, de forma atómica.
const loginAttemptScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return hits
`

const loginKeyPrefix = "devconnect:login:"

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisLoginRateLimiter struct {
	client     redisEvaler
	ttlSeconds int
	max        int
}

// NewRedisLoginRateLimiter crea un limitador de intentos de login respaldado
// en Redis. Ventana y máximo vienen de la configuración del servicio.
func NewRedisLoginRateLimiter(client *redis.Client, window time.Duration, max int) LoginRateLimiter {
	if client == nil {
		return nil
	}
	ttl := int(window.Seconds())
	if ttl <= 0 {
		ttl = 600
	}
	if max <= 0 {
		max = 10
	}
	return &redisLoginRateLimiter{client: client, ttlSeconds: ttl, max: max}
}

// Allow registra un intento para el email dado. Ante un error de Redis el
// login sigue disponible.
func (l *redisLoginRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	email := strings.ToLower(strings.TrimSpace(key))
	if email == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	hits, err := l.client.Eval(ctx, loginAttemptScript, []string{loginKeyPrefix + email}, l.ttlSeconds).Int()
	if err != nil {
		return true
	}
	return hits <= l.max
}
