package errx

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// WrapRedis maps Redis errors to an AppError with a consistent status code and message.
// A cache miss (redis.Nil) is not an error and is returned unchanged.
func WrapRedis(err error) error {
	if err == nil || errors.Is(err, redis.Nil) {
		return err
	}
	return &AppError{
		Kind:    KindCache,
		Err:     err,
		Status:  http.StatusBadGateway,
		Message: RedisErrorMessage,
	}
}
