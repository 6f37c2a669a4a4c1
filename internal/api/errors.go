package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	errx "github.com/giftgenie-teelab/server/internal/core/error"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

const invalidBodyMessage = "invalid request body"

var registerOnce sync.Once

// registerFieldNames makes validator errors report the json or form key a
// client sent instead of the Go field name.
func registerFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// bindError converts a gin binding failure into a validation error. Names in
// absent are reported as missing alongside any required-field failures.
func bindError(err error, absent ...string) error {
	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		return errx.Validation(invalidBodyMessage)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "email":
			invalid = append(invalid, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		default:
			invalid = append(invalid, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	missing = append(missing, absent...)

	if len(missing) > 0 {
		return errx.Validationf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return errx.Validation(strings.Join(invalid, "; "))
	}
	return nil
}

// respondError logs err with request context and writes the error envelope.
// Only validation messages reach the client.
func respondError(c *gin.Context, err error) {
	appErr := errx.From(err)

	event := logx.Error()
	if appErr.Kind == errx.KindValidation {
		event = logx.Debug()
	}
	event.Err(err).
		Str("kind", string(appErr.Kind)).
		Str("route", c.FullPath()).
		Str("request_id", requestIDFrom(c)).
		Int("status", appErr.Status).
		Msg("request failed")

	c.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr.PublicMessage()})
}
