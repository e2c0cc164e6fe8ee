package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/auth/jwt"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/ctrl"
	"github.com/JMURv/tab-audit/internal/hdl"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

// ErrResponse writes err with the kind of a domain error as its code, or a
// code derived from the status for everything else.
func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	code := string(lifecycle.KindOf(err))
	if code == "" {
		code = codeFor(statusCode)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err = json.NewEncoder(w).Encode(&ErrorResponse{Error: err.Error(), Code: code}); err != nil {
		zap.L().Debug("failed to encode error response", zap.Error(err))
	}
}

func codeFor(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return string(lifecycle.KindValidation)
	case http.StatusUnauthorized:
		return string(lifecycle.KindUnauthenticated)
	case http.StatusForbidden:
		return string(lifecycle.KindUnauthorized)
	case http.StatusNotFound:
		return string(lifecycle.KindNotFound)
	case http.StatusConflict:
		return string(lifecycle.KindConflict)
	case http.StatusTooManyRequests:
		return string(lifecycle.KindQuotaExceeded)
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// StatusFromErr maps controller errors to HTTP statuses.
func StatusFromErr(err error) int {
	switch {
	case errors.Is(err, lifecycle.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, lifecycle.ErrSerialTaken):
		return http.StatusConflict
	}

	switch lifecycle.KindOf(err) {
	case lifecycle.KindNotFound:
		return http.StatusNotFound
	case lifecycle.KindUnauthenticated:
		return http.StatusUnauthorized
	case lifecycle.KindUnauthorized:
		return http.StatusForbidden
	case "":
	default:
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrWrongTokenType):
		return http.StatusUnauthorized
	case errors.Is(err, ctrl.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ctrl.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ctrl.ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HandleErr writes the response for a failed controller call and returns
// its status. Unexpected errors are logged and masked.
func HandleErr(w http.ResponseWriter, op string, err error) int {
	c := StatusFromErr(err)
	if c == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("op", op), zap.Error(err))
		err = hdl.ErrInternal
	}

	ErrResponse(w, c, err)
	return c
}

// ParseAndValidate decodes the JSON body into dst and validates it. On failure
// a 400 response is written and false returned.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxMemory)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		zap.L().Debug(hdl.ErrDecodeRequest.Error(), zap.Error(err))
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, validationErr(err))
		return false
	}
	return true
}

func validationErr(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Principal returns the caller stored by the auth middleware, or the zero
// principal for anonymous requests.
func Principal(ctx context.Context) md.Principal {
	p, _ := ctx.Value(config.PrincipalKey).(md.Principal)
	return p
}
