package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/niksmo/kitchen-store/internal/core/domain"
)

var (
	errInvalidJSON  = errors.New("invalid JSON data")
	errInvalidParam = errors.New("invalid parameter")
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads the body into v and validates it.
func decodeJSON(r *http.Request, validate *validator.Validate, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return validate.Struct(v)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

// writeError maps err onto a status code and writes a JSON error body.
// Server side failures are logged, client mistakes are not.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusOf(err)
	res := errorResponse{Error: publicMessage(status, err)}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		res.Error = "invalid request"
		res.Fields = formatValidationErrors(vErrs)
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "err", err)
	} else {
		log.Warn("request rejected", "status", status, "err", err)
	}
	writeJSON(w, log, status, res)
}

func statusOf(err error) int {
	var vErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErrs),
		errors.Is(err, errInvalidJSON),
		errors.Is(err, errInvalidParam),
		errors.Is(err, domain.ErrInvalidPriceRange),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrTotalMismatch),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrNoOrderChanges):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCartNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return "internal error"
	}
	for _, known := range []error{
		errInvalidJSON,
		errInvalidParam,
		domain.ErrInvalidPriceRange,
		domain.ErrEmptyOrder,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidPrice,
		domain.ErrTotalMismatch,
		domain.ErrInvalidStatus,
		domain.ErrNoOrderChanges,
		domain.ErrProductNotFound,
		domain.ErrOrderNotFound,
		domain.ErrCartNotFound,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return http.StatusText(status)
}

func formatValidationErrors(vErrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		field := strings.TrimPrefix(fe.Namespace(), rootNamespace(fe))
		switch fe.Tag() {
		case "required":
			fields[field] = fmt.Sprintf("%s is required", field)
		case "gt":
			fields[field] = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case "gte":
			fields[field] = fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
		case "lte":
			fields[field] = fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
		case "max":
			fields[field] = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			fields[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return fields
}

// rootNamespace returns the top level struct prefix, e.g. "OrderRequest.".
func rootNamespace(fe validator.FieldError) string {
	root, _, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return ""
	}
	return root + "."
}

func pathInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s", errInvalidParam, name)
	}
	return v, nil
}

func queryInt64(r *http.Request, name string) (v int64, ok bool, err error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s", errInvalidParam, name)
	}
	return v, true, nil
}
