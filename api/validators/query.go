package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseQueryEnum runs parse on a non-empty query value. Empty values yield the zero T.
func ParseQueryEnum[T any](r *http.Request, key string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return zero, nil
	}
	value, err := parse(raw)
	if err != nil {
		return zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid query parameter").WithDetails(map[string]any{"field": key, "error": err.Error()})
	}
	return value, nil
}
