package modelutil

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func URLParam(r *http.Request, key string) (string, error) {
	param := chi.URLParam(r, key)
	if len(param) == 0 {
		return "", fmt.Errorf("missing {%v} url parameter", key)
	}
	return param, nil
}

func URLParamInt64(r *http.Request, key string) (int64, error) {
	param, err := URLParam(r, key)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer '%v' provided: %w", param, err)
	}

	return id, nil
}

// URLParamUUID parses the parameter as a UUID and returns it in canonical
// form.
func URLParamUUID(r *http.Request, key string) (string, error) {
	param, err := URLParam(r, key)
	if err != nil {
		return "", err
	}

	id, err := uuid.Parse(param)
	if err != nil {
		return "", fmt.Errorf("invalid uuid '%v' provided: %w", param, err)
	}

	return id.String(), nil
}
