// Package modelutil is the runtime generated modules are written against:
// response envelopes, body binding, authentication, request parameters,
// database access and metrics.
package modelutil

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Response is the envelope every handler answers with.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSON writes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("could not write response")
	}
}

func respond(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Response{Code: status, Message: message, Data: data})
}

func Success(w http.ResponseWriter, data interface{}) {
	respond(w, http.StatusOK, "Success", data)
}

func SuccessMessage(w http.ResponseWriter, data interface{}, message string) {
	respond(w, http.StatusOK, message, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	respond(w, http.StatusCreated, "Created", data)
}

func BadRequest(w http.ResponseWriter, message string) {
	respond(w, http.StatusBadRequest, message, nil)
}

func Unauthorized(w http.ResponseWriter, message string) {
	respond(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	respond(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	respond(w, http.StatusNotFound, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	respond(w, http.StatusConflict, message, nil)
}

// ValidationError answers 422 with the individual problems as data.
func ValidationError(w http.ResponseWriter, message string, problems interface{}) {
	respond(w, http.StatusUnprocessableEntity, message, problems)
}

// InternalError logs err and answers 500 without leaking its text.
func InternalError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("request failed")
	respond(w, http.StatusInternalServerError, "Internal server error", nil)
}
