package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zapponejosh/ethiocal/internal/calendar"
)

// Error codes carried in ErrorInfo.Code.
const (
	CodeBadRequest           = "BAD_REQUEST"
	CodeNotFound             = "NOT_FOUND"
	CodeInternal             = "INTERNAL_ERROR"
	CodeInvalidInputType     = "INVALID_INPUT_TYPE"
	CodeInvalidEthiopianDate = "INVALID_ETHIOPIAN_DATE"
	CodeInvalidGregorianDate = "INVALID_GREGORIAN_DATE"
	CodeUnknownHoliday       = "UNKNOWN_HOLIDAY"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// calendarErrorStatus maps a calendar error to its HTTP status and code.
// The last result is false for errors that are not calendar input errors.
func calendarErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, calendar.ErrInvalidInputType):
		return http.StatusBadRequest, CodeInvalidInputType, true
	case errors.Is(err, calendar.ErrInvalidEthiopianDate):
		return http.StatusBadRequest, CodeInvalidEthiopianDate, true
	case errors.Is(err, calendar.ErrInvalidGregorianDate):
		return http.StatusBadRequest, CodeInvalidGregorianDate, true
	case errors.Is(err, calendar.ErrUnknownHoliday):
		return http.StatusNotFound, CodeUnknownHoliday, true
	default:
		return http.StatusInternalServerError, CodeInternal, false
	}
}
