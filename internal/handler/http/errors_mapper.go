package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

// errorStatuses maps sentinels to HTTP statuses. Order matters: the first
// entry matched by errors.Is decides both the status and the public message,
// so more specific sentinels come before the generic ones.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrForeignTaskOwner, http.StatusForbidden},
	{service.ErrTaskNotFound, http.StatusNotFound},

	{service.ErrEmailAlreadyExists, http.StatusBadRequest},
	{service.ErrUsernameAlreadyExists, http.StatusBadRequest},
	{service.ErrUserAlreadyExists, http.StatusBadRequest},

	{service.ErrInvalidTaskStatus, http.StatusBadRequest},
	{service.ErrUnknownTaskOwner, http.StatusBadRequest},
	{service.ErrNoUpdateFieldsProvided, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidTaskID, http.StatusBadRequest},
}

// matchSentinel returns the first entry of errorStatuses wrapped by err.
func matchSentinel(err error) (error, int, bool) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.err, entry.status, true
		}
	}
	return nil, 0, false
}

func statusFromError(err error) int {
	if _, status, ok := matchSentinel(err); ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError renders err as the JSON error body. Server-side failures are
// logged in full and reported as a generic message; client errors expose the
// sentinel message and any field violations.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed with internal error")
		utils.WriteError(w, status, http.StatusText(status))
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteError(w, status, publicMessage(err), validationErr.Violations...)
		return
	}

	utils.WriteError(w, status, publicMessage(err))
}

// publicMessage returns the message of the first known sentinel wrapped by
// err, so storage details never reach the client.
func publicMessage(err error) string {
	if sentinel, _, ok := matchSentinel(err); ok {
		return sentinel.Error()
	}
	return err.Error()
}
