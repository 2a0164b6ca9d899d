package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	switch {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case code == http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, msg)
	default:
		return fmt.Errorf("http %d: %s", code, msg)
	}
}

// errorMessage extracts the "error" field of an API error body together with
// any field violations. Non-JSON bodies are returned as is.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var apiErr models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &apiErr); err != nil || apiErr.Error == "" {
		if body == "" {
			return http.StatusText(resp.StatusCode())
		}
		return body
	}

	if len(apiErr.Errors) == 0 {
		return apiErr.Error
	}

	violations := make([]string, 0, len(apiErr.Errors))
	for _, v := range apiErr.Errors {
		violations = append(violations, v.Field+": "+v.Message)
	}
	return apiErr.Error + " (" + strings.Join(violations, "; ") + ")"
}
