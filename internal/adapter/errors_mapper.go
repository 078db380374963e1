package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return statusError(resp.StatusCode(), resp.Body())
}

func mapRawHTTPError(status int, body io.Reader) error {
	payload, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return fmt.Errorf("http %d: read body: %w", status, err)
	}

	return statusError(status, payload)
}

// statusError turns an error response into a sentinel error. A 422 body of
// the form {"errors":{...}} becomes [validators.FieldErrors].
func statusError(status int, body []byte) error {
	if status == http.StatusUnprocessableEntity {
		var payload struct {
			Errors validators.FieldErrors `json:"errors"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
			return payload.Errors
		}
	}

	message := responseMessage(status, body)
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}

	return fmt.Errorf("http %d: %s", status, message)
}

func responseMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return http.StatusText(status)
}
