// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a backend response into an error. 2xx responses map
// to nil; everything else becomes an [*APIError] carrying the status code and
// the message normalized from the body by normalizeErrorBody.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    normalizeErrorBody(resp.StatusCode(), resp.Body()),
	}
}

// normalizeErrorBody reduces the backend's heterogeneous error payloads to a
// single displayable string. It never fails: a body that cannot be parsed as
// a JSON object is treated as absent.
//
// Recognized shapes, in priority order:
//  1. 422 with a `detail` array of validation objects — the `msg` field of
//     each entry is collected (entries without one are skipped) and the
//     survivors joined with ", ".
//  2. A string `detail` field.
//  3. String `message`, `error`, or `msg` fields, first present wins.
//  4. Fallback: "Error: <status>".
func normalizeErrorBody(status int, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		payload = nil
	}

	if status == http.StatusUnprocessableEntity {
		if details, ok := payload["detail"].([]any); ok {
			if msg := joinValidationMessages(details); msg != "" {
				return msg
			}
		}
	}

	if detail, ok := payload["detail"].(string); ok {
		return detail
	}
	for _, field := range []string{"message", "error", "msg"} {
		if value, ok := payload[field].(string); ok {
			return value
		}
	}

	return fmt.Sprintf("Error: %d", status)
}

func joinValidationMessages(details []any) string {
	messages := make([]string, 0, len(details))
	for _, entry := range details {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if msg, ok := obj["msg"].(string); ok {
			messages = append(messages, msg)
		}
	}

	return strings.Join(messages, ", ")
}

// mapTransportError classifies a request-level failure (the request never
// produced a response). Connection-type errors collapse into
// [ErrServerUnreachable] with a fixed message; anything else passes through
// untouched so its own message stays visible.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, urlErr.Err)
	}

	return err
}
