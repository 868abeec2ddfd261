package text

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"text-api/internal/domain/entity"
	"text-api/internal/handler/http/respond"
)

// wireRequest distinguishes an absent or null "text" from an empty string.
type wireRequest struct {
	Text *string `json:"text"`
}

// decodeTextInput reads a {"text": "..."} body. Unknown fields are ignored.
//
//   - body over the size limit             -> 413
//   - malformed JSON or trailing data      -> 400
//   - non-object body or non-string text   -> 422
//   - empty body, missing or null text     -> 422 (*entity.ValidationError)
//
// Failures are returned as *respond.AppError carrying status and client message.
func decodeTextInput(r *http.Request) (entity.TextInput, error) {
	dec := json.NewDecoder(r.Body)

	var req wireRequest
	if err := dec.Decode(&req); err != nil {
		return entity.TextInput{}, classifyDecodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return entity.TextInput{}, classifyDecodeError(err)
		}
		return entity.TextInput{}, respond.NewAppError(http.StatusBadRequest,
			"invalid JSON: unexpected data after request object", err)
	}

	if err := entity.ValidateRequired("text", req.Text); err != nil {
		return entity.TextInput{}, respond.NewAppError(http.StatusUnprocessableEntity, err.Error(), err)
	}
	return entity.NewTextInput(*req.Text), nil
}

func classifyDecodeError(err error) *respond.AppError {
	var (
		maxErr    *http.MaxBytesError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxErr):
		return respond.NewAppError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body too large: limit is %d bytes", maxErr.Limit), err)
	case errors.Is(err, io.EOF):
		verr := entity.ValidateRequired("text", nil)
		return respond.NewAppError(http.StatusUnprocessableEntity, verr.Error(), verr)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return respond.NewAppError(http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return respond.NewAppError(http.StatusUnprocessableEntity, "request body must be a JSON object", err)
		}
		verr := &entity.ValidationError{Field: typeErr.Field, Message: "must be a string"}
		return respond.NewAppError(http.StatusUnprocessableEntity, verr.Error(), verr)
	default:
		return respond.NewAppError(http.StatusBadRequest, "invalid request body: "+err.Error(), err)
	}
}

// rejectReason maps a decode failure to its metrics label.
func rejectReason(appErr *respond.AppError) string {
	switch {
	case appErr.Code == http.StatusRequestEntityTooLarge:
		return "too_large"
	case appErr.Code == http.StatusBadRequest:
		return "malformed"
	case errors.Is(appErr, entity.ErrMissingField):
		return "missing"
	default:
		return "invalid"
	}
}
