package text

import (
	"errors"
	"log/slog"
	"net/http"

	"text-api/internal/domain/entity"
	"text-api/internal/handler/http/respond"
	"text-api/internal/observability/logging"
	"text-api/internal/observability/metrics"
	textUC "text-api/internal/usecase/text"
)

// ProcessHandler counts words.
type ProcessHandler struct{ Svc *textUC.Service }

// ServeHTTP godoc
// @Summary      Count words
// @Description  Returns the submitted text together with its word count. Words are runs of non-whitespace characters.
// @Tags         text
// @Accept       json
// @Produce      json
// @Param        request body TextRequest true "Text to analyze"
// @Success      200 {object} ProcessResponse
// @Failure      400 {object} respond.ErrorResponse "Malformed JSON"
// @Failure      413 {object} respond.ErrorResponse "Request body too large"
// @Failure      415 {object} respond.ErrorResponse "Content-Type is not application/json"
// @Failure      422 {object} respond.ErrorResponse "Missing text field"
// @Failure      429 {object} respond.ErrorResponse "Rate limit exceeded"
// @Router       /process [post]
func (h ProcessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeOrReject(w, r, metrics.OperationProcess)
	if !ok {
		return
	}

	res := h.Svc.Process(r.Context(), in)
	respond.JSON(w, http.StatusOK, ProcessResponse{
		Text:      res.Text,
		WordCount: res.WordCount,
	})
}

// StatsHandler reports word, character and unique word counts.
type StatsHandler struct{ Svc *textUC.Service }

// ServeHTTP godoc
// @Summary      Text statistics
// @Description  Returns word count, character count (Unicode code points) and the number of distinct words. Words are compared case-insensitively with leading and trailing punctuation removed.
// @Tags         text
// @Accept       json
// @Produce      json
// @Param        request body TextRequest true "Text to analyze"
// @Success      200 {object} StatsResponse
// @Failure      400 {object} respond.ErrorResponse "Malformed JSON"
// @Failure      413 {object} respond.ErrorResponse "Request body too large"
// @Failure      415 {object} respond.ErrorResponse "Content-Type is not application/json"
// @Failure      422 {object} respond.ErrorResponse "Missing text field"
// @Failure      429 {object} respond.ErrorResponse "Rate limit exceeded"
// @Router       /stats [post]
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeOrReject(w, r, metrics.OperationStats)
	if !ok {
		return
	}

	res := h.Svc.Stats(r.Context(), in)
	respond.JSON(w, http.StatusOK, StatsResponse{
		Text:        res.Text,
		WordCount:   res.WordCount,
		CharCount:   res.CharCount,
		UniqueWords: res.UniqueWords,
	})
}

// UppercaseHandler converts text to uppercase.
type UppercaseHandler struct{ Svc *textUC.Service }

// ServeHTTP godoc
// @Summary      Convert to uppercase
// @Description  Returns the original text, its uppercase form and the character count of the original. Blank input is rejected.
// @Tags         text
// @Accept       json
// @Produce      json
// @Param        request body TextRequest true "Text to convert"
// @Success      200 {object} UppercaseResponse
// @Failure      400 {object} respond.ErrorResponse "Malformed JSON"
// @Failure      413 {object} respond.ErrorResponse "Request body too large"
// @Failure      415 {object} respond.ErrorResponse "Content-Type is not application/json"
// @Failure      422 {object} respond.ErrorResponse "Missing or blank text"
// @Failure      429 {object} respond.ErrorResponse "Rate limit exceeded"
// @Router       /uppercase [post]
func (h UppercaseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeOrReject(w, r, metrics.OperationUppercase)
	if !ok {
		return
	}

	res, err := h.Svc.Uppercase(r.Context(), in)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyInput) {
			respond.SafeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, UppercaseResponse{
		OriginalText:  res.OriginalText,
		UppercaseText: res.UppercaseText,
		Length:        res.Length,
	})
}

// decodeOrReject decodes the request body and writes the error response
// itself when decoding fails.
func decodeOrReject(w http.ResponseWriter, r *http.Request, operation string) (entity.TextInput, bool) {
	in, err := decodeTextInput(r)
	if err == nil {
		return in, true
	}

	reason := "invalid"
	var appErr *respond.AppError
	if errors.As(err, &appErr) {
		reason = rejectReason(appErr)
	}

	metrics.RecordValidationFailure(operation, reason)
	logging.FromContext(r.Context()).Debug("rejected text request",
		slog.String("operation", operation),
		slog.String("reason", reason),
	)
	respond.SafeAppError(w, http.StatusBadRequest, err)
	return entity.TextInput{}, false
}
