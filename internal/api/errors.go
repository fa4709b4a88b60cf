package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shapeworks/geometry-service/core"
	"github.com/shapeworks/geometry-service/internal/logging"
)

// errBadRequest is the boundary-level sentinel for malformed request
// payloads (undecodable JSON, missing required fields, unknown enum
// values).
var errBadRequest = errors.New("bad request")

// statusForError maps engine and boundary errors onto HTTP status codes.
// Engine sentinels all describe invalid caller input; anything unrecognised
// is treated as an internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, core.ErrInvalidTriangle),
		errors.Is(err, core.ErrDegenerateTriangle),
		errors.Is(err, core.ErrTooFewVertices),
		errors.Is(err, core.ErrUnsupportedShape),
		errors.Is(err, core.ErrEmptyCollection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, log logging.Logger, err error) {
	status := statusForError(err)

	if status >= http.StatusInternalServerError {
		log.Error(ctx, "request failed", logging.Err(err))
	} else {
		log.Debug(ctx, "request rejected", logging.Err(err))
	}

	writeJSON(ctx, w, log, status, errorResponse{Error: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, log logging.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn(ctx, "failed to encode response", logging.Err(err))
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed body: %v", errBadRequest, err)
	}
	return nil
}
