package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/tienda/pkg/logger"
	"github.com/dmitrymomot/tienda/pkg/requestid"
)

// ErrorParams is the data passed to the error fragment.
type ErrorParams struct {
	Type       string // "warning" for 4xx, "error" for 5xx
	StatusCode int
	Message    string
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorComponent renders the error fragment. When nil, plain-text
	// http.Error responses are written instead.
	ErrorComponent func(ErrorParams) templ.Component

	// Target is the selector DataStar error patches go to (default "#errors").
	Target string

	// Mode is the DataStar patch mode (default PatchPrepend).
	Mode datastar.ElementPatchMode
}

type errorInfo struct {
	status int
	key    string
}

func classifyError(err error) errorInfo {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return errorInfo{status: httpErr.Code, key: httpErr.Key}
	}
	return errorInfo{status: ErrInternalServerError.Code, key: ErrInternalServerError.Key}
}

func errorType(status int) string {
	if status < http.StatusInternalServerError {
		return "warning"
	}
	return "error"
}

func logLevel(status int) slog.Level {
	if status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler returns an ErrorHandler that logs the failure and answers
// with the error fragment: a status-coded HTML response for browsers and
// htmx, or a patch-elements event for DataStar.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Target == "" {
		cfg.Target = "#errors"
	}
	if cfg.Mode == "" {
		cfg.Mode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		info := classifyError(err)
		reqID := requestid.FromContext(r.Context())

		log.LogAttrs(r.Context(), logLevel(info.status), "request failed",
			logger.Error(err),
			logger.Status(info.status),
			logger.HTTPRequest(r.Method, r.URL.Path),
			slog.String("key", info.key),
			slog.Bool("datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		params := ErrorParams{
			Type:       errorType(info.status),
			StatusCode: info.status,
			Message:    http.StatusText(info.status),
			RequestID:  reqID,
		}

		if cfg.ErrorComponent == nil {
			http.Error(w, params.Message, info.status)
			return
		}

		var resp Response
		if IsDataStar(r) {
			resp = Templ(cfg.ErrorComponent(params), WithTarget(cfg.Target), WithPatchMode(cfg.Mode))
		} else {
			resp = TemplWithStatus(info.status, cfg.ErrorComponent(params))
		}
		if rerr := resp.Render(w, r); rerr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error fragment",
				logger.Error(rerr),
				logger.Component("error_handler"),
			)
		}
	}
}
