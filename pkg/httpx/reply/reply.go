package reply

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"cancer_api/pkg/apperr"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/errcodes"
	"cancer_api/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code apperr.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

func (e *errorResponse) WithDefaultMessage(message string) {
	if e.Message == "" {
		e.Message = message
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// HTML renders tmpl into a buffer first so that a template failure still
// produces a well-formed 500 instead of a half written page.
func HTML(ctx context.Context, w http.ResponseWriter, statusCode int, tmpl *template.Template, data any) {
	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		logger(ctx).Error("template.Execute", logx.Error(err))
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := w.Write(buf.Bytes()); err != nil {
		logger(ctx).Error("w.Write", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Code:      apperr.Code(err).String(),
		Message:   apperr.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case apperr.IsInvalidArgumentError(err):
		logger(ctx).Warn("invalid argument", logx.Error(err))
		response.WithDefaultCode(errcodes.ValidationError)
		response.WithDefaultMessage("Invalid request")
		JSON(ctx, w, http.StatusBadRequest, response)
	case apperr.IsNotFoundError(err):
		logger(ctx).Warn("not found", logx.Error(err))
		response.WithDefaultCode(errcodes.NotFound)
		response.WithDefaultMessage("Not found")
		JSON(ctx, w, http.StatusNotFound, response)
	case apperr.IsUnavailableError(err):
		logger(ctx).Error("unavailable", logx.Error(err))
		response.WithDefaultCode(errcodes.ServiceUnavailable)
		response.WithDefaultMessage("Service unavailable")
		JSON(ctx, w, http.StatusServiceUnavailable, response)
	default:
		logger(ctx).Error("error", logx.Error(err))
		// Internal details never leave the process.
		response.Code = errcodes.InternalServerError.String()
		response.WithDefaultMessage("Internal server error")
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
