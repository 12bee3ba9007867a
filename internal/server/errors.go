package server

import (
	"embed"
	"html/template"
	"net/http"

	"cancer_api/pkg/apperr"
	"cancer_api/pkg/contextx"
	"cancer_api/pkg/errcodes"
	"cancer_api/pkg/httpx/reply"
)

//go:embed templates/*.html
var templates embed.FS

//nolint:gochecknoglobals
var notFoundPage = template.Must(template.ParseFS(templates, "templates/404.html"))

type notFoundData struct {
	AppName string
	Path    string
	TraceID string
}

func notFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := notFoundData{
		AppName: "cancer-api",
		Path:    r.URL.Path,
	}

	if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
		data.TraceID = traceID.String()
	}

	reply.HTML(ctx, w, http.StatusNotFound, notFoundPage, data)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	reply.JSON(r.Context(), w, http.StatusMethodNotAllowed, map[string]string{
		"code":      errcodes.MethodNotAllowed.String(),
		"message":   r.Method + " is not allowed here",
		"supportId": supportID(r),
	})
}

func supportID(r *http.Request) string {
	traceID, err := contextx.TraceIDFromContext(r.Context())
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}

func errInvalidID(id string) error {
	return apperr.NewInvalidArgumentError(
		"invalid prediction id "+id,
		apperr.WithCode(errcodes.ValidationError),
		apperr.WithDescription("Prediction id is malformed"),
	)
}
