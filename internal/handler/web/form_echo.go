package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"HousePrice/internal/domain/models"
	"HousePrice/internal/form"
	"HousePrice/internal/usecase"
	xhttp "HousePrice/pkg/http"
	xlogger "HousePrice/pkg/logger"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

type fieldHint struct {
	Step, Min, Max, Placeholder string
}

var hints = map[models.Field]fieldHint{
	models.FieldBedrooms:   {"1", "1", "10", "e.g. 3"},
	models.FieldBathrooms:  {"0.5", "0.5", "10", "e.g. 2"},
	models.FieldSqftLiving: {"1", "100", "20000", "e.g. 2000"},
	models.FieldFloors:     {"1", "1", "5", "e.g. 2"},
	models.FieldAge:        {"1", "0", "200", "e.g. 10"},
}

type fieldView struct {
	Name  models.Field
	Label string
	Value string
	fieldHint
}

type pageView struct {
	Live   bool
	State  form.State
	Fields []fieldView
}

// Renderer renders the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// FormEchoHandler serves the estimate form page.
type FormEchoHandler struct {
	logger    *xlogger.Logger
	estimator *usecase.Estimator
	renderer  *Renderer
}

func NewFormEchoHandler(logger *xlogger.Logger, estimator *usecase.Estimator, renderer *Renderer) *FormEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &FormEchoHandler{logger: logger.Component("web"), estimator: estimator, renderer: renderer}
}

func (h *FormEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.Renderer = h.renderer
	e.GET("/", h.Index)
	e.POST("/predict", h.Predict)
	e.POST("/field", h.Field)
	e.POST("/reset", h.Reset)
	e.GET("/healthz", h.Healthz)
}

func (h *FormEchoHandler) Index(c echo.Context) error {
	return h.respond(c, h.estimator.State())
}

// Predict stores the posted fields and submits them. Validation and
// prediction failures are part of the rendered state, not HTTP errors.
func (h *FormEchoHandler) Predict(c echo.Context) error {
	in := readInput(c)
	h.estimator.Fill(in)

	st, err := h.estimator.Submit(c.Request().Context())
	var verr *form.ValidationError
	switch {
	case errors.Is(err, usecase.ErrStale):
		st = h.estimator.State()
	case err != nil && !errors.As(err, &verr):
		h.logger.Warn("submit failed", xlogger.Error(err))
	}
	return h.respond(c, st)
}

func (h *FormEchoHandler) Field(c echo.Context) error {
	field := models.Field(c.FormValue("field"))
	if err := h.estimator.Edit(field, c.FormValue("value")); err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("Unknown field: %s", field).WithError(err))
	}
	return h.respond(c, h.estimator.State())
}

func (h *FormEchoHandler) Reset(c echo.Context) error {
	h.estimator.Reset()
	if wantsJSON(c) {
		return xhttp.SuccessResponse(c, h.estimator.State())
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *FormEchoHandler) Healthz(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status": "ok",
		"live":   h.estimator.Live(),
	})
}

func (h *FormEchoHandler) respond(c echo.Context, st form.State) error {
	if wantsJSON(c) {
		return xhttp.SuccessResponse(c, st)
	}
	return c.Render(http.StatusOK, "index.html", h.view(st))
}

func (h *FormEchoHandler) view(st form.State) pageView {
	fields := make([]fieldView, 0, len(models.Fields))
	for _, f := range models.Fields {
		fields = append(fields, fieldView{
			Name:      f,
			Label:     form.Label(f),
			Value:     st.Input.Get(f),
			fieldHint: hints[f],
		})
	}
	return pageView{Live: h.estimator.Live(), State: st, Fields: fields}
}

func readInput(c echo.Context) models.FormInput {
	var in models.FormInput
	for _, f := range models.Fields {
		_ = in.Set(f, c.FormValue(string(f)))
	}
	return in
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
