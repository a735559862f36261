package domain

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/middleware"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/observability/metrics"
	"github.com/FACorreiaa/northern-oak/internal/app/pages"
	"github.com/FACorreiaa/northern-oak/internal/app/renderer"
	"github.com/FACorreiaa/northern-oak/internal/app/views"
)

// TestimonialCursor reports where a visitor's carousel currently is.
type TestimonialCursor interface {
	Cursor(sessionID string) int
}

type BaseHandler struct {
	Logger  *zap.Logger
	Content *content.Registry
	Cursor  TestimonialCursor
}

func NewBaseHandler(logger *zap.Logger, reg *content.Registry, cursor TestimonialCursor) *BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseHandler{Logger: logger, Content: reg, Cursor: cursor}
}

// CurrentPage is the page stored in the visitor's session.
func (h *BaseHandler) CurrentPage(c *gin.Context) models.Page {
	return pages.Parse(middleware.StoredPage(c))
}

// PageDeps gathers the visitor state the page compositions read.
func (h *BaseHandler) PageDeps(c *gin.Context) pages.Deps {
	d := pages.Deps{
		Content: h.Content,
		Forms:   make(map[models.FormVariant]views.FormState, 2),
	}
	if h.Cursor != nil {
		d.Testimonial = h.Cursor.Cursor(middleware.SessionID(c))
	}
	for _, v := range []models.FormVariant{models.VariantContact, models.VariantQuote} {
		d.Forms[v] = views.FormState{Submitted: middleware.FormSubmitted(c, v)}
	}
	return d
}

// Render writes component with status and records how long it took.
func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	start := time.Now()
	if err := renderer.New(c.Request.Context(), status, component).Render(c.Writer); err != nil {
		h.Logger.Error("Failed to render component",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		return
	}
	metrics.Get().TemplateRenderDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("route", routeLabel(c))))
}

// RenderNode is Render for a gomponents node.
func (h *BaseHandler) RenderNode(c *gin.Context, status int, n g.Node) {
	h.Render(c, status, views.Component(n))
}

// RenderPage renders page p: the #app shell for htmx requests, the full
// document otherwise.
func (h *BaseHandler) RenderPage(c *gin.Context, p models.Page) {
	d := h.PageDeps(c)
	metrics.RecordPageView(c.Request.Context(), p.String())
	if middleware.IsHTMX(c) {
		h.Render(c, http.StatusOK, pages.Shell(p, d))
		return
	}
	h.Render(c, http.StatusOK, pages.Document(p, d))
}

func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
