package newsletter

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/northern-oak/internal/app/domain"
	"github.com/FACorreiaa/northern-oak/internal/app/middleware"
	"github.com/FACorreiaa/northern-oak/internal/app/observability/metrics"
	"github.com/FACorreiaa/northern-oak/internal/app/views"
)

type Handler struct {
	*domain.BaseHandler
	service *Service
	ack     time.Duration
}

// NewHandler shows the thank-you placeholder for ack after each signup.
func NewHandler(base *domain.BaseHandler, service *Service, ack time.Duration) *Handler {
	return &Handler{BaseHandler: base, service: service, ack: ack}
}

func (h *Handler) Subscribe(c *gin.Context) {
	res := h.service.Subscribe(c.Request.Context(), c.PostForm("email"))
	metrics.RecordNewsletterSignup(c.Request.Context(), string(res))

	if !middleware.IsHTMX(c) {
		middleware.Redirect(c, "/")
		return
	}
	if res == ResultEmpty {
		h.RenderNode(c, http.StatusOK, views.NewsletterField(0))
		return
	}
	h.RenderNode(c, http.StatusOK, views.NewsletterField(h.ack))
}

// Field is polled once the acknowledgement has been shown and puts the
// normal placeholder back.
func (h *Handler) Field(c *gin.Context) {
	h.RenderNode(c, http.StatusOK, views.NewsletterField(0))
}
