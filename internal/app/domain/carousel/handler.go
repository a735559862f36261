package carousel

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/app/domain"
	"github.com/FACorreiaa/northern-oak/internal/app/middleware"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/observability/metrics"
	"github.com/FACorreiaa/northern-oak/internal/app/views"
)

type Handler struct {
	*domain.BaseHandler
	registry *Registry
}

func NewHandler(base *domain.BaseHandler, registry *Registry) *Handler {
	return &Handler{BaseHandler: base, registry: registry}
}

// RecordChange is an observer that counts cursor moves by trigger.
func RecordChange(ch Change) {
	metrics.RecordCarouselAdvance(context.Background(), string(ch.Trigger))
}

// Stream keeps the visitor's carousel running for as long as the SSE
// connection is open and pushes a fresh slide after every move.
func (h *Handler) Stream(c *gin.Context) {
	sid := middleware.SessionID(c)
	ctx := c.Request.Context()

	car, err := h.registry.Get(sid)
	if err != nil {
		h.Logger.Error("Failed to create carousel", zap.String("session", sid), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	updates, unsubscribe := car.Subscribe()
	defer unsubscribe()

	if _, release, err := h.registry.Mount(sid); err == nil {
		defer func() {
			release()
			metrics.SetActiveCarousels(context.Background(), h.registry.Active())
		}()
	}
	metrics.SetActiveCarousels(ctx, h.registry.Active())

	h.Logger.Debug("Testimonial stream opened", zap.String("session", sid))

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, _ := c.Writer.(http.Flusher)
	send := func(idx int) {
		c.SSEvent(views.TestimonialEvent, h.slide(idx))
		if flusher != nil {
			flusher.Flush()
		}
	}

	send(car.Index())
	for {
		select {
		case idx, ok := <-updates:
			if !ok {
				return
			}
			h.registry.Touch(sid)
			send(idx)
		case <-ctx.Done():
			h.Logger.Debug("Testimonial stream closed", zap.String("session", sid))
			return
		}
	}
}

func (h *Handler) Next(c *gin.Context) {
	h.move(c, func(car *Carousel) (int, error) { return car.Next(), nil })
}

func (h *Handler) Previous(c *gin.Context) {
	h.move(c, func(car *Carousel) (int, error) { return car.Previous(), nil })
}

// Select jumps to the dot at :index. Anything outside the testimonial list
// is a 400 and leaves the carousel as it was.
func (h *Handler) Select(c *gin.Context) {
	k, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.badIndex(c, c.Param("index"), err)
		return
	}
	h.move(c, func(car *Carousel) (int, error) {
		if err := car.Select(k); err != nil {
			return 0, err
		}
		return k, nil
	})
}

func (h *Handler) move(c *gin.Context, op func(*Carousel) (int, error)) {
	sid := middleware.SessionID(c)
	car, err := h.registry.Get(sid)
	if err != nil {
		h.Logger.Error("Failed to create carousel", zap.String("session", sid), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	idx, err := op(car)
	if err != nil {
		h.badIndex(c, c.Param("index"), err)
		return
	}

	if !middleware.IsHTMX(c) {
		middleware.Redirect(c, "/")
		return
	}
	h.RenderNode(c, http.StatusOK, views.TestimonialSlide(h.Content.Testimonials(), idx))
}

func (h *Handler) badIndex(c *gin.Context, raw string, err error) {
	h.Logger.Info("Rejected testimonial selection", zap.String("index", raw), zap.Error(err))
	if !errors.Is(err, models.ErrIndexOutOfRange) {
		err = models.ErrBadRequest
	}
	c.String(http.StatusBadRequest, err.Error())
}

func (h *Handler) slide(idx int) string {
	var sb strings.Builder
	if err := views.TestimonialSlide(h.Content.Testimonials(), idx).Render(&sb); err != nil {
		h.Logger.Error("Failed to render testimonial", zap.Int("index", idx), zap.Error(err))
	}
	return sb.String()
}
