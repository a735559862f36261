package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/FACorreiaa/northern-oak/internal/app/domain"
	"github.com/FACorreiaa/northern-oak/internal/app/middleware"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/observability/metrics"
	"github.com/FACorreiaa/northern-oak/internal/app/pages"
	"github.com/FACorreiaa/northern-oak/internal/app/views"
)

type Handler struct {
	*domain.BaseHandler
	controller *Controller
}

func NewHandler(base *domain.BaseHandler, controller *Controller) *Handler {
	return &Handler{BaseHandler: base, controller: controller}
}

// Submit handles POST /contact?variant=. Validation failures answer 422 and
// delivery failures 502, both with the form re-rendered and its values kept.
func (h *Handler) Submit(c *gin.Context) {
	v := variant(c)
	ctx := c.Request.Context()

	if middleware.FormSubmitted(c, v) {
		h.respond(c, http.StatusOK, v, formState(Submitted(v)), nil)
		return
	}

	f := NewForm(v)
	if err := f.Edit(fieldsFrom(c)); err != nil {
		h.Logger.Error("Failed to edit form", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	out := h.controller.Submit(ctx, f)
	metrics.RecordFormSubmission(ctx, string(v), out.Label)

	status := http.StatusOK
	switch {
	case errors.Is(out.Err, models.ErrValidation):
		status = http.StatusUnprocessableEntity
	case out.Err != nil:
		status = http.StatusBadGateway
	default:
		if err := middleware.SetFormSubmitted(c, v, true); err != nil {
			h.Logger.Warn("Failed to remember submitted form", zap.String("variant", string(v)), zap.Error(err))
		}
	}

	h.respond(c, status, v, formState(f), &out.Notification)
}

// Reset is "send another": the confirmation is dropped and an empty form
// is shown again. A form that was never submitted is shown as it is.
func (h *Handler) Reset(c *gin.Context) {
	v := variant(c)
	f := NewForm(v)
	if middleware.FormSubmitted(c, v) {
		f = Submitted(v)
		if err := f.Reset(); err != nil {
			h.Logger.Error("Failed to reset form", zap.String("variant", string(v)), zap.Error(err))
		}
	}
	if f.State() == StateEditing {
		if err := middleware.SetFormSubmitted(c, v, false); err != nil {
			h.Logger.Warn("Failed to clear submitted form", zap.String("variant", string(v)), zap.Error(err))
		}
	}
	h.respond(c, http.StatusOK, v, formState(f), nil)
}

func formState(f *Form) views.FormState {
	return views.FormState{
		Fields:    f.Fields,
		Submitted: f.State() == StateSubmitted,
		CanSubmit: f.CanSubmit(),
	}
}

func (h *Handler) respond(c *gin.Context, status int, v models.FormVariant, st views.FormState, n *models.Notification) {
	if !middleware.IsHTMX(c) {
		if status == http.StatusOK {
			middleware.Redirect(c, "/")
			return
		}
		d := h.PageDeps(c)
		d.Forms[v] = st
		h.Render(c, status, pages.Document(h.CurrentPage(c), d))
		return
	}

	nodes := []g.Node{views.ContactSection(h.Content, v, st)}
	if n != nil && n.Message != "" {
		nodes = append(nodes, views.ToastOOB(*n))
	}
	h.RenderNode(c, status, g.Group(nodes))
}

func variant(c *gin.Context) models.FormVariant {
	if q := c.Query("variant"); q != "" {
		return models.ParseFormVariant(q)
	}
	return models.ParseFormVariant(c.PostForm("variant"))
}

func fieldsFrom(c *gin.Context) models.ContactFields {
	return models.ContactFields{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		ProjectType: c.PostForm("projectType"),
		Timeline:    c.PostForm("timeline"),
		Budget:      c.PostForm("budget"),
		Location:    c.PostForm("location"),
		Message:     c.PostForm("message"),
		Newsletter:  c.PostForm("newsletter") != "",
	}
}
