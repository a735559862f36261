// Package renderer plugs templ components into gin's HTML rendering.
package renderer

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin/render"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// HTMLTemplRenderer renders templ components passed to c.HTML and hands
// anything else to the fallback renderer.
type HTMLTemplRenderer struct {
	FallbackHTMLRenderer render.HTMLRender
}

func (r *HTMLTemplRenderer) Instance(name string, data any) render.Render {
	component, ok := data.(templ.Component)
	if !ok {
		if r.FallbackHTMLRenderer != nil {
			return r.FallbackHTMLRenderer.Instance(name, data)
		}
		return &Renderer{Ctx: context.Background(), Status: -1}
	}
	return &Renderer{
		Ctx:       context.Background(),
		Status:    -1,
		Component: component,
	}
}

// New returns a Renderer for use outside c.HTML. A status of -1 leaves the
// status line to the caller.
func New(ctx context.Context, status int, component templ.Component) *Renderer {
	return &Renderer{Ctx: ctx, Status: status, Component: component}
}

type Renderer struct {
	Ctx       context.Context
	Status    int
	Component templ.Component
}

func (t Renderer) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	if t.Status != -1 {
		w.WriteHeader(t.Status)
	}
	if t.Component == nil {
		return nil
	}
	return t.Component.Render(t.Ctx, w)
}

func (t Renderer) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
