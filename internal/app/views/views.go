// Package views renders the site with gomponents. Every exported function
// returns a g.Node; Component adapts a node to templ.Component for
// handlers and the gin renderer.
package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

// Element ids targeted by htmx swaps.
const (
	AppID             = "app"
	ToastsID          = "toasts"
	PortfolioID       = "portfolio-browser"
	CarouselID        = "testimonial-carousel"
	NewsletterFieldID = "newsletter-email"
)

// Routes the views post to.
const (
	NavigatePath             = "/navigate"
	PortfolioProjectsPath    = "/portfolio/projects"
	TestimonialsStreamPath   = "/testimonials/stream"
	TestimonialsNextPath     = "/testimonials/next"
	TestimonialsPreviousPath = "/testimonials/previous"
	TestimonialsSelectPath   = "/testimonials/select/"
	ContactPath              = "/contact"
	ContactResetPath         = "/contact/reset"
	NewsletterPath           = "/newsletter"
	NewsletterFieldPath      = "/newsletter/field"
)

// TestimonialEvent is the SSE event name carrying carousel fragments.
const TestimonialEvent = "testimonial"

// Component adapts a gomponents node to templ.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// FromTempl embeds a templ component in a gomponents tree.
func FromTempl(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		if c == nil {
			return nil
		}
		return c.Render(ctx, w)
	})
}

// ContactID is the id of the swappable contact block for a variant.
func ContactID(v models.FormVariant) string { return "contact-" + string(v) }

func contactURL(path string, v models.FormVariant) string {
	return path + "?variant=" + string(v)
}

func selectURL(i int) string { return TestimonialsSelectPath + strconv.Itoa(i) }

func hxPost(url string) g.Node   { return g.Attr("hx-post", url) }
func hxGet(url string) g.Node    { return g.Attr("hx-get", url) }
func hxTarget(sel string) g.Node { return g.Attr("hx-target", sel) }
func hxSwap(s string) g.Node     { return g.Attr("hx-swap", s) }
func hxTrigger(s string) g.Node  { return g.Attr("hx-trigger", s) }

// icon renders a Lucide icon through Iconify.
func icon(name, class string) g.Node {
	return Span(
		Class("iconify inline-block "+class),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

func container(children ...g.Node) g.Node {
	return Div(Class("container mx-auto px-4"), g.Group(children))
}

func eyebrow(text string) g.Node {
	return Div(Class("text-amber-700 text-sm tracking-wide uppercase mb-4"), g.Text(text))
}

func sectionIntro(kicker, title, lead string) g.Node {
	return Div(Class("text-center max-w-3xl mx-auto mb-16"),
		eyebrow(kicker),
		H2(Class("text-3xl lg:text-5xl text-gray-900 mb-6"), g.Text(title)),
		P(Class("text-lg text-gray-600"), g.Text(lead)),
	)
}

func delayTrigger(ms int64) string { return fmt.Sprintf("load delay:%dms", ms) }
