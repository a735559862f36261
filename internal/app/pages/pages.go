// Package pages composes the views for each navigable page.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views"
)

// Deps is the per-visitor state a page needs at render time.
type Deps struct {
	Content     *content.Registry
	Testimonial int
	Forms       map[models.FormVariant]views.FormState
}

func (d Deps) form(v models.FormVariant) views.FormState {
	return d.Forms[v]
}

// Parse maps a page id to a Page. Ids match exactly; anything else,
// including a differently cased id, is the home page.
func Parse(id string) models.Page {
	p := models.Page(id)
	if !p.Known() {
		return models.PageHome
	}
	return p
}

var titles = map[models.Page]string{
	models.PageServices:     "Services",
	models.PagePortfolio:    "Portfolio",
	models.PageConfigurator: "Design Tool",
	models.PageAbout:        "About Us",
	models.PageContact:      "Contact",
}

// Title is the document title for p.
func Title(p models.Page, reg *content.Registry) string {
	name := reg.Company().Name
	if t, ok := titles[p]; ok {
		return t + " | " + name
	}
	return name + " | " + reg.Company().Tagline
}

// Sections returns the view nodes making up page p, in order.
func Sections(p models.Page, d Deps) []g.Node {
	reg := d.Content
	switch p {
	case models.PageServices:
		return []g.Node{
			views.ServicesSection(reg),
			views.TestimonialsSection(reg, d.Testimonial),
		}
	case models.PagePortfolio:
		return []g.Node{
			views.PortfolioSection(reg),
			views.InspiredCallToAction(),
		}
	case models.PageConfigurator:
		return []g.Node{views.DesignHelp()}
	case models.PageAbout:
		return []g.Node{
			views.AboutSection(reg),
			views.TestimonialsSection(reg, d.Testimonial),
		}
	case models.PageContact:
		return []g.Node{
			views.ContactSection(reg, models.VariantQuote, d.form(models.VariantQuote)),
		}
	default:
		return []g.Node{
			views.HeroSection(reg),
			views.ServicesSection(reg),
			views.PortfolioSection(reg),
			views.TestimonialsSection(reg, d.Testimonial),
			views.ContactSection(reg, models.VariantContact, d.form(models.VariantContact)),
		}
	}
}

// Compose renders the body of page p.
func Compose(p models.Page, d Deps) templ.Component {
	return views.Component(g.Group(Sections(p, d)))
}

// Shell is the #app fragment: header, page body and footer. It is what
// navigation swaps in.
func Shell(p models.Page, d Deps) templ.Component {
	return views.Component(views.App(d.Content, p, g.Group(Sections(p, d))))
}

// Document is the complete HTML page for p.
func Document(p models.Page, d Deps) templ.Component {
	layout := models.LayoutTempl{
		Title:       Title(p, d.Content),
		Description: d.Content.Company().Blurb,
		CurrentPage: p,
		Content:     Shell(p, d),
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return views.Document(ctx, layout).Render(w)
	})
}
