package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return v
}

func TestSiteHeader(t *testing.T) {
	reg := content.MustLoad()

	t.Run("only the current page is highlighted", func(t *testing.T) {
		doc := render(t, SiteHeader(reg, models.PagePortfolio))

		current := doc.Find("#desktop-nav [aria-current=page]")
		require.Equal(t, 1, current.Length())
		assert.Equal(t, "Portfolio", strings.TrimSpace(current.Text()))
		assert.Contains(t, attr(current, "class"), "text-amber-800")
	})

	t.Run("configurator highlights nothing in the header", func(t *testing.T) {
		doc := render(t, SiteHeader(reg, models.PageConfigurator))
		assert.Equal(t, 0, doc.Find("#desktop-nav [aria-current=page]").Length())
	})

	t.Run("every nav item posts its page id", func(t *testing.T) {
		doc := render(t, SiteHeader(reg, models.PageHome))

		var pages []string
		doc.Find("#desktop-nav form").Each(func(_ int, s *goquery.Selection) {
			assert.Equal(t, NavigatePath, attr(s, "action"))
			assert.Equal(t, "#app", attr(s, "hx-target"))
			pages = append(pages, attr(s.Find("input[name=page]"), "value"))
		})
		assert.Equal(t, []string{"home", "services", "portfolio", "about", "contact"}, pages)
	})
}

func TestSiteFooter(t *testing.T) {
	reg := content.MustLoad()
	doc := render(t, SiteFooter(reg, 2031))

	assert.Equal(t, 6, doc.Find("#footer-nav form").Length())
	assert.Contains(t, doc.Text(), "© 2031 Northern Oak Joinery. All rights reserved.")

	field := doc.Find("#" + NewsletterFieldID)
	assert.Equal(t, NewsletterPlaceholder, attr(field, "placeholder"))
	_, polls := field.Attr("hx-get")
	assert.False(t, polls, "a fresh field does not poll")
}

func TestNewsletterField(t *testing.T) {
	doc := render(t, NewsletterField(3*time.Second))
	field := doc.Find("#" + NewsletterFieldID)

	assert.Equal(t, NewsletterAcknowledged, attr(field, "placeholder"))
	assert.Equal(t, "", attr(field, "value"))
	assert.Equal(t, NewsletterFieldPath, attr(field, "hx-get"))
	assert.Equal(t, "load delay:3000ms", attr(field, "hx-trigger"))
}

func TestPortfolioBrowser(t *testing.T) {
	reg := content.MustLoad()

	t.Run("filtered grid and selected tab", func(t *testing.T) {
		doc := render(t, PortfolioBrowser(reg, "roof-trusses"))

		cards := doc.Find("#portfolio-grid article")
		require.Equal(t, 2, cards.Length())
		cards.Each(func(_ int, s *goquery.Selection) {
			assert.Equal(t, "roof-trusses", attr(s, "data-category"))
		})

		selected := doc.Find("[role=tab][aria-selected=true]")
		require.Equal(t, 1, selected.Length())
		assert.Equal(t, "Roof Trusses", strings.TrimSpace(selected.Text()))
		assert.Equal(t, PortfolioProjectsPath+"?category=roof-trusses", attr(selected, "hx-get"))
	})

	t.Run("all shows every project", func(t *testing.T) {
		doc := render(t, PortfolioBrowser(reg, models.CategoryAll))
		assert.Equal(t, "5", attr(doc.Find("#portfolio-grid"), "data-count"))
	})

	t.Run("unknown category renders an empty grid", func(t *testing.T) {
		doc := render(t, PortfolioBrowser(reg, "treehouses"))
		assert.Equal(t, 0, doc.Find("#portfolio-grid article").Length())
		assert.Contains(t, doc.Text(), "No projects in this category yet.")
	})
}

func TestTestimonialSlide(t *testing.T) {
	reg := content.MustLoad()
	ts := reg.Testimonials()

	tests := []struct {
		name  string
		index int
		want  int
	}{
		{name: "first", index: 0, want: 0},
		{name: "last", index: 4, want: 4},
		{name: "past the end wraps", index: 5, want: 0},
		{name: "negative wraps", index: -1, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, TestimonialSlide(ts, tt.index))

			card := doc.Find("#testimonial-card")
			assert.Contains(t, card.Text(), ts[tt.want].Name)

			dots := doc.Find("#testimonial-dots button")
			require.Equal(t, len(ts), dots.Length())
			active := doc.Find("#testimonial-dots [aria-current=true]")
			require.Equal(t, 1, active.Length())
			assert.Equal(t, tt.want, dots.IndexOfSelection(active))
		})
	}

	t.Run("controls post to the carousel routes", func(t *testing.T) {
		doc := render(t, TestimonialSlide(ts, 0))
		var actions []string
		doc.Find("form").Each(func(_ int, s *goquery.Selection) {
			actions = append(actions, attr(s, "action"))
			assert.Equal(t, "#"+CarouselID, attr(s, "hx-target"))
		})
		assert.Contains(t, actions, TestimonialsNextPath)
		assert.Contains(t, actions, TestimonialsPreviousPath)
		assert.Contains(t, actions, TestimonialsSelectPath+"3")
	})

	t.Run("no testimonials renders nothing", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, TestimonialSlide(nil, 0).Render(&sb))
		assert.Empty(t, sb.String())
	})
}

func TestTestimonialsSectionStreams(t *testing.T) {
	doc := render(t, TestimonialsSection(content.MustLoad(), 2))

	stream := doc.Find("[sse-connect]")
	assert.Equal(t, TestimonialsStreamPath, attr(stream, "sse-connect"))
	assert.Equal(t, TestimonialEvent, attr(doc.Find("#"+CarouselID), "sse-swap"))
	assert.Equal(t, "2", attr(doc.Find("#testimonial-card"), "data-index"))
}

func TestContactSection(t *testing.T) {
	reg := content.MustLoad()

	t.Run("empty contact form has a disabled submit and no quote fields", func(t *testing.T) {
		doc := render(t, ContactSection(reg, models.VariantContact, FormState{}))

		root := doc.Find("#contact-contact")
		assert.Equal(t, "editing", attr(root, "data-state"))
		_, disabled := doc.Find("button[type=submit]").Attr("disabled")
		assert.True(t, disabled)
		assert.Equal(t, 0, doc.Find("select[name=projectType]").Length())
		assert.Equal(t, ContactPath+"?variant=contact", attr(doc.Find("form"), "hx-post"))
		assert.Contains(t, doc.Find("h3").Text(), "Send us a Message")
	})

	t.Run("quote form offers project options and keeps values", func(t *testing.T) {
		st := FormState{
			Fields:    models.ContactFields{Name: "Jane Doe", ProjectType: "Bespoke Joinery", Newsletter: true},
			CanSubmit: true,
		}
		doc := render(t, ContactSection(reg, models.VariantQuote, st))

		sel := doc.Find("select[name=projectType]")
		require.Equal(t, 1, sel.Length())
		_, required := sel.Attr("required")
		assert.True(t, required)
		assert.Equal(t, "Bespoke Joinery", sel.Find("option[selected]").Text())
		assert.Equal(t, "Jane Doe", attr(doc.Find("input[name=name]"), "value"))
		_, checked := doc.Find("input[name=newsletter]").Attr("checked")
		assert.True(t, checked)
		_, disabled := doc.Find("button[type=submit]").Attr("disabled")
		assert.False(t, disabled)
		assert.Contains(t, doc.Text(), "Project Description *")
	})

	t.Run("submitted form shows the confirmation", func(t *testing.T) {
		doc := render(t, ContactSection(reg, models.VariantQuote, FormState{Submitted: true}))

		root := doc.Find("#contact-quote")
		assert.Equal(t, "submitted", attr(root, "data-state"))
		assert.Contains(t, root.Text(), "Quote Request Submitted!")
		assert.Equal(t, ContactResetPath+"?variant=quote", attr(root.Find("form"), "action"))
		assert.Contains(t, root.Text(), "Send Another Quote Request")
		assert.Equal(t, 0, doc.Find("input[name=name]").Length())
	})
}

func TestToastOOB(t *testing.T) {
	doc := render(t, ToastOOB(models.Notification{Kind: models.NotifyError, Message: "Nope"}))

	region := doc.Find("#" + ToastsID)
	assert.Equal(t, "beforeend", attr(region, "hx-swap-oob"))
	assert.Equal(t, "error", attr(region.Find(".toast"), "data-kind"))
	assert.Contains(t, region.Text(), "Nope")
}

func TestDocument(t *testing.T) {
	reg := content.MustLoad()
	body := Component(App(reg, models.PageAbout, AboutSection(reg)))

	doc := render(t, Document(context.Background(), models.LayoutTempl{
		Title:       "About Us | Northern Oak Joinery",
		CurrentPage: models.PageAbout,
		Content:     body,
	}))

	assert.Equal(t, "About Us | Northern Oak Joinery", doc.Find("title").Text())
	assert.Equal(t, "about", attr(doc.Find("#app"), "data-page"))
	assert.Equal(t, 1, doc.Find("#our-story strong").Length())
	assert.Equal(t, 1, doc.Find("#"+ToastsID).Length())
	assert.Equal(t, 1, doc.Find("script[src*='htmx-ext-sse']").Length())
}
