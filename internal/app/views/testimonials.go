package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

// TestimonialsSection renders the carousel at index. While the section is
// on screen it holds an SSE connection that pushes each auto-advance.
func TestimonialsSection(reg *content.Registry, index int) g.Node {
	return Section(ID("testimonials"), Class("py-20 bg-white"),
		container(
			sectionIntro("Client Testimonials",
				"What Our Clients Say",
				"Don't just take our word for it. Here's what our satisfied clients have to say "+
					"about working with Northern Oak Joinery."),

			Div(Class("max-w-4xl mx-auto mb-12"),
				g.Attr("hx-ext", "sse"),
				g.Attr("sse-connect", TestimonialsStreamPath),
				Div(ID(CarouselID), g.Attr("sse-swap", TestimonialEvent), hxSwap("innerHTML"),
					TestimonialSlide(reg.Testimonials(), index),
				),
			),

			Div(ID("testimonial-stats"), Class("grid grid-cols-2 lg:grid-cols-4 gap-8 bg-gray-50 rounded-2xl p-8"),
				g.Map(reg.TestimonialStats(), func(s models.Stat) g.Node {
					return statCell(s, "text-3xl text-amber-700 mb-2")
				}),
			),

			Div(Class("text-center mt-12"),
				H3(Class("text-2xl text-gray-900 mb-4"), g.Text("Ready to join our satisfied clients?")),
				P(Class("text-gray-600 mb-8 max-w-2xl mx-auto"),
					g.Text("Start your journey with Northern Oak Joinery today. Get a free consultation "+
						"and discover how we can bring your vision to life."),
				),
				NavTrigger(models.PageContact, button.Props{Size: button.SizeLg}, g.Text("Get Your Free Quote")),
			),
		),
	)
}

// TestimonialSlide is the swappable inside of the carousel: the current
// card and its controls.
func TestimonialSlide(ts []models.Testimonial, index int) g.Node {
	n := len(ts)
	if n == 0 {
		return g.Group(nil)
	}
	index = ((index % n) + n) % n
	t := ts[index]

	return g.Group([]g.Node{
		Article(ID("testimonial-card"), g.Attr("data-index", strconv.Itoa(index)),
			Class("rounded-lg border-0 shadow-xl bg-gradient-to-br from-amber-50 to-orange-50 p-8 lg:p-12"),
			Div(Class("text-center mb-8"),
				icon("quote", "h-12 w-12 text-amber-600 mx-auto mb-6"),
				Div(Class("flex justify-center mb-4"), Aria("label", strconv.Itoa(t.Rating)+" out of 5 stars"), stars(t.Rating)),
				BlockQuote(Class("text-xl lg:text-2xl text-gray-900 leading-relaxed mb-8"), g.Text("“"+t.Text+"”")),
			),
			Div(Class("flex items-center justify-center space-x-4"),
				Div(Class("flex h-12 w-12 items-center justify-center rounded-full bg-amber-700 text-white"), g.Text(t.Avatar)),
				Div(Class("text-center"),
					Div(Class("text-gray-900 mb-1"), g.Text(t.Name)),
					Div(Class("text-sm text-gray-600"), g.Text(t.Location)),
					Div(Class("text-xs text-amber-700 mt-1"), g.Text(t.Project)),
				),
			),
		),

		Div(Class("flex items-center justify-center space-x-4 mt-8"),
			carouselControl(TestimonialsPreviousPath, button.Props{
				Variant: button.VariantOutline, Size: button.SizeIcon,
				Attributes: []g.Node{Aria("label", "Previous testimonial")},
			}, icon("chevron-left", "h-4 w-4")),

			Div(ID("testimonial-dots"), Class("flex space-x-2"),
				g.Group(dots(n, index)),
			),

			carouselControl(TestimonialsNextPath, button.Props{
				Variant: button.VariantOutline, Size: button.SizeIcon,
				Attributes: []g.Node{Aria("label", "Next testimonial")},
			}, icon("chevron-right", "h-4 w-4")),
		),
	})
}

func dots(n, current int) []g.Node {
	out := make([]g.Node, n)
	for i := range n {
		class := "h-2 w-2 p-0 rounded-full bg-gray-300 hover:bg-gray-400"
		attrs := []g.Node{Aria("label", "Show testimonial "+strconv.Itoa(i+1))}
		if i == current {
			class = "h-2 w-2 p-0 rounded-full bg-amber-700 hover:bg-amber-700"
			attrs = append(attrs, Aria("current", "true"))
		}
		out[i] = carouselControl(selectURL(i), button.Props{Class: class, Size: button.SizeIcon, Attributes: attrs})
	}
	return out
}

func carouselControl(path string, p button.Props, children ...g.Node) g.Node {
	p.Type = button.TypeSubmit
	return Form(
		Method("post"),
		Action(path),
		Class("contents"),
		hxPost(path),
		hxTarget("#"+CarouselID),
		hxSwap("innerHTML"),
		button.Button(p, children...),
	)
}

func stars(rating int) g.Node {
	nodes := make([]g.Node, 5)
	for i := range nodes {
		class := "h-4 w-4 text-gray-300"
		if i < rating {
			class = "h-4 w-4 text-amber-400"
		}
		nodes[i] = icon("star", class)
	}
	return g.Group(nodes)
}
