package views

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

// Newsletter placeholders.
const (
	NewsletterPlaceholder  = "Your email address"
	NewsletterAcknowledged = "Thank you for subscribing!"
)

var certificationIcons = map[string]string{
	"award":  "award",
	"shield": "shield",
	"truck":  "truck",
}

// SiteFooter renders the footer with quick links, services, contact
// details, the newsletter signup and the certification strip.
func SiteFooter(reg *content.Registry, year int) g.Node {
	co := reg.Company()
	return Footer(Class("bg-gray-900 text-white"),
		container(
			Div(Class("grid lg:grid-cols-4 gap-8 py-16"),
				Div(Class("space-y-6"),
					wordmark(co, "h-12 w-12", "text-xl text-amber-400", "text-sm text-amber-300"),
					P(Class("text-gray-300 text-sm leading-relaxed"), g.Text(co.Blurb)),
				),

				Div(Class("space-y-6"),
					H4(Class("text-amber-400"), g.Text("Quick Links")),
					Nav(ID("footer-nav"), Class("flex flex-col items-start space-y-3"),
						g.Map(reg.FooterNavigation(), func(item models.NavigationItem) g.Node {
							return NavTrigger(item.ID, button.Props{
								Variant: button.VariantLink,
								Class:   "h-auto p-0 font-normal text-gray-300 no-underline hover:text-amber-400 hover:no-underline",
							}, g.Text(item.Label))
						}),
					),
				),

				Div(Class("space-y-6"),
					H4(Class("text-amber-400"), g.Text("Our Services")),
					Div(Class("space-y-3"),
						g.Map(reg.FooterServices(), func(s string) g.Node {
							return Div(Class("text-gray-300 text-sm"), g.Text(s))
						}),
					),
				),

				Div(Class("space-y-6"),
					H4(Class("text-amber-400"), g.Text("Get in Touch")),
					Div(Class("space-y-4"),
						contactLine("phone",
							Div(Class("text-gray-300"), A(Href("tel:"+co.Phone), g.Text(co.Phone))),
							Div(Class("text-gray-400 text-xs"), g.Text(co.PhoneHours)),
						),
						contactLine("mail",
							Div(Class("text-gray-300"), A(Href("mailto:"+co.Email), g.Text(co.Email))),
							Div(Class("text-gray-400 text-xs"), g.Text(co.EmailNote)),
						),
						contactLine("map-pin", addressLines(co.Address, "text-gray-300")),
					),
					newsletterSignup(),
				),
			),
		),

		Div(Class("border-t border-gray-800"),
			container(
				Div(Class("grid grid-cols-1 md:grid-cols-3 gap-8 py-8 text-center"),
					g.Map(reg.Certifications(), func(c models.Highlight) g.Node {
						name := certificationIcons[c.Icon]
						if name == "" {
							name = "badge-check"
						}
						return Div(Class("flex items-center justify-center space-x-3"),
							icon(name, "h-6 w-6 text-amber-400"),
							Div(Class("text-left"),
								Div(Class("text-sm text-amber-400"), g.Text(c.Title)),
								Div(Class("text-xs text-gray-400"), g.Text(c.Text)),
							),
						)
					}),
				),
			),
		),

		Div(Class("border-t border-gray-800"),
			container(
				Div(Class("flex flex-col md:flex-row justify-between items-center space-y-4 md:space-y-0 py-6"),
					Div(Class("text-sm text-gray-400"),
						g.Text("© "+strconv.Itoa(year)+" "+co.Name+". All rights reserved."),
					),
					Div(Class("flex space-x-6 text-sm text-gray-400"),
						Span(g.Text("Privacy Policy")),
						Span(g.Text("Terms of Service")),
						Span(g.Text("Cookie Policy")),
					),
				),
			),
		),
	)
}

// CurrentYear is the copyright year shown in the footer.
func CurrentYear() int { return time.Now().Year() }

func contactLine(iconName string, children ...g.Node) g.Node {
	return Div(Class("flex items-start space-x-3"),
		icon(iconName, "h-4 w-4 text-amber-400 mt-1 flex-shrink-0"),
		Div(Class("text-sm"), g.Group(children)),
	)
}

func addressLines(lines []string, class string) g.Node {
	nodes := make([]g.Node, 0, len(lines)*2)
	for i, l := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(l))
	}
	return Div(Class(class), g.Group(nodes))
}

func newsletterSignup() g.Node {
	return Div(ID("newsletter"), Class("border-t border-gray-700 pt-6"),
		H5(Class("text-amber-400 text-sm mb-3"), g.Text("Newsletter")),
		P(Class("text-gray-300 text-xs mb-4"), g.Text("Get updates on our latest projects and woodworking tips.")),
		Form(
			Method("post"),
			Action(NewsletterPath),
			Class("space-y-3"),
			hxPost(NewsletterPath),
			hxTarget("#"+NewsletterFieldID),
			hxSwap("outerHTML"),
			NewsletterField(0),
			button.Button(button.Props{Type: button.TypeSubmit, Size: button.SizeSm, FullWidth: true}, g.Text("Subscribe")),
		),
	)
}

// NewsletterField renders the signup input. A positive ack shows the
// thank-you placeholder and asks htmx to restore the default after ack.
func NewsletterField(ack time.Duration) g.Node {
	placeholder := NewsletterPlaceholder
	if ack > 0 {
		placeholder = NewsletterAcknowledged
	}
	return Input(
		ID(NewsletterFieldID),
		Type("email"),
		Name("email"),
		Placeholder(placeholder),
		Required(),
		Class("flex h-10 w-full rounded-md border border-gray-700 bg-gray-800 px-3 py-2 text-sm text-white placeholder-gray-400"),
		g.If(ack > 0, g.Group([]g.Node{
			hxGet(NewsletterFieldPath),
			hxTrigger(delayTrigger(ack.Milliseconds())),
			hxSwap("outerHTML"),
		})),
	)
}
