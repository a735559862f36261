package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

const heroImage = "https://images.unsplash.com/photo-1715855752720-7c8147ba9d87?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&w=1000&h=750"

func HeroSection(reg *content.Registry) g.Node {
	return Section(ID("hero"), Class("relative bg-gradient-to-br from-amber-50 to-orange-50 overflow-hidden"),
		Div(Class("container mx-auto px-4 py-20 lg:py-24"),
			Div(Class("grid lg:grid-cols-2 gap-12 items-center"),
				Div(Class("space-y-8"),
					Div(Class("space-y-4"),
						Div(Class("flex items-center space-x-2 text-amber-700"),
							icon("award", "h-5 w-5"),
							Span(Class("text-sm tracking-wide uppercase"), g.Text("Award-winning craftsmanship")),
						),
						H1(Class("text-4xl lg:text-6xl text-gray-900 leading-tight"),
							g.Text("Traditional Oak"),
							Span(Class("block text-amber-700"), g.Text("Trusses & Beams")),
							Span(Class("block"), g.Text("Three Generations Strong")),
						),
						P(Class("text-lg text-gray-600 max-w-lg"),
							g.Text("Yorkshire's trusted specialists in oak structural work. From roof trusses and timber frames "+
								"to heritage restoration and barn conversions, we honor traditional techniques with modern precision."),
						),
					),

					Div(ID("hero-stats"), Class("grid grid-cols-3 gap-6 py-6 border-t border-amber-200"),
						g.Map(reg.HeroStats(), func(s models.Stat) g.Node {
							return statCell(s, "text-2xl text-amber-700 mb-1")
						}),
					),

					Div(Class("flex flex-col sm:flex-row gap-4"),
						NavTrigger(models.PageContact, button.Props{Size: button.SizeLg},
							g.Text("Get Free Quote"), icon("arrow-right", "h-4 w-4"),
						),
						NavTrigger(models.PagePortfolio, button.Props{Variant: button.VariantOutline, Size: button.SizeLg},
							g.Text("View Our Work"),
						),
					),
				),

				Div(Class("relative"),
					Div(Class("aspect-[4/3] rounded-2xl overflow-hidden bg-amber-100 shadow-2xl"),
						Img(Src(heroImage), Alt("Traditional oak timber framing and roof trusses"), Class("w-full h-full object-cover")),
					),
					floatingCard("absolute -bottom-6 -left-6", "users", "bg-green-100 text-green-600", "Small Expert Team", "3 master craftsmen"),
					floatingCard("absolute -top-6 -right-6", "calendar", "bg-blue-100 text-blue-600", "Heritage Techniques", "Traditional joinery"),
				),
			),
		),
	)
}

func statCell(s models.Stat, valueClass string) g.Node {
	return Div(Class("text-center"),
		Div(Class(valueClass), g.Text(s.Value)),
		Div(Class("text-sm text-gray-600"), g.Text(s.Label)),
	)
}

func floatingCard(position, iconName, iconClass, title, subtitle string) g.Node {
	return Div(Class(position+" bg-white rounded-xl shadow-lg p-4 max-w-[200px]"),
		Div(Class("flex items-center space-x-3"),
			Div(Class("rounded-full p-2 "+iconClass), icon(iconName, "h-4 w-4")),
			Div(
				Div(Class("text-sm"), g.Text(title)),
				Div(Class("text-xs text-gray-500"), g.Text(subtitle)),
			),
		),
	)
}
