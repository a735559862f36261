package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

var serviceIcons = map[string]string{
	"roof-trusses":         "house",
	"timber-frames":        "building",
	"barn-conversions":     "hammer",
	"heritage-restoration": "ruler",
}

func ServicesSection(reg *content.Registry) g.Node {
	return Section(ID("services"), Class("py-20 bg-white"),
		container(
			sectionIntro("Our Services",
				"Oak Structures Built with Generational Knowledge",
				"From roof trusses and timber frames to heritage restoration, our small team combines three generations "+
					"of traditional Yorkshire craftsmanship with modern structural engineering to create lasting oak structures."),

			Div(Class("grid md:grid-cols-2 gap-8 mb-12"),
				g.Map(reg.Services(), serviceCard),
			),

			Div(Class("text-center bg-gradient-to-r from-amber-50 to-orange-50 rounded-2xl p-12"),
				H3(Class("text-2xl text-gray-900 mb-4"), g.Text("Complex structural project?")),
				P(Class("text-gray-600 mb-8 max-w-2xl mx-auto"),
					g.Text("Every oak structure is unique, and our generational expertise means we can tackle complex challenges. "+
						"Tell us about your project and we'll apply decades of knowledge to make it a reality."),
				),
				NavTrigger(models.PageContact, button.Props{Size: button.SizeLg},
					g.Text("Discuss Your Project"), icon("arrow-right", "h-4 w-4"),
				),
			),
		),
	)
}

func serviceCard(s models.ServiceOffering) g.Node {
	iconName := serviceIcons[s.ID]
	if iconName == "" {
		iconName = "hammer"
	}
	return Article(ID("service-"+s.ID), Class("group rounded-lg bg-white shadow-lg transition-all duration-300 hover:shadow-xl"),
		Div(Class("aspect-[16/10] overflow-hidden rounded-t-lg"),
			Img(Src(s.Image), Alt(s.Title), Class("w-full h-full object-cover transition-transform duration-300 group-hover:scale-105")),
		),
		Div(Class("p-8"),
			Div(Class("flex items-center space-x-4 mb-4"),
				Div(Class("bg-amber-100 rounded-lg p-3 text-amber-700"), icon(iconName, "h-8 w-8")),
				H3(Class("text-xl text-gray-900"), g.Text(s.Title)),
			),
			P(Class("text-gray-600 mb-6"), g.Text(s.Description)),
			Ul(Class("grid grid-cols-2 gap-2 mb-6"),
				g.Map(s.Features, func(f string) g.Node {
					return Li(Class("flex items-center space-x-2"),
						Span(Class("w-1.5 h-1.5 bg-amber-600 rounded-full")),
						Span(Class("text-sm text-gray-600"), g.Text(f)),
					)
				}),
			),
			NavTrigger(models.PageContact,
				button.Props{Variant: button.VariantGhost, Class: "p-0 text-amber-700 hover:text-amber-800"},
				g.Text("Learn more"), icon("arrow-right", "h-4 w-4"),
			),
		),
	)
}
