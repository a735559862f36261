package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

func AboutSection(reg *content.Registry) g.Node {
	a := reg.About()
	return Section(ID("about"), Class("py-20 bg-gray-50"),
		container(
			Div(Class("text-center max-w-3xl mx-auto mb-16"),
				eyebrow(a.Eyebrow),
				H2(Class("text-3xl lg:text-5xl text-gray-900 mb-6"), g.Text(a.Title)),
				P(Class("text-lg text-gray-600"), g.Text(a.Intro)),
			),

			Div(Class("grid lg:grid-cols-2 gap-12 items-center mb-20"),
				Div(ID("our-story"), Class("space-y-6"),
					H3(Class("text-2xl text-gray-900"), g.Text("Our Story")),
					Div(Class("prose prose-gray text-gray-600 space-y-4"), g.Raw(reg.StoryHTML())),
				),
				Div(Class("relative"),
					Img(Src(a.Image), Alt("Craftsmen at work in the Northern Oak workshop"),
						Class("rounded-2xl shadow-2xl w-full h-[420px] object-cover"),
						g.Attr("loading", "lazy"),
					),
				),
			),

			Div(ID("our-values"),
				H3(Class("text-2xl text-gray-900 text-center mb-12"), g.Text("Our Values")),
				Div(Class("grid md:grid-cols-3 gap-8"),
					g.Map(a.Values, valueCard),
				),
			),
		),
	)
}

func valueCard(v models.Highlight) g.Node {
	return Div(Class("bg-white rounded-xl p-8 shadow-sm text-center"),
		Div(Class("text-4xl mb-6"), Aria("hidden", "true"), g.Text(v.Icon)),
		H4(Class("text-xl text-gray-900 mb-3"), g.Text(v.Title)),
		P(Class("text-gray-600"), g.Text(v.Text)),
	)
}
