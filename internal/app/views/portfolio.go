package views

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/badge"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

func PortfolioSection(reg *content.Registry) g.Node {
	return Section(ID("portfolio"), Class("py-20 bg-gray-50"),
		container(
			sectionIntro("Our Portfolio",
				"Three Generations of Oak Structures",
				"Each project showcases our family's commitment to traditional Yorkshire craftsmanship. "+
					"From heritage restoration to new builds, see how we apply generational knowledge to every structure."),

			PortfolioBrowser(reg, models.CategoryAll),

			Div(Class("text-center mt-12"),
				P(Class("text-gray-600 mb-6"), g.Text("Want to see more examples of our work?")),
				NavTrigger(models.PagePortfolio, button.Props{Variant: button.VariantOutline, Size: button.SizeLg},
					g.Text("View Full Portfolio"),
				),
			),
		),
	)
}

// PortfolioBrowser is the category tabs plus the filtered project grid. It
// is the fragment swapped when a tab is chosen.
func PortfolioBrowser(reg *content.Registry, category string) g.Node {
	projects := reg.FilterProjects(category)
	return Div(ID(PortfolioID), g.Attr("data-category", category),
		Div(Role("tablist"), Class("mb-12 grid w-full grid-cols-2 lg:grid-cols-4 gap-1 rounded-lg border bg-white p-1"),
			g.Map(reg.Categories(), func(c models.PortfolioCategory) g.Node {
				return categoryTab(c, c.ID == category)
			}),
		),
		Div(ID("portfolio-grid"), Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Attr("data-count", strconv.Itoa(len(projects))),
			g.Map(projects, projectCard),
		),
		g.If(len(projects) == 0,
			P(Class("text-center text-gray-500 py-12"), g.Text("No projects in this category yet.")),
		),
	)
}

func categoryTab(c models.PortfolioCategory, active bool) g.Node {
	class := "rounded-md px-4 py-3 text-sm text-gray-700 hover:bg-amber-50"
	if active {
		class = "rounded-md px-4 py-3 text-sm bg-amber-700 text-white"
	}
	u := PortfolioProjectsPath + "?category=" + url.QueryEscape(c.ID)
	return Button(Type("button"), Role("tab"), Class(class+" cursor-pointer"),
		Aria("selected", strconv.FormatBool(active)),
		g.Attr("data-category", c.ID),
		hxGet(u), hxTarget("#"+PortfolioID), hxSwap("outerHTML"),
		g.Text(c.Label),
	)
}

func projectCard(p models.PortfolioProject) g.Node {
	return Article(ID("project-"+p.ID), g.Attr("data-category", p.Category),
		Class("group overflow-hidden rounded-lg bg-white shadow-lg transition-all duration-300 hover:shadow-xl"),
		Div(Class("relative aspect-[4/3] overflow-hidden"),
			Img(Src(p.Image), Alt(p.Title), Class("w-full h-full object-cover transition-transform duration-300 group-hover:scale-105")),
			g.If(p.Featured, badge.Badge(badge.VariantDefault, "absolute top-4 left-4", g.Text("Featured"))),
			Div(Class("absolute bottom-4 right-4 opacity-0 transition-opacity duration-300 group-hover:opacity-100"),
				NavTrigger(models.PageContact,
					button.Props{Variant: button.VariantSecondary, Size: button.SizeSm, Attributes: []g.Node{Aria("label", "Ask about "+p.Title)}},
					icon("external-link", "h-4 w-4"),
				),
			),
		),
		Div(Class("p-6"),
			Div(Class("flex items-center space-x-4 text-sm text-gray-500 mb-3"),
				Span(Class("flex items-center space-x-1"), icon("map-pin", "h-3 w-3"), Span(g.Text(p.Location))),
				Span(Class("flex items-center space-x-1"), icon("calendar", "h-3 w-3"), Span(g.Text(p.Date))),
			),
			H3(Class("text-xl text-gray-900 mb-2 transition-colors group-hover:text-amber-700"), g.Text(p.Title)),
			P(Class("text-gray-600 text-sm mb-4 line-clamp-2"), g.Text(p.Description)),
			Div(Class("flex flex-wrap gap-2"),
				g.Map(p.Tags, func(tag string) g.Node {
					return badge.Badge(badge.VariantSecondary, "", g.Text(tag))
				}),
			),
		),
	)
}

// InspiredCallToAction follows the portfolio on its own page.
func InspiredCallToAction() g.Node {
	return Div(ID("inspired"), Class("bg-white py-20"),
		Div(Class("container mx-auto px-4 text-center"),
			H2(Class("text-3xl text-gray-900 mb-6"), g.Text("Inspired by our work?")),
			P(Class("text-gray-600 mb-8 max-w-2xl mx-auto"),
				g.Text("Every project starts with a conversation. Let's discuss your vision "+
					"and see how we can bring it to life with our expert craftsmanship."),
			),
			Div(Class("flex flex-col sm:flex-row gap-4 justify-center"),
				NavTrigger(models.PageConfigurator, button.Props{Size: button.SizeLg}, g.Text("Try Our Design Tool")),
				NavTrigger(models.PageContact, button.Props{Variant: button.VariantOutline, Size: button.SizeLg}, g.Text("Get Custom Quote")),
			),
		),
	)
}

// DesignHelp stands in for the configurator.
func DesignHelp() g.Node {
	return Div(ID("design-help"), Class("bg-white py-20"),
		Div(Class("container mx-auto px-4 text-center"),
			H2(Class("text-3xl text-gray-900 mb-6"), g.Text("Need help with your design?")),
			P(Class("text-gray-600 mb-8 max-w-2xl mx-auto"),
				g.Text("Our expert team is here to help you create the perfect oak structure. "+
					"Get in touch for personalized guidance and professional advice."),
			),
			NavTrigger(models.PageContact, button.Props{Size: button.SizeLg}, g.Text("Speak to an Expert")),
		),
	)
}
