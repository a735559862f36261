package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

// SiteHeader renders the sticky header with the current page highlighted.
func SiteHeader(reg *content.Registry, current models.Page) g.Node {
	co := reg.Company()
	return Header(Class("sticky top-0 z-50 w-full border-b bg-white/95 backdrop-blur supports-[backdrop-filter]:bg-white/60"),
		container(
			Div(Class("flex h-16 items-center justify-between"),
				NavTrigger(models.PageHome,
					button.Props{Variant: button.VariantGhost, Class: "h-auto p-0 hover:bg-transparent", Attributes: []g.Node{Aria("label", co.Name+" home")}},
					wordmark(co, "h-10 w-10", "text-xl font-bold text-amber-900", "text-sm text-amber-700"),
				),

				Nav(ID("desktop-nav"), Class("hidden md:flex items-center space-x-8"),
					g.Map(reg.Navigation(), func(item models.NavigationItem) g.Node {
						return desktopLink(item, current)
					}),
				),

				Div(Class("hidden lg:flex items-center space-x-4"),
					Div(Class("flex items-center space-x-2 text-sm text-gray-600"),
						icon("phone", "h-4 w-4"),
						A(Href("tel:"+co.Phone), g.Text(co.Phone)),
					),
					NavTrigger(models.PageContact, button.Props{}, g.Text("Get Quote")),
				),

				mobileMenu(reg, current),
			),
		),
	)
}

func wordmark(co models.Company, logoClass, nameClass, taglineClass string) g.Node {
	return Div(Class("flex items-center space-x-2"),
		Img(Src(co.Logo), Alt(co.Name), Class(logoClass)),
		Div(Class("text-left"),
			Div(Class(nameClass), g.Text(co.Wordmark)),
			Div(Class(taglineClass), g.Text(co.Tagline)),
		),
	)
}

func desktopLink(item models.NavigationItem, current models.Page) g.Node {
	active := item.ID == current
	class := "h-auto rounded-none px-0 py-1 bg-transparent text-base font-normal text-gray-700 hover:bg-transparent hover:text-amber-700"
	if active {
		class += " text-amber-800 border-b-2 border-amber-700"
	}
	var attrs []g.Node
	if active {
		attrs = append(attrs, Aria("current", "page"))
	}
	return NavTrigger(item.ID,
		button.Props{Variant: button.VariantGhost, Class: class, Attributes: attrs},
		g.Text(item.Label),
	)
}

// The mobile menu is a <details> disclosure; it closes itself because the
// whole shell is re-rendered after a navigation.
func mobileMenu(reg *content.Registry, current models.Page) g.Node {
	co := reg.Company()
	return Details(ID("mobile-nav"), Class("relative md:hidden"),
		Summary(Class("list-none cursor-pointer rounded-md p-2 hover:bg-amber-50"), Aria("label", "Open menu"),
			icon("menu", "h-5 w-5"),
		),
		Div(Class("absolute right-0 top-12 w-[300px] rounded-lg border bg-white p-6 shadow-xl"),
			Div(Class("flex flex-col space-y-6"),
				wordmark(co, "h-8 w-8", "font-bold text-amber-900", "text-sm text-amber-700"),
				Nav(Class("flex flex-col space-y-2"),
					g.Map(reg.Navigation(), func(item models.NavigationItem) g.Node {
						class := "w-full justify-start px-4 py-2 text-base font-normal text-gray-700 hover:bg-gray-100"
						var attrs []g.Node
						if item.ID == current {
							class = "w-full justify-start px-4 py-2 text-base font-normal bg-amber-100 text-amber-800"
							attrs = append(attrs, Aria("current", "page"))
						}
						return NavTrigger(item.ID, button.Props{Variant: button.VariantGhost, Class: class, Attributes: attrs}, g.Text(item.Label))
					}),
				),
				Div(Class("border-t pt-4 space-y-4"),
					Div(Class("flex items-center space-x-2 text-sm text-gray-600"),
						icon("phone", "h-4 w-4"),
						A(Href("tel:"+co.Phone), g.Text(co.Phone)),
					),
					Div(Class("flex items-center space-x-2 text-sm text-gray-600"),
						icon("mail", "h-4 w-4"),
						A(Href("mailto:"+co.Email), g.Text(co.Email)),
					),
					NavTrigger(models.PageContact, button.Props{FullWidth: true}, g.Text("Get Quote")),
				),
			),
		),
	)
}
