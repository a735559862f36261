package views

import (
	"context"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

// App is the swappable page shell: header, the page body and footer.
// Navigation replaces it as a whole so the header highlight follows.
func App(reg *content.Registry, current models.Page, body g.Node) g.Node {
	return Div(ID(AppID), Class("min-h-screen bg-white"), g.Attr("data-page", current.String()),
		SiteHeader(reg, current),
		Main(body),
		SiteFooter(reg, CurrentYear()),
	)
}

// Form re-renders come back as 422 and 502 and still need swapping.
const htmxConfig = `{"responseHandling":[` +
	`{"code":"204","swap":false},` +
	`{"code":"[23]..","swap":true},` +
	`{"code":"422","swap":true},` +
	`{"code":"502","swap":true,"error":false},` +
	`{"code":"[45]..","swap":false,"error":true}]}`

// Document wraps l.Content in the full HTML document.
func Document(ctx context.Context, l models.LayoutTempl) g.Node {
	return Doctype(
		HTML(Lang("en-GB"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(l.Title)),
				g.If(l.Description != "", Meta(Name("description"), Content(l.Description))),
				Meta(Name("htmx-config"), Content(htmxConfig)),
				Link(Rel("icon"), Type("image/svg+xml"), Href("/assets/static/northern-oak-logo.svg")),
				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://unpkg.com/htmx.org@2.0.4"), Defer()),
				Script(Src("https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"), Defer()),
				Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js"), Defer()),
				Link(Rel("stylesheet"), Href("/assets/css/site.css")),
				Script(Src("/assets/js/site.js"), Defer()),
			),
			Body(Class("antialiased text-gray-900"), g.Attr("data-page", l.CurrentPage.String()),
				FromTempl(ctx, l.Content),
				ToastRegion(),
			),
		),
	)
}
