package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/views/components/button"
)

// NavTrigger is a button that switches the visitor's current page. It is a
// plain form post, so it works without JavaScript; with htmx the app shell
// is swapped in place and the window scrolls to the top.
func NavTrigger(page models.Page, p button.Props, children ...g.Node) g.Node {
	p.Type = button.TypeSubmit
	p.Href = ""
	return Form(
		Method("post"),
		Action(NavigatePath),
		Class("contents"),
		hxPost(NavigatePath),
		hxTarget("#"+AppID),
		hxSwap("outerHTML show:window:top"),
		Input(Type("hidden"), Name("page"), Value(string(page))),
		button.Button(p, children...),
	)
}
