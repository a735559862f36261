package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

// Toast renders one notification. site.js removes it after a few seconds.
func Toast(n models.Notification) g.Node {
	class := "border-green-600 bg-green-50 text-green-900"
	iconName := "circle-check"
	if n.Kind == models.NotifyError {
		class = "border-red-600 bg-red-50 text-red-900"
		iconName = "circle-alert"
	}
	return Div(
		Class("toast pointer-events-auto flex items-start gap-3 rounded-md border-l-4 px-4 py-3 shadow-lg "+class),
		Role("status"),
		g.Attr("data-kind", string(n.Kind)),
		icon(iconName, "h-5 w-5 mt-0.5"),
		P(Class("text-sm"), g.Text(n.Message)),
	)
}

// ToastOOB appends n to the toast region from any htmx response.
func ToastOOB(n models.Notification) g.Node {
	return Div(ID(ToastsID), g.Attr("hx-swap-oob", "beforeend"), Toast(n))
}

// ToastRegion is the empty live region toasts are appended to.
func ToastRegion() g.Node {
	return Div(ID(ToastsID),
		Class("fixed bottom-4 right-4 z-[60] flex w-80 flex-col gap-2 pointer-events-none"),
		Aria("live", "polite"),
	)
}
