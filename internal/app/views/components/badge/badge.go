package badge

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSecondary Variant = "secondary"
)

// Badge renders a small inline label.
func Badge(v Variant, class string, children ...g.Node) g.Node {
	variant := "bg-amber-700 text-white"
	if v == VariantSecondary {
		variant = "bg-amber-50 text-amber-700 hover:bg-amber-100"
	}
	return h.Span(
		h.Class(twmerge.Merge("inline-flex items-center rounded-md px-2.5 py-0.5 text-xs font-medium", variant, class)),
		g.Group(children),
	)
}
