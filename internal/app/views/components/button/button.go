package button

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Variant string
type Size string
type Type string

const (
	VariantDefault   Variant = "default"
	VariantOutline   Variant = "outline"
	VariantSecondary Variant = "secondary"
	VariantGhost     Variant = "ghost"
	VariantLink      Variant = "link"
)

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
	SizeIcon    Size = "icon"
)

const (
	TypeButton Type = "button"
	TypeSubmit Type = "submit"
	TypeReset  Type = "reset"
)

type Props struct {
	ID         string
	Class      string
	Attributes []g.Node
	Variant    Variant
	Size       Size
	FullWidth  bool
	Href       string
	Target     string
	Disabled   bool
	Type       Type
}

const base = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium " +
	"transition-colors cursor-pointer focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-amber-600 " +
	"disabled:pointer-events-none disabled:opacity-50"

// Button renders an <a> when Href is set and the button is enabled,
// otherwise a <button>.
func Button(p Props, children ...g.Node) g.Node {
	classes := twmerge.Merge(
		base,
		variantClasses(p.Variant),
		sizeClasses(p.Size),
		fullWidthClass(p.FullWidth),
		p.Class,
	)

	if p.Href != "" && !p.Disabled {
		return h.A(
			h.Href(p.Href),
			g.If(p.Target != "", h.Target(p.Target)),
			g.If(p.ID != "", h.ID(p.ID)),
			h.Class(classes),
			g.Group(p.Attributes),
			g.Group(children),
		)
	}

	typ := p.Type
	if typ == "" {
		typ = TypeButton
	}
	return h.Button(
		h.Type(string(typ)),
		g.If(p.ID != "", h.ID(p.ID)),
		h.Class(classes),
		g.If(p.Disabled, h.Disabled()),
		g.Group(p.Attributes),
		g.Group(children),
	)
}

func variantClasses(v Variant) string {
	switch v {
	case VariantOutline:
		return "border border-amber-700 bg-transparent text-amber-700 hover:bg-amber-50"
	case VariantSecondary:
		return "bg-white/90 text-gray-900 shadow-sm hover:bg-white"
	case VariantGhost:
		return "bg-transparent hover:bg-amber-50 hover:text-amber-800"
	case VariantLink:
		return "bg-transparent text-amber-700 underline-offset-4 hover:underline"
	default:
		return "bg-amber-700 text-white hover:bg-amber-800"
	}
}

func sizeClasses(s Size) string {
	switch s {
	case SizeSm:
		return "h-9 px-3"
	case SizeLg:
		return "h-11 px-8 text-base"
	case SizeIcon:
		return "h-10 w-10"
	default:
		return "h-10 px-4 py-2"
	}
}

func fullWidthClass(full bool) string {
	if full {
		return "w-full"
	}
	return ""
}
