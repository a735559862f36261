package models

import "github.com/a-h/templ"

// Page identifies one of the fixed view compositions.
type Page string

const (
	PageHome         Page = "home"
	PageServices     Page = "services"
	PagePortfolio    Page = "portfolio"
	PageConfigurator Page = "configurator"
	PageAbout        Page = "about"
	PageContact      Page = "contact"
)

// AllPages lists every page in navigation order.
var AllPages = []Page{
	PageHome,
	PageServices,
	PagePortfolio,
	PageConfigurator,
	PageAbout,
	PageContact,
}

// Known reports whether p is one of AllPages.
func (p Page) Known() bool {
	for _, known := range AllPages {
		if p == known {
			return true
		}
	}
	return false
}

func (p Page) String() string { return string(p) }

type NavigationItem struct {
	ID    Page   `yaml:"id"`
	Label string `yaml:"label"`
}

type LayoutTempl struct {
	Title       string
	Description string
	CurrentPage Page
	Content     templ.Component
}
