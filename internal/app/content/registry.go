// Package content holds the static display data for the site: navigation,
// services, portfolio projects, testimonials and page copy. The data is
// embedded at build time and never changes while the process runs.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

//go:embed site.yaml
var siteYAML []byte

type document struct {
	Company          models.Company             `yaml:"company"`
	Navigation       []models.NavigationItem    `yaml:"navigation"`
	FooterNavigation []models.NavigationItem    `yaml:"footerNavigation"`
	FooterServices   []string                   `yaml:"footerServices"`
	Certifications   []models.Highlight         `yaml:"certifications"`
	HeroStats        []models.Stat              `yaml:"heroStats"`
	TestimonialStats []models.Stat              `yaml:"testimonialStats"`
	Services         []models.ServiceOffering   `yaml:"services"`
	Categories       []models.PortfolioCategory `yaml:"categories"`
	Projects         []models.PortfolioProject  `yaml:"projects"`
	Testimonials     []models.Testimonial       `yaml:"testimonials"`
	About            models.About               `yaml:"about"`
	FormOptions      models.FormOptions         `yaml:"formOptions"`
}

// Registry is the read-only content store. Accessors return copies so
// callers cannot mutate shared data.
type Registry struct {
	doc       document
	storyHTML string
}

// Load parses the embedded site content.
func Load() (*Registry, error) {
	return Parse(siteYAML)
}

// MustLoad is Load for program start-up and tests.
func MustLoad() *Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// Parse builds a registry from a YAML document.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", models.ErrContent, err)
	}

	labelCase := cases.Title(language.BritishEnglish)
	for i, c := range doc.Categories {
		if c.Label == "" {
			doc.Categories[i].Label = labelCase.String(strings.ReplaceAll(c.ID, "-", " "))
		}
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	var story bytes.Buffer
	if err := goldmark.New().Convert([]byte(doc.About.Story), &story); err != nil {
		return nil, fmt.Errorf("%w: render about story: %v", models.ErrContent, err)
	}

	return &Registry{doc: doc, storyHTML: story.String()}, nil
}

func validate(doc document) error {
	if len(doc.Testimonials) == 0 {
		return fmt.Errorf("%w: at least one testimonial is required", models.ErrContent)
	}
	for _, t := range doc.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			return fmt.Errorf("%w: testimonial %d rating %d outside 1-5", models.ErrContent, t.ID, t.Rating)
		}
	}
	for _, items := range [][]models.NavigationItem{doc.Navigation, doc.FooterNavigation} {
		for _, item := range items {
			if !item.ID.Known() {
				return fmt.Errorf("%w: navigation item %q targets unknown page", models.ErrContent, item.ID)
			}
		}
	}

	categories := map[string]bool{}
	for _, c := range doc.Categories {
		categories[c.ID] = true
	}
	if !categories[models.CategoryAll] {
		return fmt.Errorf("%w: category %q is required", models.ErrContent, models.CategoryAll)
	}

	seen := map[string]bool{}
	for _, p := range doc.Projects {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate project id %q", models.ErrContent, p.ID)
		}
		seen[p.ID] = true
		if !categories[p.Category] {
			return fmt.Errorf("%w: project %q has unknown category %q", models.ErrContent, p.ID, p.Category)
		}
	}
	return nil
}

func (r *Registry) Company() models.Company {
	c := r.doc.Company
	c.Address = slices.Clone(c.Address)
	c.OpeningTime = slices.Clone(c.OpeningTime)
	return c
}

func (r *Registry) Navigation() []models.NavigationItem {
	return slices.Clone(r.doc.Navigation)
}

func (r *Registry) FooterNavigation() []models.NavigationItem {
	return slices.Clone(r.doc.FooterNavigation)
}

func (r *Registry) FooterServices() []string { return slices.Clone(r.doc.FooterServices) }

func (r *Registry) Certifications() []models.Highlight { return slices.Clone(r.doc.Certifications) }

func (r *Registry) HeroStats() []models.Stat { return slices.Clone(r.doc.HeroStats) }

func (r *Registry) TestimonialStats() []models.Stat { return slices.Clone(r.doc.TestimonialStats) }

func (r *Registry) Services() []models.ServiceOffering {
	out := slices.Clone(r.doc.Services)
	for i := range out {
		out[i].Features = slices.Clone(out[i].Features)
	}
	return out
}

func (r *Registry) Categories() []models.PortfolioCategory { return slices.Clone(r.doc.Categories) }

// HasCategory reports whether id names a portfolio category, "all" included.
func (r *Registry) HasCategory(id string) bool {
	return slices.ContainsFunc(r.doc.Categories, func(c models.PortfolioCategory) bool {
		return c.ID == id
	})
}

func (r *Registry) Projects() []models.PortfolioProject {
	return r.FilterProjects(models.CategoryAll)
}

// FilterProjects returns the projects whose category equals category, in
// registry order. "all" returns every project; an unknown category returns
// an empty slice.
func (r *Registry) FilterProjects(category string) []models.PortfolioProject {
	out := make([]models.PortfolioProject, 0, len(r.doc.Projects))
	for _, p := range r.doc.Projects {
		if category == models.CategoryAll || p.Category == category {
			p.Tags = slices.Clone(p.Tags)
			out = append(out, p)
		}
	}
	return out
}

func (r *Registry) Testimonials() []models.Testimonial { return slices.Clone(r.doc.Testimonials) }

// TestimonialCount is the length of the testimonial sequence.
func (r *Registry) TestimonialCount() int { return len(r.doc.Testimonials) }

func (r *Registry) About() models.About {
	a := r.doc.About
	a.Values = slices.Clone(a.Values)
	return a
}

// StoryHTML is the about-page story rendered from Markdown.
func (r *Registry) StoryHTML() string { return r.storyHTML }

func (r *Registry) FormOptions() models.FormOptions {
	return models.FormOptions{
		ProjectTypes: slices.Clone(r.doc.FormOptions.ProjectTypes),
		Timelines:    slices.Clone(r.doc.FormOptions.Timelines),
		Budgets:      slices.Clone(r.doc.FormOptions.Budgets),
	}
}
