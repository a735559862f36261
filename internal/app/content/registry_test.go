package content

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

func projectIDs(projects []models.PortfolioProject) []string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestLoad(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	assert.Len(t, r.Testimonials(), 5)
	assert.Equal(t, 5, r.TestimonialCount())
	assert.Len(t, r.Services(), 4)
	assert.Len(t, r.Navigation(), 5)
	assert.Len(t, r.FooterNavigation(), 6)
	assert.Equal(t, "Northern Oak Joinery", r.Company().Name)
	assert.Contains(t, r.FormOptions().ProjectTypes, "Bespoke Joinery")
}

func TestFilterProjects(t *testing.T) {
	r := MustLoad()

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{
			name:     "roof trusses returns only matching projects in order",
			category: "roof-trusses",
			want:     []string{"church-roof-trusses", "new-build-trusses"},
		},
		{
			name:     "timber frames",
			category: "timber-frames",
			want:     []string{"traditional-timber-frame", "oak-beam-restoration"},
		},
		{
			name:     "all returns the full list in order",
			category: models.CategoryAll,
			want: []string{
				"church-roof-trusses",
				"yorkshire-barn-conversion",
				"traditional-timber-frame",
				"oak-beam-restoration",
				"new-build-trusses",
			},
		},
		{
			name:     "unknown category matches nothing",
			category: "treehouses",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projectIDs(r.FilterProjects(tt.category))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterProjects(%q) mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}

	t.Run("every filtered project carries the requested category", func(t *testing.T) {
		for _, p := range r.FilterProjects("roof-trusses") {
			assert.Equal(t, "roof-trusses", p.Category)
		}
	})
}

func TestCategories(t *testing.T) {
	r := MustLoad()

	labels := map[string]string{}
	for _, c := range r.Categories() {
		labels[c.ID] = c.Label
	}
	assert.Equal(t, "All Projects", labels["all"])
	assert.Equal(t, "Roof Trusses", labels["roof-trusses"], "labels default to the title-cased id")
	assert.Equal(t, "Barn Conversions", labels["barn-conversions"])

	assert.True(t, r.HasCategory("timber-frames"))
	assert.False(t, r.HasCategory("sheds"))
}

func TestAccessorsReturnCopies(t *testing.T) {
	r := MustLoad()

	services := r.Services()
	services[0].Title = "changed"
	services[0].Features[0] = "changed"

	fresh := r.Services()
	assert.Equal(t, "Oak Roof Trusses", fresh[0].Title)
	assert.Equal(t, "Structural calculations", fresh[0].Features[0])
}

func TestStoryHTML(t *testing.T) {
	r := MustLoad()
	html := r.StoryHTML()

	assert.Contains(t, html, "<p>Founded by master craftsman Robert Harrison")
	assert.Contains(t, html, "<strong>sustainably sourced</strong>")
}

func TestParseRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no testimonials",
			yaml: "categories: [{id: all}]\n",
		},
		{
			name: "rating out of range",
			yaml: "categories: [{id: all}]\ntestimonials: [{id: 1, rating: 6}]\n",
		},
		{
			name: "navigation to unknown page",
			yaml: "categories: [{id: all}]\ntestimonials: [{id: 1, rating: 5}]\nnavigation: [{id: blog, label: Blog}]\n",
		},
		{
			name: "project with unknown category",
			yaml: "categories: [{id: all}]\ntestimonials: [{id: 1, rating: 5}]\nprojects: [{id: p, category: sheds}]\n",
		},
		{
			name: "malformed yaml",
			yaml: "testimonials: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrContent))
		})
	}
}
