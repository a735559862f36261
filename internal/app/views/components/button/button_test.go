package button

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("failed to read rendered HTML: %v", err)
	}
	return doc
}

func TestButton(t *testing.T) {
	t.Run("it renders a button element", func(t *testing.T) {
		doc := render(t, Button(Props{ID: "my-button", Type: TypeSubmit}, g.Text("Send")))

		s := doc.Find("button")
		if s.Length() != 1 {
			t.Fatalf("expected one button element, got %d", s.Length())
		}
		if id, _ := s.Attr("id"); id != "my-button" {
			t.Errorf(`expected id to be "my-button", but got "%s"`, id)
		}
		if typ, _ := s.Attr("type"); typ != "submit" {
			t.Errorf(`expected type to be "submit", but got "%s"`, typ)
		}
		if s.Text() != "Send" {
			t.Errorf(`expected text "Send", got "%s"`, s.Text())
		}
	})

	t.Run("type defaults to button", func(t *testing.T) {
		doc := render(t, Button(Props{}))
		if typ, _ := doc.Find("button").Attr("type"); typ != "button" {
			t.Errorf(`expected type to be "button", but got "%s"`, typ)
		}
	})

	t.Run("it renders an anchor element when href is provided", func(t *testing.T) {
		doc := render(t, Button(Props{ID: "my-link-button", Href: "tel:07943526366"}))

		a := doc.Find("a")
		if a.Length() == 0 {
			t.Fatal("expected an anchor element to be rendered, but it wasn't")
		}
		if href, _ := a.Attr("href"); href != "tel:07943526366" {
			t.Errorf(`expected href to be "tel:07943526366", but got "%s"`, href)
		}
	})

	t.Run("a disabled link falls back to a disabled button", func(t *testing.T) {
		doc := render(t, Button(Props{Href: "/x", Disabled: true}))
		if doc.Find("a").Length() != 0 {
			t.Error("expected no anchor for a disabled button")
		}
		if _, ok := doc.Find("button").Attr("disabled"); !ok {
			t.Error("expected the button to be disabled")
		}
	})

	t.Run("it applies variant and size classes", func(t *testing.T) {
		doc := render(t, Button(Props{Variant: VariantOutline, Size: SizeLg}))
		s := doc.Find("button")
		for _, class := range []string{"border-amber-700", "h-11", "px-8"} {
			if !s.HasClass(class) {
				classAttr, _ := s.Attr("class")
				t.Errorf("expected class %q in %q", class, classAttr)
			}
		}
	})

	t.Run("caller classes win over defaults", func(t *testing.T) {
		doc := render(t, Button(Props{Class: "bg-green-700"}))
		s := doc.Find("button")
		if s.HasClass("bg-amber-700") {
			t.Error("expected bg-amber-700 to be merged away")
		}
		if !s.HasClass("bg-green-700") {
			t.Error("expected bg-green-700 to be kept")
		}
	})
}
