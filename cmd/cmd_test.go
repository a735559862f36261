package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPage(context.Background(), &buf, models.PagePortfolio))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio | Northern Oak Joinery", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#portfolio-browser").Length())
}

func TestExportPages(t *testing.T) {
	dir := t.TempDir()

	written, err := exportPages(context.Background(), dir, models.AllPages)
	require.NoError(t, err)
	require.Len(t, written, len(models.AllPages))

	for i, p := range models.AllPages {
		assert.Equal(t, filepath.Join(dir, p.String()+".html"), written[i])
		data, err := os.ReadFile(written[i])
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "<!doctype html>"), "%s is a full document", p)
	}
}

func TestReport(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	report(&buf, []string{"dist/home.html"}, nil)
	assert.Equal(t, "  ✓ dist/home.html\n1 pages exported\n", buf.String())
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("SESSION_SECRET", "a-long-enough-test-secret")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"render", "--page", "nonexistent", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `id="hero"`)
}
