package home

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/domain"
	"github.com/FACorreiaa/northern-oak/internal/app/middleware"
	"github.com/FACorreiaa/northern-oak/internal/pkg/cache"
)

type client struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Sessions("test-secret"), middleware.VisitorMiddleware(nil))

	h := NewHomeHandlers(domain.NewBaseHandler(nil, content.MustLoad(), nil), nil)
	r.GET("/", h.ShowHomePage)
	r.POST("/navigate", h.Navigate)
	r.GET("/portfolio/projects", h.PortfolioProjects)
	r.GET("/healthz", h.Health)

	return &client{t: t, engine: r, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(req *http.Request) *httptest.ResponseRecorder {
	cl.t.Helper()
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	cl.engine.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return rec
}

func (cl *client) navigate(page string, htmx bool) *httptest.ResponseRecorder {
	form := url.Values{"page": {page}}
	req := httptest.NewRequest(http.MethodPost, "/navigate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return cl.do(req)
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestShowHomePageDefaultsToHome(t *testing.T) {
	cl := newClient(t)
	rec := cl.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	page, _ := doc.Find("#app").Attr("data-page")
	assert.Equal(t, "home", page)
	assert.Equal(t, 1, doc.Find("#hero").Length())
	assert.Equal(t, 1, doc.Find("head title").Length(), "a plain GET gets the full document")
}

func TestNavigate(t *testing.T) {
	t.Run("htmx navigation returns the new shell and is remembered", func(t *testing.T) {
		cl := newClient(t)

		rec := cl.navigate("about", true)
		require.Equal(t, http.StatusOK, rec.Code)
		doc := parse(t, rec)
		page, _ := doc.Find("#app").Attr("data-page")
		assert.Equal(t, "about", page)
		assert.Equal(t, 0, doc.Find("title").Length(), "only the shell is swapped")
		assert.Equal(t, "About", strings.TrimSpace(doc.Find("#desktop-nav [aria-current=page]").Text()))

		rec = cl.do(httptest.NewRequest(http.MethodGet, "/", nil))
		doc = parse(t, rec)
		assert.Equal(t, "About Us | Northern Oak Joinery", doc.Find("title").Text())
	})

	t.Run("without htmx it redirects home with see other", func(t *testing.T) {
		cl := newClient(t)

		rec := cl.navigate("portfolio", false)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		rec = cl.do(httptest.NewRequest(http.MethodGet, "/", nil))
		page, _ := parse(t, rec).Find("#app").Attr("data-page")
		assert.Equal(t, "portfolio", page)
	})

	t.Run("unknown page falls back to home", func(t *testing.T) {
		cl := newClient(t)
		cl.navigate("services", true)

		rec := cl.navigate("nonexistent", true)
		require.Equal(t, http.StatusOK, rec.Code)
		page, _ := parse(t, rec).Find("#app").Attr("data-page")
		assert.Equal(t, "home", page)
	})

	t.Run("visitors do not share pages", func(t *testing.T) {
		alice, bob := newClient(t), newClient(t)
		bob.engine = alice.engine

		alice.navigate("contact", true)
		rec := bob.do(httptest.NewRequest(http.MethodGet, "/", nil))
		page, _ := parse(t, rec).Find("#app").Attr("data-page")
		assert.Equal(t, "home", page)
	})
}

func TestPortfolioProjects(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(httptest.NewRequest(http.MethodGet, "/portfolio/projects?category=timber-frames", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, 2, doc.Find("#portfolio-grid article").Length())
	cat, _ := doc.Find("#portfolio-browser").Attr("data-category")
	assert.Equal(t, "timber-frames", cat)

	rec = cl.do(httptest.NewRequest(http.MethodGet, "/portfolio/projects", nil))
	assert.Equal(t, 5, parse(t, rec).Find("#portfolio-grid article").Length())

	rec = cl.do(httptest.NewRequest(http.MethodGet, "/portfolio/projects?category=sheds", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, parse(t, rec).Find("#portfolio-grid article").Length())
}

func TestHealth(t *testing.T) {
	cl := newClient(t)
	rec := cl.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status string                 `json:"status"`
		Caches map[string]cache.Stats `json:"caches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Caches)
}

func TestHealthReportsCaches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cm := cache.NewCacheManager()
	seen := cache.NewUnifiedCache[int](time.Minute, "seen", nil)
	seen.Set("a", 1)
	cm.Register("seen", seen)

	r := gin.New()
	r.GET("/healthz", NewHomeHandlers(domain.NewBaseHandler(nil, content.MustLoad(), nil), cm).Health)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var body struct {
		Caches map[string]cache.Stats `json:"caches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Caches["seen"].Items)
	assert.Equal(t, int64(1), body.Caches["seen"].Sets)
}

func TestNotFound(t *testing.T) {
	cl := newClient(t)
	h := NewHomeHandlers(domain.NewBaseHandler(nil, content.MustLoad(), nil), nil)
	cl.engine.NoRoute(h.NotFound)

	rec := cl.do(httptest.NewRequest(http.MethodGet, "/no/such/page", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	page, _ := parse(t, rec).Find("#app").Attr("data-page")
	assert.Equal(t, "home", page)
}
