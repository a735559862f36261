package home

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/app/domain"
	"github.com/FACorreiaa/northern-oak/internal/app/middleware"
	"github.com/FACorreiaa/northern-oak/internal/app/models"
	"github.com/FACorreiaa/northern-oak/internal/app/pages"
	"github.com/FACorreiaa/northern-oak/internal/app/views"
	"github.com/FACorreiaa/northern-oak/internal/pkg/cache"
)

type HomeHandlers struct {
	*domain.BaseHandler
	caches  *cache.CacheManager
	started time.Time
}

func NewHomeHandlers(base *domain.BaseHandler, caches *cache.CacheManager) *HomeHandlers {
	if caches == nil {
		caches = cache.NewCacheManager()
	}
	return &HomeHandlers{BaseHandler: base, caches: caches, started: time.Now()}
}

// ShowHomePage renders whichever page the visitor last navigated to.
func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	h.RenderPage(c, h.CurrentPage(c))
}

// Navigate switches the current page. Unknown ids land on home; nothing is
// rejected.
func (h *HomeHandlers) Navigate(c *gin.Context) {
	p := pages.Parse(c.PostForm("page"))
	if err := middleware.SetCurrentPage(c, p); err != nil {
		h.Logger.Warn("Failed to store current page", zap.String("page", p.String()), zap.Error(err))
	}
	h.Logger.Debug("Navigated",
		zap.String("session", middleware.SessionID(c)),
		zap.String("page", p.String()),
	)

	if !middleware.IsHTMX(c) {
		middleware.Redirect(c, "/")
		return
	}
	h.RenderPage(c, p)
}

// PortfolioProjects renders the portfolio browser for ?category=. An
// unknown category gets an empty grid.
func (h *HomeHandlers) PortfolioProjects(c *gin.Context) {
	category := c.DefaultQuery("category", models.CategoryAll)
	if !h.Content.HasCategory(category) {
		h.Logger.Debug("Unknown portfolio category", zap.String("category", category))
	}
	h.RenderNode(c, http.StatusOK, views.PortfolioBrowser(h.Content, category))
}

// NotFound serves the home page for unknown URLs.
func (h *HomeHandlers) NotFound(c *gin.Context) {
	h.Render(c, http.StatusNotFound, pages.Document(models.PageHome, h.PageDeps(c)))
}

func (h *HomeHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
		"caches": h.caches.GetAllMetrics(),
	})
}
