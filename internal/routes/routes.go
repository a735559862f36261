package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/app/content"
	"github.com/FACorreiaa/northern-oak/internal/app/domain"
	"github.com/FACorreiaa/northern-oak/internal/app/domain/carousel"
	"github.com/FACorreiaa/northern-oak/internal/app/domain/contact"
	"github.com/FACorreiaa/northern-oak/internal/app/domain/home"
	"github.com/FACorreiaa/northern-oak/internal/app/domain/newsletter"
	"github.com/FACorreiaa/northern-oak/internal/app/renderer"
	"github.com/FACorreiaa/northern-oak/internal/app/views"
	"github.com/FACorreiaa/northern-oak/internal/pkg/cache"
	"github.com/FACorreiaa/northern-oak/internal/pkg/config"
)

type AppHandlers struct {
	Home       *home.HomeHandlers
	Carousel   *carousel.Handler
	Contact    *contact.Handler
	Newsletter *newsletter.Handler

	carousels *carousel.Registry
}

// Close stops every running carousel.
func (h *AppHandlers) Close() {
	h.carousels.Close()
}

// Setup installs the templ renderer and every route on r. The returned
// handlers must be closed on shutdown.
func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) (*AppHandlers, error) {
	ginHTMLRenderer := r.HTMLRender
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: ginHTMLRenderer}

	handlers, err := setupDependencies(cfg, log)
	if err != nil {
		return nil, err
	}
	setupRouter(r, handlers)
	return handlers, nil
}

func setupDependencies(cfg *config.Config, log *zap.Logger) (*AppHandlers, error) {
	reg, err := content.Load()
	if err != nil {
		return nil, err
	}

	carousels := carousel.NewRegistry(
		reg.TestimonialCount(),
		cfg.Site.CarouselInterval,
		carousel.DefaultIdleTTL,
		log,
		carousel.WithObserver(carousel.RecordChange),
	)
	baseHandler := domain.NewBaseHandler(log, reg, carousels)

	var submitter contact.Submitter = contact.NewSimulatedSubmitter(cfg.Site.SubmitDelay, log)
	if cfg.Webhook.URL != "" {
		submitter = contact.NewWebhookSubmitter(cfg.Webhook.URL, cfg.Webhook.Timeout, cfg.Webhook.Retries, log)
		log.Info("Form submissions go to webhook", zap.String("url", cfg.Webhook.URL))
	}

	subscribers := newsletter.NewService(newsletter.DedupeWindow, log)

	caches := cache.NewCacheManager()
	caches.Register("carousels", carousels.Stats())
	caches.Register("newsletter", subscribers.Stats())

	return &AppHandlers{
		Home:       home.NewHomeHandlers(baseHandler, caches),
		Carousel:   carousel.NewHandler(baseHandler, carousels),
		Contact:    contact.NewHandler(baseHandler, contact.NewController(submitter, log)),
		Newsletter: newsletter.NewHandler(baseHandler, subscribers, cfg.Site.NewsletterAck),
		carousels:  carousels,
	}, nil
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	r.GET("/healthz", h.Home.Health)

	r.GET("/", h.Home.ShowHomePage)
	r.POST(views.NavigatePath, h.Home.Navigate)
	r.GET(views.PortfolioProjectsPath, h.Home.PortfolioProjects)

	testimonials := r.Group("/testimonials")
	{
		testimonials.GET("/stream", h.Carousel.Stream)
		testimonials.POST("/next", h.Carousel.Next)
		testimonials.POST("/previous", h.Carousel.Previous)
		testimonials.POST("/select/:index", h.Carousel.Select)
	}

	r.POST(views.ContactPath, h.Contact.Submit)
	r.POST(views.ContactResetPath, h.Contact.Reset)

	r.POST(views.NewsletterPath, h.Newsletter.Subscribe)
	r.GET(views.NewsletterFieldPath, h.Newsletter.Field)

	r.NoRoute(h.Home.NotFound)
}
