package server

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/northern-oak/internal/app/middleware"
	"github.com/FACorreiaa/northern-oak/internal/routes"
)

// SetupRouter configures the Gin router with all middleware and routes and
// installs it on s.
func (s *Server) SetupRouter() (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(ginzap.GinzapWithConfig(s.logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
		SkipPaths:  []string{"/healthz"},
	}))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))
	r.Use(middleware.OTELGinMiddleware(s.cfg.Observability.ServiceName))
	r.Use(middleware.ObservabilityMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())
	r.Use(middleware.Sessions(s.cfg.Site.SessionSecret))
	r.Use(middleware.VisitorMiddleware(s.logger))

	if err := SetupAssets(r); err != nil {
		return nil, err
	}

	handlers, err := routes.Setup(r, s.cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.handlers = handlers
	s.SetRouter(r)

	return r, nil
}

// zapContextFunc adds the request id and trace ids to request logs. Form
// bodies are not logged since they carry visitor contact details.
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		if sid := middleware.SessionID(c); sid != "" {
			fields = append(fields, zap.String("session", sid))
		}

		return fields
	}
}
