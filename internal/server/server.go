package server

import (
	"context"
	"net/http"
	"time"

	"github.com/acmehq/invoicedesk/internal/auth"
	authdomain "github.com/acmehq/invoicedesk/internal/auth/domain"
	"github.com/acmehq/invoicedesk/internal/auth/session"
	"github.com/acmehq/invoicedesk/internal/config"
	"github.com/acmehq/invoicedesk/internal/customer"
	customerdomain "github.com/acmehq/invoicedesk/internal/customer/domain"
	"github.com/acmehq/invoicedesk/internal/dashboard"
	dashboarddomain "github.com/acmehq/invoicedesk/internal/dashboard/domain"
	"github.com/acmehq/invoicedesk/internal/invoice"
	invoicedomain "github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/acmehq/invoicedesk/internal/observability"
	obslogger "github.com/acmehq/invoicedesk/internal/observability/logger"
	obsmetrics "github.com/acmehq/invoicedesk/internal/observability/metrics"
	"github.com/acmehq/invoicedesk/internal/pagecache"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	observability.Module,
	auth.Module,
	customer.Module,
	dashboard.Module,
	invoice.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	authsvc      authdomain.Service
	sessions     *session.Manager
	customerSvc  customerdomain.Service
	dashboardSvc dashboarddomain.Service
	invoiceSvc   invoicedomain.Service
	pages        pagecache.Cache
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Authsvc      authdomain.Service
	Sessions     *session.Manager
	CustomerSvc  customerdomain.Service
	DashboardSvc dashboarddomain.Service
	InvoiceSvc   invoicedomain.Service
	Pages        pagecache.Cache
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		authsvc:      p.Authsvc,
		sessions:     p.Sessions,
		customerSvc:  p.CustomerSvc,
		dashboardSvc: p.DashboardSvc,
		invoiceSvc:   p.InvoiceSvc,
		pages:        p.Pages,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	group := s.engine.Group("/auth")

	group.POST("/register", s.Register)
	group.POST("/login", s.Login)
	group.POST("/logout", s.Logout)
	group.GET("/me", s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	api.Use(s.WebAuthRequired())

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/pages", s.InvoicePages)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.POST("/invoices", s.CreateInvoice)
	api.PUT("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/table", s.ListCustomerTable)

	// -------- Dashboard --------
	api.GET("/dashboard/revenue", s.GetRevenue)
	api.GET("/dashboard/latest-invoices", s.GetLatestInvoices)
	api.GET("/dashboard/cards", s.GetCardData)
}

// WebAuthRequired resolves the session cookie to a user and stores it on the
// request context. Requests without a valid session are rejected.
func (s *Server) WebAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
