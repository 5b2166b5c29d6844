package http

import (
	"context"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devfolio/blog-api/internal/handler/http/middleware"
	usecasecontract "github.com/devfolio/blog-api/internal/usecase/contract"
)

// Pinger reports storage connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Router struct {
	blogHandler  *BlogHandler
	authHandler  *AuthHandler
	mediaHandler *MediaHandler
	gate         usecasecontract.IAdminGate
	pinger       Pinger
}

func NewRouter(blogUsecase usecasecontract.IBlogUseCase, mediaUsecase usecasecontract.IMediaUseCase, gate usecasecontract.IAdminGate, pinger Pinger) *Router {
	return &Router{
		blogHandler:  NewBlogHandler(blogUsecase),
		authHandler:  NewAuthHandler(gate),
		mediaHandler: NewMediaHandler(mediaUsecase),
		gate:         gate,
		pinger:       pinger,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Admin-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", r.healthHandler)
	router.GET("/media/:filename", r.mediaHandler.ServeMediaHandler)

	v1 := router.Group("/api/v1")

	// Public blog routes
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", r.blogHandler.ListBlogsHandler)
		blogs.GET("/slug/:slug", r.blogHandler.GetBlogBySlugHandler)
	}

	v1.POST("/auth/verify", r.authHandler.VerifyAdminHandler)

	// Protected routes (admin secret or session token required)
	protected := v1.Group("/")
	protected.Use(middleware.AdminOnly(r.gate))
	{
		protected.POST("/blogs", r.blogHandler.CreateBlogHandler)
		protected.PUT("/blogs/:blogID", r.blogHandler.UpdateBlogHandler)
		// Registered with and without the id so a request that forgot the
		// id gets a validation error instead of a routing miss.
		protected.DELETE("/blogs/:blogID", r.blogHandler.DeleteBlogHandler)
		protected.DELETE("/blogs", r.blogHandler.DeleteBlogHandler)

		protected.POST("/upload", r.mediaHandler.UploadHandler)
	}
}

func (r *Router) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if r.pinger != nil {
		if err := r.pinger.Ping(ctx); err != nil {
			ErrorHandler(c, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	SuccessHandler(c, http.StatusOK, gin.H{"status": "ok"})
}
