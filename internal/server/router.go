package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/analytics"
	"portfolio-backend/internal/articles"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/awards"
	"portfolio-backend/internal/certifications"
	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/education"
	"portfolio-backend/internal/experiences"
	"portfolio-backend/internal/feedback"
	"portfolio-backend/internal/profile"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/skills"
)

// RouterDeps carries every handler the router mounts.
type RouterDeps struct {
	Cfg config.Config

	Health *health.Service

	Auth       *auth.Handler
	GoogleAuth *auth.GoogleService

	Profile        *profile.Handler
	Skills         *skills.Handler
	Projects       *projects.Handler
	Experiences    *experiences.Handler
	Education      *education.Handler
	Certifications *certifications.Handler
	Awards         *awards.Handler
	Articles       *articles.Handler
	Feedback       *feedback.Handler
	Contact        *contact.Handler
	Analytics      *analytics.Handler
}

// NewRouter builds the gin engine: public reads and submissions are open,
// every mutation sits behind the admin token gate.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Cfg.CORSAllowOrigin),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	engine.GET("/metrics", metrics.Handler())

	api := engine.Group("/api/v1")

	if deps.Auth != nil {
		deps.Auth.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}

	deps.Profile.RegisterPublicRoutes(api)
	deps.Skills.RegisterPublicRoutes(api)
	deps.Projects.RegisterPublicRoutes(api)
	deps.Experiences.RegisterPublicRoutes(api)
	deps.Education.RegisterPublicRoutes(api)
	deps.Certifications.RegisterPublicRoutes(api)
	deps.Awards.RegisterPublicRoutes(api)
	deps.Articles.RegisterPublicRoutes(api)
	deps.Feedback.RegisterPublicRoutes(api)
	deps.Contact.RegisterPublicRoutes(api)
	deps.Analytics.RegisterPublicRoutes(api)

	admin := engine.Group("/api/v1")
	admin.Use(middleware.RequireAdmin([]byte(deps.Cfg.JWTSecret)))

	deps.Profile.RegisterAdminRoutes(admin)
	deps.Skills.RegisterAdminRoutes(admin)
	deps.Projects.RegisterAdminRoutes(admin)
	deps.Experiences.RegisterAdminRoutes(admin)
	deps.Education.RegisterAdminRoutes(admin)
	deps.Certifications.RegisterAdminRoutes(admin)
	deps.Awards.RegisterAdminRoutes(admin)
	deps.Articles.RegisterAdminRoutes(admin)
	deps.Feedback.RegisterAdminRoutes(admin)
	deps.Contact.RegisterAdminRoutes(admin)
	deps.Analytics.RegisterAdminRoutes(admin)

	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
