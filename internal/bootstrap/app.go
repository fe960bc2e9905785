package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

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
	"portfolio-backend/internal/server"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/storage/media"
	localstore "portfolio-backend/internal/shared/storage/media/local"
	s3store "portfolio-backend/internal/shared/storage/media/s3"
	"portfolio-backend/internal/skills"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Media  media.Store

	ProfileService        *profile.Service
	SkillsService         *skills.Service
	ProjectsService       *projects.Service
	ExperiencesService    *experiences.Service
	EducationService      *education.Service
	CertificationsService *certifications.Service
	AwardsService         *awards.Service
	ArticlesService       *articles.Service
	FeedbackService       *feedback.Service
	ContactService        *contact.Service
	AnalyticsService      *analytics.Service
	AuthService           *auth.Service
}

// Build prepares shared dependencies and assembles the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.MediaStoreType) == "" {
		cfg.MediaStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildMediaStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Media:  store,
	}
	deps := buildServices(app)
	app.Router = server.NewRouter(deps)
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildMediaStore(ctx context.Context, cfg config.Config) (media.Store, error) {
	switch cfg.MediaStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicBaseURL)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.LocalPublicBaseURL), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) server.RouterDeps {
	var (
		profileRepo        profile.Repo
		skillsRepo         skills.Repo
		projectsRepo       projects.Repo
		experiencesRepo    experiences.Repo
		educationRepo      education.Repo
		certificationsRepo certifications.Repo
		awardsRepo         awards.Repo
		articlesRepo       articles.Repo
		feedbackRepo       feedback.Repo
		contactRepo        contact.Repo
		analyticsRepo      analytics.Repo
	)

	if app.DB != nil {
		profileRepo = &profile.PGRepo{DB: app.DB}
		skillsRepo = &skills.PGRepo{DB: app.DB}
		projectsRepo = &projects.PGRepo{DB: app.DB}
		experiencesRepo = &experiences.PGRepo{DB: app.DB}
		educationRepo = &education.PGRepo{DB: app.DB}
		certificationsRepo = &certifications.PGRepo{DB: app.DB}
		awardsRepo = &awards.PGRepo{DB: app.DB}
		articlesRepo = &articles.PGRepo{DB: app.DB}
		feedbackRepo = &feedback.PGRepo{DB: app.DB}
		contactRepo = &contact.PGRepo{DB: app.DB}
		analyticsRepo = &analytics.PGRepo{DB: app.DB}
	} else {
		profileRepo = profile.NewMemoryRepo()
		skillsRepo = skills.NewMemoryRepo()
		projectsRepo = projects.NewMemoryRepo()
		experiencesRepo = experiences.NewMemoryRepo()
		educationRepo = education.NewMemoryRepo()
		certificationsRepo = certifications.NewMemoryRepo()
		awardsRepo = awards.NewMemoryRepo()
		articlesRepo = articles.NewMemoryRepo()
		feedbackRepo = feedback.NewMemoryRepo()
		contactRepo = contact.NewMemoryRepo()
		analyticsRepo = analytics.NewMemoryRepo()
	}

	app.ProfileService = &profile.Service{Repo: profileRepo, Media: app.Media}
	app.SkillsService = &skills.Service{Repo: skillsRepo, Media: app.Media}
	app.ProjectsService = &projects.Service{Repo: projectsRepo, Media: app.Media}
	app.ExperiencesService = &experiences.Service{Repo: experiencesRepo, Media: app.Media}
	app.EducationService = &education.Service{Repo: educationRepo, Media: app.Media}
	app.CertificationsService = &certifications.Service{Repo: certificationsRepo, Media: app.Media}
	app.AwardsService = &awards.Service{
		Repo:        awardsRepo,
		Experiences: experiencesRepo,
		Education:   educationRepo,
		Media:       app.Media,
	}
	app.ArticlesService = &articles.Service{Repo: articlesRepo, Media: app.Media}
	app.FeedbackService = &feedback.Service{Repo: feedbackRepo, Media: app.Media}
	app.ContactService = &contact.Service{Repo: contactRepo}
	app.AnalyticsService = &analytics.Service{Repo: analyticsRepo}

	app.AuthService = &auth.Service{
		Secret:        []byte(app.Config.JWTSecret),
		AdminEmail:    app.Config.AdminEmail,
		AdminPassword: app.Config.AdminPassword,
	}
	googleAuth := auth.NewGoogleService(
		app.AuthService,
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)

	return server.RouterDeps{
		Cfg:            app.Config,
		Health:         health.NewService(app.DB),
		Auth:           auth.NewHandler(app.AuthService),
		GoogleAuth:     googleAuth,
		Profile:        profile.NewHandler(app.ProfileService),
		Skills:         skills.NewHandler(app.SkillsService),
		Projects:       projects.NewHandler(app.ProjectsService),
		Experiences:    experiences.NewHandler(app.ExperiencesService),
		Education:      education.NewHandler(app.EducationService),
		Certifications: certifications.NewHandler(app.CertificationsService),
		Awards:         awards.NewHandler(app.AwardsService),
		Articles:       articles.NewHandler(app.ArticlesService),
		Feedback:       feedback.NewHandler(app.FeedbackService),
		Contact:        contact.NewHandler(app.ContactService),
		Analytics:      analytics.NewHandler(app.AnalyticsService),
	}
}
