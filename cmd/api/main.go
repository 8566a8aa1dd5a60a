package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"estatelink/internal/config"
	"estatelink/internal/database"
	"estatelink/internal/domain"
	"estatelink/internal/domain/admin"
	"estatelink/internal/domain/auth"
	"estatelink/internal/domain/billing"
	"estatelink/internal/domain/maintenance"
	"estatelink/internal/domain/notification"
	"estatelink/internal/domain/profile"
	"estatelink/internal/domain/property"
	"estatelink/internal/domain/staff"
	"estatelink/internal/domain/subscription"
	"estatelink/internal/domain/tenancy"
	"estatelink/internal/domain/upload"
	"estatelink/internal/middleware"
	jwtsvc "estatelink/internal/pkg/jwt"
	"estatelink/internal/pkg/mailer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.RefreshToken{},
		&domain.RevokedToken{},
		&auth.VerificationCode{},
		&domain.Property{},
		&domain.Unit{},
		&domain.Tenancy{},
		&domain.StaffMember{},
		&domain.MaintenanceRequest{},
		&domain.TenantBill{},
		&subscription.Plan{},
		&subscription.Subscription{},
		&subscription.Bill{},
		&notification.Notification{},
		&upload.Upload{},
	); err != nil {
		log.Fatal(err)
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
			cfg.SMTPFrom, "EstateLink", cfg.AppBaseURL)
	} else {
		mail = mailer.NewDevConsole(true)
	}

	// Repositories
	userRepo := auth.NewUserRepository(db)
	refreshRepo := auth.NewRefreshTokenRepository(db)
	blacklistRepo := auth.NewBlacklistRepository(db)
	codeRepo := auth.NewCodeRepository(db)
	propertyRepo := property.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	notifRepo := notification.NewRepository(db)
	profileRepo := profile.NewRepository(db)
	staffRepo := staff.NewRepository(db)
	tenancyRepo := tenancy.NewRepository(db)
	maintenanceRepo := maintenance.NewRepository(db)
	billingRepo := billing.NewRepository(db)
	uploadRepo := upload.NewRepository(db)

	// Notifications first: nearly every module pushes through them
	hub := notification.NewHub()
	notifService := notification.NewService(notifRepo, hub)
	notifHandler := notification.NewHandler(notifService)

	authService := auth.NewService(userRepo, refreshRepo, blacklistRepo, codeRepo,
		jwtService, mail, cfg.RefreshTTL, cfg.VerifyCodeTTL)
	authHandler := auth.NewHandler(authService)

	subscriptionService := subscription.NewService(subscriptionRepo, propertyRepo, notifService, nil)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	propertyService := property.NewService(propertyRepo, subscriptionService, notifService, userRepo)
	propertyHandler := property.NewHandler(propertyService)

	profileService := profile.NewService(profileRepo, refreshRepo, notifService)
	profileHandler := profile.NewHandler(profileService)

	adminService := admin.NewService(admin.NewPropertyStore(db), admin.NewSubscriptionStore(db),
		admin.NewStatsRepository(db), notifService)
	adminHandler := admin.NewHandler(adminService)

	staffService := staff.NewService(staffRepo, subscriptionService, userRepo)
	staffHandler := staff.NewHandler(staffService)

	tenancyService := tenancy.NewService(tenancyRepo, staffService, userRepo, propertyRepo)
	tenancyHandler := tenancy.NewHandler(tenancyService)

	maintenanceService := maintenance.NewService(maintenanceRepo, staffService, tenancyRepo, notifService)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)

	billingService := billing.NewService(billingRepo, staffService, tenancyRepo, notifService,
		billing.NewSimulatedGateway(0))
	billingHandler := billing.NewHandler(billingService)

	uploadService := upload.NewService(uploadRepo, propertyRepo, notifService, cfg.UploadsDir, upload.StaticURLBase)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.Static(upload.StaticURLBase, cfg.UploadsDir)

	apiLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitPerMinute)

	v1 := r.Group("/api/v1")
	v1.Use(apiLimiter.Middleware())
	{
		authenticated := v1.Group("/")
		authenticated.Use(middleware.JWTAuth(jwtService, blacklistRepo))

		// Login and registration get a tighter per-IP limit
		authPublic := v1.Group("/")
		authPublic.Use(authLimiter.Middleware())
		auth.RegisterRoutes(authPublic, authenticated, authHandler)

		property.RegisterPublicRoutes(v1, propertyHandler)
		property.RegisterUserRoutes(authenticated, propertyHandler)
		subscription.RegisterPublicRoutes(v1, subscriptionHandler)

		manager := authenticated.Group("/", middleware.ManagerOnly())
		property.RegisterManagerRoutes(manager, propertyHandler)
		subscription.RegisterManagerRoutes(manager, subscriptionHandler)

		profile.RegisterRoutes(authenticated, profileHandler)
		admin.RegisterRoutes(authenticated, adminHandler)
		notification.RegisterRoutes(authenticated, notifHandler)
		notification.RegisterStream(v1, hub, jwtService)
		upload.RegisterRoutes(v1, authenticated, uploadHandler)

		// Portal endpoints resolve the property from the subdomain first
		portal := authenticated.Group("/portal")
		portal.Use(middleware.ResolvePortal(propertyRepo, cfg.PortalSuffix))
		{
			tenancy.RegisterRoutes(portal, tenancyHandler)
			staff.RegisterRoutes(portal, staffHandler)
			maintenance.RegisterRoutes(portal, maintenanceHandler)
			billing.RegisterRoutes(portal, billingHandler)
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
