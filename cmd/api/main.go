package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"photoorders/internal/config"
	"photoorders/internal/database"
	"photoorders/internal/middleware"
	"photoorders/internal/modules/appstatus"
	"photoorders/internal/modules/auth"
	"photoorders/internal/modules/catalog"
	"photoorders/internal/modules/kindergarten"
	"photoorders/internal/modules/order"
	"photoorders/internal/modules/pricing"
	"photoorders/internal/modules/request"
	"photoorders/internal/modules/upload"
	jwtsvc "photoorders/internal/pkg/jwt"
	"photoorders/internal/repository"
	"photoorders/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	if cfg.AppEnv == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	// repositories
	userRepo := repository.NewUserRepository(db)
	paperSizeRepo := repository.NewPaperSizeRepository(db)
	additionRepo := repository.NewServiceAdditionRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	serviceTypeRepo := repository.NewServiceTypeRepository(db)
	costumeRepo := repository.NewCostumeRepository(db)
	sampleRepo := repository.NewStudioSampleRepository(db)
	kindergartenRepo := repository.NewKindergartenRepository(db)
	preschoolRepo := repository.NewPreschoolRepository(db)
	appConfigRepo := repository.NewAppConfigRepository(db)
	kReqRepo := repository.NewKindergartenRequestRepository(db)
	sReqRepo := repository.NewServiceRequestRepository(db)

	j := jwtsvc.New(cfg.JWT.Secret, cfg.JWT.TTL)

	// phone verification
	verifier := buildVerifier(cfg)

	authService := auth.NewService(userRepo, j, verifier)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(
		paperSizeRepo, additionRepo, packageRepo, themeRepo,
		serviceTypeRepo, costumeRepo, sampleRepo,
	)
	catalogHandler := catalog.NewHandler(catalogService)

	kindergartenService := kindergarten.NewService(kindergartenRepo, preschoolRepo)
	kindergartenHandler := kindergarten.NewHandler(kindergartenService)

	engine := pricing.NewEngine(paperSizeRepo, additionRepo, packageRepo, themeRepo, costumeRepo)

	requestService := request.NewService(kReqRepo, sReqRepo, engine, userRepo)
	requestHandler := request.NewHandler(requestService)

	orderService := order.NewService(userRepo, kReqRepo, sReqRepo)
	orderHandler := order.NewHandler(orderService)

	hub := appstatus.NewHub()
	defer hub.Close()
	statusService := appstatus.NewService(appConfigRepo, hub)
	statusHandler := appstatus.NewHandler(statusService, hub)

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		kindergartenHandler.RegisterRoutes(v1)
		statusHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			requestHandler.RegisterRoutes(protected)
			orderHandler.RegisterRoutes(protected)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			authHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			kindergartenHandler.RegisterAdminRoutes(admin)
			requestHandler.RegisterAdminRoutes(admin)
			statusHandler.RegisterAdminRoutes(admin)

			if store := buildStorage(cfg); store != nil {
				upload.NewHandler(store).RegisterAdminRoutes(admin)
			}
		}
	}

	logrus.WithField("addr", cfg.ServerAddr).Info("starting server")
	if err := r.Run(cfg.ServerAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func buildVerifier(cfg *config.Config) auth.Verifier {
	switch cfg.OTPMode {
	case "twilio":
		return auth.NewTwilioVerifier(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.ServiceSID)
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return auth.NewCodeVerifier(rdb, auth.LogSender{}, cfg.Redis.OTPTTL)
	default:
		logrus.Warn("using dev OTP verifier")
		return auth.DevVerifier{Code: cfg.DevOTPCode}
	}
}

func buildStorage(cfg *config.Config) *storage.Client {
	if cfg.MinIO.Endpoint == "" {
		logrus.Warn("minio endpoint not configured, uploads disabled")
		return nil
	}
	store, err := storage.NewClient(
		cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey,
		cfg.MinIO.Bucket, cfg.MinIO.UseSSL,
	)
	if err != nil {
		logrus.WithError(err).Fatal("minio init failed")
	}
	return store
}
