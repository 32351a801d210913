package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"career-recommender/internal/config"
	"career-recommender/internal/domain/fiber/handler"
	"career-recommender/internal/middleware"
	"career-recommender/internal/model"
	"career-recommender/internal/repository"
	"career-recommender/internal/service"
	"career-recommender/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST, GET, PUT, OPTIONS",
		AllowHeaders: "Authorization, Content-Type",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	profileRepo := repository.NewProfileRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)

	provider := buildModelProvider(ctx)

	recommendationUc := usecase.NewRecommendationUsecase(profileRepo, quizRepo, recommendationRepo, provider)
	profileUc := usecase.NewProfileUsecase(profileRepo, quizRepo)

	authed := app.Group("/", middleware.Auth(config.LoadAuthConfig().JWTSecret))
	handler.NewRecommendationHandler(recommendationUc).RegisterRoutes(authed)
	handler.NewProfileHandler(profileUc).RegisterRoutes(authed)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// buildModelProvider picks the completion backend. OpenRouter is the default;
// an unset key is fine and just means every generation takes the rule-based
// path.
func buildModelProvider(ctx context.Context) service.ModelProviderInterface {
	if os.Getenv("MODEL_PROVIDER") == "gemini" {
		gemini, err := service.NewGeminiService(ctx, config.LoadGeminiConfig())
		if err != nil {
			log.Fatal(err)
		}
		return gemini
	}
	return service.NewOpenRouterService(config.LoadOpenRouterConfig())
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.Profile{}, &model.QuizResponse{}, &model.CareerRecommendation{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
