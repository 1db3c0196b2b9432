package main

import (
	"context"
	"fmt"
	"log"
	"net/url"

	_ "campus-check-dashboard/docs"
	"campus-check-dashboard/src/config"
	"campus-check-dashboard/src/database"
	"campus-check-dashboard/src/routes"
	"campus-check-dashboard/src/services/aggregation"
	"campus-check-dashboard/src/services/apiclient"
	"campus-check-dashboard/src/services/dashboard"
	"campus-check-dashboard/src/services/session"
	"campus-check-dashboard/src/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if !cfg.DurableSession() {
		log.Println("⚠️ SESSION_STORE=memory: admins must log in again after every restart, set SESSION_STORE=redis (or mongo) in production")
	}

	ctx := context.Background()

	// storage สำหรับ session token
	store, closeStore, err := openTokenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Error opening session store: %v", err)
	}
	defer closeStore()

	base := apiclient.New(cfg.APIBaseURL, nil, cfg.HTTPTimeout)
	gateway := session.NewGateway(store, base)
	dash := dashboard.NewService(base.WithTokenSource(gateway), aggregation.Options{
		GateCount: cfg.GateCount,
		Location:  cfg.Location,
	})

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Deps{Gateway: gateway, Dashboard: dash})

	log.Printf("✅ Using campus-check server at %s (session store: %s)", cfg.APIBaseURL, cfg.SessionStore)
	log.Println("Server is running on port " + cfg.AppURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		log.Fatal(err)
	}
}

func openTokenStore(ctx context.Context, cfg *config.Config) (storage.TokenStore, func(), error) {
	switch cfg.SessionStore {
	case "redis":
		client, err := database.InitRedis(ctx, cfg.RedisURI, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client, "campus-check"), func() { _ = client.Close() }, nil
	case "mongo":
		client, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		coll := database.GetCollection(client, cfg.MongoDB, "session")
		return storage.NewMongoStore(coll), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}
