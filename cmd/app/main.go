package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"marketplace/cmd"
	_ "marketplace/docs"
	httpserver "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/geo"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title		Street Food Marketplace API
//	@version	1.0
//	@BasePath	/

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	producer, err := kafka.NewOrderChangedProducer(
		configs.KafkaBrokers, configs.KafkaOrderChangedTopic, logger)
	if err != nil {
		log.Fatalf("Error creating Kafka producer: %v", err)
	}
	defer producer.Close()

	geocoder, err := geo.NewNominatimClient(configs.GeocoderBaseURL, configs.GeocoderUserAgent)
	if err != nil {
		log.Fatalf("Error creating geocoder client: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, producer, geocoder)

	jobManager := jobs.NewJobManager(
		app.CreateBackfillDeliveryCoordinatesCommandHandler(),
		configs.GeocodeBackfillSpec,
		configs.GeocodeBackfillBatchSize,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	// Absence of a .env file is fine in containerized deployments where the
	// environment comes from the orchestrator.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	var defaultSupplierID kernel.UUID
	if configs.DefaultSupplierID != "" {
		var err error
		if defaultSupplierID, err = kernel.UUIDFromString(configs.DefaultSupplierID); err != nil {
			log.Fatalf("Error parsing DEFAULT_SUPPLIER_ID: %v", err)
		}
	}

	server := httpserver.NewServer(httpserver.Handlers{
		CreateOrder:          app.CreateCreateOrderCommandHandler(),
		CancelOrder:          app.CreateCancelOrderCommandHandler(),
		AdvanceOrderStatus:   app.CreateAdvanceOrderStatusCommandHandler(),
		AcceptDelivery:       app.CreateAcceptDeliveryCommandHandler(),
		UpdateDeliveryStatus: app.CreateUpdateDeliveryStatusCommandHandler(),
		CreateProduct:        app.CreateCreateProductCommandHandler(),
		UpdateProduct:        app.CreateUpdateProductCommandHandler(),
		DeleteProduct:        app.CreateDeleteProductCommandHandler(),

		OrderDetails:        app.CreateGetOrderQueryHandler(),
		VendorOrders:        app.CreateGetVendorOrdersQueryHandler(),
		SupplierOrders:      app.CreateGetSupplierOrdersQueryHandler(),
		OrderStats:          app.CreateGetOrderStatsQueryHandler(),
		AvailableProducts:   app.CreateGetAvailableProductsQueryHandler(),
		SupplierProducts:    app.CreateGetSupplierProductsQueryHandler(),
		AvailableDeliveries: app.CreateGetAvailableDeliveriesQueryHandler(),
		AgentDeliveries:     app.CreateGetAgentDeliveriesQueryHandler(),
		DeliveryDetails:     app.CreateGetDeliveryDetailsQueryHandler(),
	}, defaultSupplierID)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
