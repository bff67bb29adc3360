package routes

import (
	_ "bitumen_production/docs" // swag descriptor
	"bitumen_production/internal/adapter/http/handlers"
	"bitumen_production/internal/adapter/persistence/postgres"
	"bitumen_production/internal/adapter/persistence/repository"
	"bitumen_production/internal/config"
	"bitumen_production/internal/infrastructure/database"
	"bitumen_production/internal/infrastructure/events"
	"bitumen_production/internal/infrastructure/metrics"
	"bitumen_production/internal/usecase"
	"bitumen_production/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// stores groups the three persistence contracts of the selected driver.
type stores struct {
	ledger     interfaces.IMaterialLedger
	conversion interfaces.IConversionRepository
	records    interfaces.IProductionRecordRepository
	close      func()
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cleanup, err := getRoutes(cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer cleanup()

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cleanups := []func(){st.close}

	var (
		publisher  interfaces.IProcessEventPublisher
		subscriber interfaces.IProcessEventSubscriber
	)
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[routes] redis unreachable addr=%s err=%v, status stream disabled", cfg.Redis.Addr, err)
			_ = rdb.Close()
		} else {
			bus := events.NewRedisProcessEvents(rdb, cfg.Redis.Channel)
			publisher, subscriber = bus, bus
			cleanups = append(cleanups, func() { _ = rdb.Close() })
			log.Printf("[routes] redis event bus enabled addr=%s channel=%s", cfg.Redis.Addr, cfg.Redis.Channel)
		}
	}

	var observer handlers.Observer
	if cfg.Metrics.Enabled {
		m := metrics.New()
		router.Use(m.Middleware())
		router.GET("/metrics", m.Handler())
		observer = m
	}

	blendOpts, err := cfg.BlendOptions()
	if err != nil {
		return nil, err
	}

	conversionUseCase := usecase.NewConversionUseCase(st.conversion, st.ledger, publisher)
	statusUseCase := usecase.NewStatusFeedUseCase(st.conversion, subscriber)
	blendUseCase := usecase.NewBlendSessionUseCase(st.ledger, st.records, blendOpts)
	ledgerUseCase := usecase.NewLedgerUseCase(st.ledger)
	recordUseCase := usecase.NewProductionRecordUseCase(st.records)

	conversionHandler := handlers.NewConversionHandler(conversionUseCase, observer)
	statusHandler := handlers.NewStatusHandler(statusUseCase, observer)
	statusHandler.SetPollInterval(cfg.Feed.PollInterval)
	blendHandler := handlers.NewBlendSessionHandler(blendUseCase, observer)
	stockHandler := handlers.NewStockHandler(ledgerUseCase)
	recordHandler := handlers.NewProductionRecordHandler(recordUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConversionRoutes(v1, conversionHandler, statusHandler)
	addBlendSessionRoutes(v1, blendHandler)
	addStockRoutes(v1, stockHandler)
	addProductionRecordRoutes(v1, recordHandler)

	return func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}, nil
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return stores{}, err
		}
		log.Printf("[routes] storage driver=postgres")
		return stores{
			ledger:     postgres.NewMaterialStockRepo(pool),
			conversion: postgres.NewConversionBatchRepo(pool),
			records:    postgres.NewProductionRecordRepo(pool),
			close:      pool.Close,
		}, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		tables := repository.Tables{
			Stock:   cfg.DynamoDB.StockTable,
			Batches: cfg.DynamoDB.BatchesTable,
			Records: cfg.DynamoDB.RecordsTable,
		}
		log.Printf("[routes] storage driver=dynamodb stock=%s batches=%s records=%s", tables.Stock, tables.Batches, tables.Records)
		return stores{
			ledger:     repository.NewMaterialStockDynamoRepository(ddb, tables.Stock),
			conversion: repository.NewConversionDynamoRepository(ddb, tables),
			records:    repository.NewProductionRecordDynamoRepository(ddb, tables),
			close:      func() {},
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
