package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pirayth/gardenshop/configs"
	"github.com/pirayth/gardenshop/internal/adapter/cache"
	"github.com/pirayth/gardenshop/internal/adapter/http"
	"github.com/pirayth/gardenshop/internal/adapter/http/middleware"
	"github.com/pirayth/gardenshop/internal/adapter/notify"
	"github.com/pirayth/gardenshop/internal/adapter/slot"
	"github.com/pirayth/gardenshop/internal/catalog"
	domain "github.com/pirayth/gardenshop/internal/entity"
	"github.com/pirayth/gardenshop/internal/logging"
	"github.com/pirayth/gardenshop/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile)
	log := logging.New("app")

	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	fail := func(err error) (*App, func(), error) {
		cleanup()
		return nil, nil, err
	}

	// persisted cart slot
	var (
		cartSlot usecase.CartSlot
		idem     usecase.IdempotencyStore
	)
	switch cfg.Slot.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fail(err)
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })
		cartSlot = slot.NewRedisSlot(rdb, cfg.Slot.TTL)
		idem = cache.NewRedisIdempotencyStore(rdb, cfg.Checkout.IdempotencyTTL)

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return fail(err)
		}
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			_ = db.Close()
			return fail(err)
		}
		cleanups = append(cleanups, func() { _ = db.Close() })
		cartSlot = slot.NewMySQLSlot(db)
		idem = cache.NewMemoryIdempotencyStore(cfg.Checkout.IdempotencyTTL)

	default: // memory (dev)
		cartSlot = slot.NewMemorySlot()
		idem = cache.NewMemoryIdempotencyStore(cfg.Checkout.IdempotencyTTL)
	}

	// optional cart-change notification channel
	storeOpts := []usecase.CartStoreOption{}
	switch cfg.Notify.Driver {
	case "rabbit":
		conn, err := amqp.Dial(cfg.Rabbit.URL)
		if err != nil {
			return fail(err)
		}
		cleanups = append(cleanups, func() { _ = conn.Close() })
		ch, err := conn.Channel()
		if err != nil {
			return fail(err)
		}
		pub, err := notify.NewRabbitPublisher(ch)
		if err != nil {
			return fail(err)
		}
		storeOpts = append(storeOpts, usecase.WithPublisher(pub))

	case "kafka":
		pub, err := notify.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return fail(err)
		}
		cleanups = append(cleanups, func() { _ = pub.Close() })
		storeOpts = append(storeOpts, usecase.WithPublisher(pub))
	}

	cat, err := catalog.New()
	if err != nil {
		return fail(err)
	}

	store := usecase.NewCartStore(cartSlot, logging.New("cart"), storeOpts...)
	checkoutUC := usecase.NewCheckout(store, idem, usecase.PaymentInstructions{
		LTCAddress:   cfg.Checkout.LTCAddress,
		PayPalEmail:  cfg.Checkout.PayPalEmail,
		OrderFormURL: cfg.Checkout.OrderFormURL,
	})

	sess := middleware.NewSession(cfg)
	router := http.NewRouter(cfg,
		http.NewCartHandler(store, cat),
		http.NewCatalogHandler(cat),
		http.NewCheckoutHandler(checkoutUC),
		sess,
	)

	log.Info("gardenshop wired",
		"slot_driver", cfg.Slot.Driver,
		"notify_driver", cfg.Notify.Driver,
		"catalog_entries", len(cat.List(domain.KindPet, "", catalog.SortNone))+len(cat.List(domain.KindSheckles, "", catalog.SortNone)),
	)

	return &App{Router: router}, cleanup, nil
}
