package routes

import (
	"context"
	"errors"
	"fmt"
	"io"

	"storefront/configs"
	request "storefront/internal/adapter/http/dto/request"
	"storefront/internal/adapter/http/handlers"
	"storefront/internal/adapter/persistence/repository"
	"storefront/internal/infrastructure/cache"
	"storefront/internal/infrastructure/clock"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/messaging"
	"storefront/internal/infrastructure/payments"
	"storefront/internal/logging"
	"storefront/internal/usecase"
	"storefront/internal/usecase/interfaces"
)

type Handlers struct {
	Cart      *handlers.CartHandler
	Checkout  *handlers.CheckoutHandler
	GiftCards *handlers.GiftCardHandler
	Auth      *handlers.AuthHandler
	Favorites *handlers.FavoritesHandler
}

// Application is the wired service: use cases over one key/value store plus
// the resources to release on shutdown.
type Application struct {
	Handlers Handlers
	Cart     *usecase.CartUseCase

	closers []io.Closer
}

// NewApplication connects the configured store backend and wires every use
// case and handler.
func NewApplication(ctx context.Context, cfg configs.Config) (*Application, error) {
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	app := &Application{}
	store, err := app.connectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, cfg.Payments.Mock)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	var recorder interfaces.IPurchaseRecorder = messaging.NewLogPurchaseRecorder()
	if brokers := cfg.Purchases.Kafka.Brokers; len(brokers) > 0 {
		kafkaRecorder := messaging.NewKafkaPurchaseRecorder(cfg.Purchases.Kafka.Topic, brokers...)
		app.closers = append(app.closers, kafkaRecorder)
		recorder = kafkaRecorder
	}

	if err := app.wire(ctx, cfg, store, gateway, recorder); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func (a *Application) wire(
	ctx context.Context,
	cfg configs.Config,
	store interfaces.IKeyValueStore,
	gateway interfaces.IPaymentGateway,
	recorder interfaces.IPurchaseRecorder,
) error {
	clk := clock.System{}
	delayer := clock.TimerDelayer{}

	a.Cart = usecase.NewCartUseCase(repository.NewCartRepository(store), recorder)

	giftCards := usecase.NewGiftCardUseCase(repository.NewGiftCardLedgerRepository(store), clk, delayer, usecase.GiftCardConfig{
		PurchaseDelay: cfg.Delays.Purchase,
		RedeemDelay:   cfg.Delays.Redeem,
	})

	checkout, err := usecase.NewCheckoutUseCase(ctx, a.Cart, giftCards, repository.NewAppliedGiftCardRepository(store), gateway, delayer, usecase.CheckoutConfig{
		Pricing: usecase.PricingRules{
			TaxRate:               cfg.Checkout.TaxRate,
			FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
			ShippingCost:          cfg.Checkout.ShippingCost,
		},
		PaymentDelay: cfg.Delays.Payment,
	})
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	auth, err := usecase.NewAuthUseCase(ctx, repository.NewUserDirectoryRepository(store), clk, delayer, usecase.AuthConfig{
		SignInDelay: cfg.Delays.SignIn,
		SignUpDelay: cfg.Delays.SignUp,
	})
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	favorites, err := usecase.NewFavoritesUseCase(ctx, repository.NewFavoritesRepository(store))
	if err != nil {
		return fmt.Errorf("favorites: %w", err)
	}

	a.Handlers = Handlers{
		Cart:      handlers.NewCartHandler(a.Cart),
		Checkout:  handlers.NewCheckoutHandler(checkout),
		GiftCards: handlers.NewGiftCardHandler(giftCards),
		Auth:      handlers.NewAuthHandler(auth),
		Favorites: handlers.NewFavoritesHandler(favorites),
	}
	return nil
}

func (a *Application) connectStore(ctx context.Context, cfg configs.Config) (interfaces.IKeyValueStore, error) {
	log := logging.New("store")
	ns := cfg.Store.Namespace

	switch cfg.Store.Backend {
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:   cfg.Store.DynamoDB.Region,
			Endpoint: cfg.Store.DynamoDB.Endpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("[store][startup] using dynamodb", "table", cfg.Store.DynamoDB.Table)
		return repository.NewDynamoKVStore(ddb, cfg.Store.DynamoDB.Table, ns), nil
	case "redis":
		client, err := cache.ConnectRedis(ctx, cache.RedisOptions{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, client)
		log.Info("[store][startup] using redis", "addr", cfg.Store.Redis.Addr)
		return repository.NewRedisKVStore(client, ns), nil
	default:
		log.Warn("[store][startup] using the in-memory store; data is lost on restart")
		return repository.NewMemoryKVStore(ns), nil
	}
}

// Close waits for pending purchase records and releases the connections.
func (a *Application) Close() error {
	if a.Cart != nil {
		a.Cart.Wait()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
