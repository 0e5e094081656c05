package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/botstore-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/botstore-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/botstore-backend/internal/infrastructure/auth"
	"github.com/DRSN-tech/botstore-backend/internal/infrastructure/whatsapp"
	boltRepo "github.com/DRSN-tech/botstore-backend/internal/repository/bolt"
	boltConv "github.com/DRSN-tech/botstore-backend/internal/repository/bolt/converter"
	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/closer"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/asaskevich/EventBus"
	"github.com/go-chi/chi/v5"
)

func Run(log logger.Logger) {
	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	cl := closer.NewCloser()

	repo, err := boltRepo.Open(cfg.Store)
	if err != nil {
		log.Errorf(err, "failed to open store %s", cfg.Store.Path)
		os.Exit(1)
	}
	cl.Add(func(ctx context.Context) error {
		return repo.Close()
	})

	prConv := boltConv.NewProductConverterImpl()
	cartConv := boltConv.NewCartConverterImpl(prConv)

	catalogStore := boltRepo.NewCatalogStore(repo, prConv)
	cartStore := boltRepo.NewCartStore(repo, cartConv)
	sessionStore := boltRepo.NewSessionStore(repo)

	bus := EventBus.New()
	subscribeChangeLog(bus, log)

	hydrateCtx, hydrateCancel := context.WithTimeout(context.Background(), 5*time.Second)
	catalogUC := usecase.NewCatalogUC(hydrateCtx, catalogStore, bus, log)
	cartUC := usecase.NewCartUC(hydrateCtx, cartStore, catalogUC, whatsapp.NewGateway(cfg.Checkout), bus, log)
	sessionUC := usecase.NewSessionUC(hydrateCtx, sessionStore, auth.NewStaticVerifier(cfg.Admin), bus, log)
	hydrateCancel()

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, sessionUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case appErr := <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Errorf(err, "shutdown error")
		return
	}

	log.Infof("Stopped")
}

// subscribeChangeLog — диагностический подписчик: каждая мутация
// каталога, корзины и сессии оставляет след в логе.
func subscribeChangeLog(bus EventBus.Bus, log logger.Logger) {
	for _, topic := range []string{
		usecase.TopicCatalogChanged,
		usecase.TopicCartChanged,
		usecase.TopicSessionChanged,
	} {
		topic := topic
		if err := bus.SubscribeAsync(topic, func() {
			log.Infof("event: %s", topic)
		}, false); err != nil {
			log.Warnf("failed to subscribe to %s: %v", topic, err)
		}
	}
}
