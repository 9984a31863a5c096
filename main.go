package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"example.com/storefront/internal/config"
	"example.com/storefront/internal/infra/persistence/kv"
	"example.com/storefront/internal/infra/persistence/memory"
	"example.com/storefront/internal/infra/persistence/mysql"
	"example.com/storefront/internal/infra/persistence/postgres"
	"example.com/storefront/internal/infra/persistence/redisstore"
	"example.com/storefront/internal/infra/persistence/sqlite"
	"example.com/storefront/internal/infra/security"
	"example.com/storefront/internal/infra/timer"
	httpapi "example.com/storefront/internal/interface/http"
	cartuc "example.com/storefront/internal/usecase/cart"
	cataloguc "example.com/storefront/internal/usecase/catalog"
	checkoutuc "example.com/storefront/internal/usecase/checkout"
	newsletteruc "example.com/storefront/internal/usecase/newsletter"
	"example.com/storefront/internal/usecase/notice"
)

const (
	shutdownTimeout = 10 * time.Second
	openTimeout     = 5 * time.Second
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Nyamakima TechTrend storefront",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the storefront pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := memory.NewProductRepository(memory.DefaultCatalog())
		if err != nil {
			return err
		}
		products, err := cataloguc.NewService(repo).All(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, httpapi.FormatPrice(p.Price))
		}
		return w.Flush()
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd, catalogCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("storefront exited")
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}

func openStore(ctx context.Context, cfg config.StoreConfig) (kv.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()

	switch cfg.Driver {
	case "memory":
		return memory.NewKVStore(), nil
	case "redis":
		s := redisstore.NewKVStore(cfg.DSN)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil
	case "mysql":
		return mysql.Open(ctx, cfg.DSN)
	case "postgres":
		return postgres.Open(ctx, cfg.DSN)
	case "sqlite":
		return sqlite.Open(ctx, cfg.DSN)
	default:
		return nil, errors.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return errors.Wrapf(err, "open %s store", cfg.Store.Driver)
	}
	defer store.Close()

	products, err := memory.NewProductRepository(memory.DefaultCatalog())
	if err != nil {
		return err
	}
	catalogSvc := cataloguc.NewService(products)

	scheduler := timer.NewReal()
	defer scheduler.StopAll()
	board := notice.NewBoard(scheduler)

	cartSvc := cartuc.NewService(kv.NewCartRepository(store), catalogSvc, log)

	api, err := httpapi.NewAPI(httpapi.Dependencies{
		CatalogService:    catalogSvc,
		CartService:       cartSvc,
		CheckoutService:   checkoutuc.NewService(cartSvc, kv.NewOrderRepository(store), log),
		NewsletterService: newsletteruc.NewService(board, scheduler, log),
		Notices:           board,
		Sessions:          security.NewSessionService(cfg.Session.Secret, cfg.Session.TTL),
		Store:             store,
		Logger:            log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": srv.Addr, "store": cfg.Store.Driver}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
