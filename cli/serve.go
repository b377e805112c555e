package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"frontdesk/config"
	"frontdesk/controllers"
	"frontdesk/jobs"
	"frontdesk/routes"
	"frontdesk/services"
	"frontdesk/services/notification"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the front-desk API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()
		return serve(ctx, a)
	},
}

func serve(ctx context.Context, a *app) error {
	s := a.settings
	router, m, c := config.InitApp(s)

	cached := services.NewCachedDirectory(a.directory, a.rdb, s.CacheTTL, a.log)
	facade := services.NewBookingFacade(services.BookingFacadeOptions{
		Directory:  cached,
		Calculator: services.NewCalculator(s),
		Holidays:   a.holidays,
		Logger:     a.log,
	})

	notifier := controllers.NewNotificationController(controllers.NotificationControllerOptions{Logger: a.log}, m)
	broadcast := notification.OutcomeBroadcaster(notification.NewMelodyService(m), a.log)

	registry := services.NewGuardRegistry(func(operatorKey string) *services.Guard {
		guard := services.NewGuard(services.GuardOptions{
			Dispatcher:  cached,
			Sessions:    a.sessionStore(operatorKey),
			MinInterval: s.MutationMinInterval,
			QuietPeriod: s.DebounceQuietPeriod,
			Logger:      a.log,
		})
		guard.AddListener(cached.OnOutcome)
		guard.AddListener(broadcast)
		guard.AddListener(notifier.SessionListener())
		return guard
	})

	err := jobs.InitCronJobs(c, jobs.CronConfig{
		WarmSchedule: s.WarmCron,
		Warmer:       cached,
		Sweeper:      registry,
		GuardIdleTTL: s.GuardIdleTTL,
	}, a.log)
	if err != nil {
		return fmt.Errorf("failed to initialize cron jobs: %w", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router, routes.Controllers{
		Availability: controllers.NewAvailabilityController(controllers.AvailabilityControllerOptions{
			Facade: facade,
			Redis:  a.rdb,
			Logger: a.log,
		}),
		Category: controllers.NewCategoryController(facade),
		Billing:  controllers.NewBillingController(facade),
		Mutation: controllers.NewMutationController(controllers.MutationControllerOptions{
			Registry:    registry,
			Scope:       a.scope,
			QuietPeriod: s.DebounceQuietPeriod,
			Logger:      a.log,
		}),
		Notification: notifier,
	}, s.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + s.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Server starting on port %s (directory: %s)...", s.Port, s.DirectorySource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Đang tắt server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = m.Close()
	return srv.Shutdown(shutdownCtx)
}
