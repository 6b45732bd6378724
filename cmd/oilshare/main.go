package main

import (
	"context"
	"log/slog"
	"os"

	"oilshare/config"
	"oilshare/internal/delivery"
	"oilshare/internal/delivery/api"
	"oilshare/internal/delivery/api/router/handler"
	"oilshare/internal/domain/service"
	logs "oilshare/internal/infra/log"
	"oilshare/internal/infra/persistence/memory"
	"oilshare/internal/infra/pubsub"
	"oilshare/internal/infra/qrcode"
	"oilshare/internal/infra/registry"
	"oilshare/internal/infra/route"
	"oilshare/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		memory.LoadSeed,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			registry.New,
			memory.NewSessionRepository,
			memory.NewReportRepository,
			memory.NewComplianceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
			route.NewPlanner,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(0, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLogisticsService,
			impl.NewReportService,
			impl.NewComplianceService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLogisticsHandler,
			handler.NewReportHandler,
			handler.NewComplianceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
