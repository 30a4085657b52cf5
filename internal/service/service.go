package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/openclins/clins-converter/internal/service/clins/adapters/fhir"
	clinsHTTP "github.com/openclins/clins-converter/internal/service/clins/adapters/http"
	"github.com/openclins/clins-converter/internal/service/clins/app"
	"github.com/openclins/clins-converter/internal/service/clins/app/commands"
	"github.com/openclins/clins-converter/internal/service/clins/app/queries"
	"github.com/openclins/clins-converter/internal/service/config"
	"github.com/openclins/clins-converter/internal/service/runtime"
)

type Service struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

func NewConverterService() (*Service, error) {
	appConfig, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(appConfig)

	// The assembler is the only shared piece; its uuid generator is safe for
	// concurrent use, everything else is per-request.
	assembler := fhir.NewAssembler(nil)

	convertHandler := commands.NewConvertDocumentHandler(assembler)
	cmdBus := app.NewCommandBus(convertHandler)

	capabilitiesHandler := queries.NewGetCapabilitiesQueryHandler()
	queryBus := app.NewQueryBus(capabilitiesHandler)

	clinsHTTPServer := clinsHTTP.NewServer(cmdBus, queryBus, logger)

	httpServer, err := runtime.NewHTTPServer(appConfig, logger, clinsHTTPServer)
	if err != nil {
		return nil, err
	}

	return &Service{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "clins-converter").
		Logger()
}

func (s *Service) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(timeoutCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server stopped")

	return nil
}
