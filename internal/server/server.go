package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/thorvi/playtrack/internal/config"
	"github.com/thorvi/playtrack/internal/modules/core"
	"github.com/thorvi/playtrack/internal/modules/game"
	gamecommands "github.com/thorvi/playtrack/internal/modules/game/commands"
	gamedomain "github.com/thorvi/playtrack/internal/modules/game/domain"
	gamequeries "github.com/thorvi/playtrack/internal/modules/game/queries"
	"github.com/thorvi/playtrack/internal/modules/session"
	sessioncommands "github.com/thorvi/playtrack/internal/modules/session/commands"
	sessiondomain "github.com/thorvi/playtrack/internal/modules/session/domain"
	sessionqueries "github.com/thorvi/playtrack/internal/modules/session/queries"
	"github.com/thorvi/playtrack/internal/record"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer wires the stores onto the given record client, registers the
// mediator pipeline and handlers, and builds the HTTP surface. Handler
// registration is process-global, so this is called once per process.
func NewHTTPServer(conf config.Config, client record.Client) (*HTTPServer, error) {
	gameStore := game.NewStore(client, conf.Logger)
	sessionStore := session.NewStore(client, conf.RecordStoreURL, conf.PollInterval, conf.Logger)

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: conf.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: conf.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	// game

	getGamesHandler := gamequeries.NewGetGamesQueryHandler(gameStore)
	err := mediator.RegisterRequestHandler[gamequeries.GetGamesQuery, []gamedomain.Game](getGamesHandler)
	if err != nil {
		return nil, err
	}

	getGameHandler := gamequeries.NewGetGameQueryHandler(gameStore)
	err = mediator.RegisterRequestHandler[gamequeries.GetGameQuery, *gamedomain.Game](getGameHandler)
	if err != nil {
		return nil, err
	}

	toggleFavoriteHandler := gamecommands.NewToggleFavoriteCommandHandler(gameStore)
	err = mediator.RegisterRequestHandler[gamecommands.ToggleFavoriteCommand, gamedomain.Game](toggleFavoriteHandler)
	if err != nil {
		return nil, err
	}

	// session

	getSessionsHandler := sessionqueries.NewGetSessionsQueryHandler(sessionStore)
	err = mediator.RegisterRequestHandler[sessionqueries.GetSessionsQuery, []sessiondomain.Session](getSessionsHandler)
	if err != nil {
		return nil, err
	}

	getSessionHandler := sessionqueries.NewGetSessionQueryHandler(sessionStore)
	err = mediator.RegisterRequestHandler[sessionqueries.GetSessionQuery, *sessiondomain.Session](getSessionHandler)
	if err != nil {
		return nil, err
	}

	scheduleSessionHandler := sessioncommands.NewScheduleSessionCommandHandler(gameStore, sessionStore)
	err = mediator.RegisterRequestHandler[sessioncommands.ScheduleSessionCommand, sessiondomain.Session](
		scheduleSessionHandler,
	)
	if err != nil {
		return nil, err
	}

	cancelSessionHandler := sessioncommands.NewCancelSessionCommandHandler(sessionStore)
	err = mediator.RegisterRequestHandler[sessioncommands.CancelSessionCommand, core.Unit](cancelSessionHandler)
	if err != nil {
		return nil, err
	}

	completeSessionHandler := sessioncommands.NewCompleteSessionCommandHandler(sessionStore)
	err = mediator.RegisterRequestHandler[sessioncommands.CompleteSessionCommand, sessiondomain.Session](
		completeSessionHandler,
	)
	if err != nil {
		return nil, err
	}

	attachPhotoHandler := sessioncommands.NewAttachPhotoCommandHandler(sessionStore)
	err = mediator.RegisterRequestHandler[sessioncommands.AttachPhotoCommand, sessiondomain.Session](attachPhotoHandler)
	if err != nil {
		return nil, err
	}

	// http

	router := chi.NewRouter()
	router.Use(core.CorrelationIDHTTPMiddleware)

	router.Get("/games", gamequeries.HandleGetGames)
	router.Get("/games/{id}", gamequeries.HandleGetGame)
	router.Put("/games/{id}/actions/toggle-favorite", gamecommands.HandleToggleFavorite)

	router.Get("/sessions", sessionqueries.HandleGetSessions)
	router.Get("/sessions/watch", session.HandleWatch(sessionStore, conf.Logger))
	router.Get("/sessions/{id}", sessionqueries.HandleGetSession)
	router.Post("/sessions", sessioncommands.HandleScheduleSession)
	router.Delete("/sessions/{id}", sessioncommands.HandleCancelSession)
	router.Put("/sessions/{id}/actions/complete", sessioncommands.HandleCompleteSession)
	router.Put("/sessions/{id}/actions/photo", sessioncommands.HandleAttachPhoto)

	server := http.Server{
		Addr:              net.JoinHostPort("", fmt.Sprintf("%d", conf.Port)),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &HTTPServer{server: &server}, nil
}

// Handler exposes the router for in-process tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
