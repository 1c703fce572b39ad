package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fossabot/Tsundoku/pkg/storage"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Result  any    `json:"result,omitempty"`
}

// Acquirer starts tracking a download for a show's episode.
type Acquirer interface {
	BeginAcquisition(ctx context.Context, showID int64, episode int32, link string) (int64, error)
}

// Server houses all dependencies for the admin api to work such as loggers, storage, the acquisition manager, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	storage    storage.Storage
	acquirer   Acquirer
	validate   *validator.Validate
}

// New creates a new admin server
func New(logger *zap.SugaredLogger, store storage.Storage, acquirer Acquirer) Server {
	return Server{
		baseLogger: logger,
		storage:    store,
		acquirer:   acquirer,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func writeResultResponse(w http.ResponseWriter, status int, result any) error {
	return writeResponse(w, status, APIResponse{Success: true, Result: result})
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, APIResponse{Success: false, Error: err.Error()})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and blocks until the context is cancelled.
func (s Server) Serve(ctx context.Context, port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/shows", s.ListShows()).Methods(http.MethodGet)
	v1.HandleFunc("/shows", s.CreateShow()).Methods(http.MethodPost)
	v1.HandleFunc("/shows/{id:[0-9]+}", s.GetShow()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{id:[0-9]+}", s.DeleteShow()).Methods(http.MethodDelete)
	v1.HandleFunc("/shows/{id:[0-9]+}/entries", s.ListShowEntries()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{id:[0-9]+}/entries", s.BeginAcquisition()).Methods(http.MethodPost)
	v1.HandleFunc("/shows/{id:[0-9]+}/entries/{entryID:[0-9]+}", s.GetShowEntry()).Methods(http.MethodGet)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.baseLogger.Error(err.Error())
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResultResponse(w, http.StatusOK, "ok")
	}
}
