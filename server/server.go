package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ranfysvalle02/secure-llm-output/config"
	"github.com/ranfysvalle02/secure-llm-output/handler"
	"github.com/ranfysvalle02/secure-llm-output/logging"
)

// NewRouter wires the demo page handler onto the single route.
func NewRouter(cfg *config.Config) http.Handler {
	pageHandler := handler.NewPageHandler(cfg.PageTitle)

	router := httprouter.New()
	router.GET("/", pageHandler.Index)
	router.POST("/", pageHandler.Submit)
	return router
}

// New builds the demo HTTP server for the given configuration.
func New(cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: NewRouter(cfg),
	}
}

// Run starts the server and blocks until the listener fails.
func Run(cfg *config.Config) {
	log := logging.GetLogger()

	srv := New(cfg)

	log.Infof("Starting demo server on %s", cfg.ListenAddress)
	log.Warnln("This server reflects user input without escaping. Keep it on a local interface.")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
