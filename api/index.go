package handler

import (
	"glamp/config"
	"glamp/di"
	"glamp/shared/logger"
	"glamp/transport/http"
	stdhttp "net/http"
	"sync"
)

var (
	server *http.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. Warm invocations reuse the wired
// service and its redis pool.
func Handler(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
