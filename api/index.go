package handler

import (
	"net/http"

	"courtside/config"
	"courtside/di"
	"courtside/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	app.HTTP.Adaptor().ServeHTTP(w, r)
}
