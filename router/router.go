package router

import (
	"eventers-legacy-adapter/adapter"
	"eventers-legacy-adapter/handler"
	"eventers-legacy-adapter/healthcheck"
	"eventers-legacy-adapter/middleware"
	"eventers-legacy-adapter/response"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Router returns the router for all the API handlers.
func Router(service *adapter.Adapter) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.NotFoundHandler = middleware.SetCorrelationIDHeader(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	}))

	r.Use(middleware.ResponseTimeLogging)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SetContentTypeHeader)

	r.HandleFunc("/healthcheck", healthcheck.Self).Methods(http.MethodGet)
	baseRouter := r.PathPrefix("/v1").Subrouter()

	eventRouter := baseRouter.PathPrefix("/event").Subrouter()
	eventRouter.HandleFunc("", handler.GetEvent(service)).Methods(http.MethodGet)
	eventRouter.HandleFunc("/translate", handler.TranslateEvent()).Methods(http.MethodPost)

	return r
}
