package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the page.
func RegisterRoutes(router *mux.Router, s *Server) {
	router.HandleFunc("/", s.GetPage).Methods(http.MethodGet)
	router.HandleFunc("/tasks", s.GetTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks", s.AddTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{elementID}/done", s.SetDone).Methods(http.MethodPost)
	router.HandleFunc("/greeting", s.Greet).Methods(http.MethodPost)
}
