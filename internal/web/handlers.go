package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/idilsaglam/daylist/internal/model"
	"github.com/idilsaglam/daylist/internal/page"
	"github.com/idilsaglam/daylist/internal/ui"
)

// labelField is the form field the task label is read from.
const labelField = "taskListItem"

type pageData struct {
	Paragraphs []string
	Items      []page.Item
	Done       int
	Pending    int
}

type taskResponse struct {
	ElementID string `json:"element_id"`
	model.Entry
}

func toResponse(e model.Entry) taskResponse {
	return taskResponse{ElementID: e.ElementID(), Entry: e}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func backToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GetPage handles GET /.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc := s.sess.Document()
	items := doc.Items()
	done, pending := ui.Stats(items)
	data := pageData{Paragraphs: doc.Paragraphs(), Items: items, Done: done, Pending: pending}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

// GetTasks handles GET /tasks.
func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	entries := s.sess.List().Entries()
	s.mu.Unlock()

	out := make([]taskResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddTask handles POST /tasks from the page form or a JSON body.
func (s *Server) AddTask(w http.ResponseWriter, r *http.Request) {
	var label string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Label string `json:"label"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		label = body.Label
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		label = r.PostForm.Get(labelField)
	}

	s.mu.Lock()
	e := s.sess.Add(label)
	s.persist(r.Context())
	s.mu.Unlock()
	s.logger.Info("task added", "id", e.ElementID())

	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, toResponse(e))
		return
	}
	backToPage(w, r)
}

// SetDone handles POST /tasks/{elementID}/done. Unknown ids change nothing
// and are not an error.
func (s *Server) SetDone(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["elementID"]

	s.mu.Lock()
	found := s.sess.SetDone(id)
	e, _ := s.sess.List().Lookup(id)
	s.persist(r.Context())
	s.mu.Unlock()

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{
			"element_id": id,
			"found":      found,
			"done":       e.Done,
		})
		return
	}
	backToPage(w, r)
}

// Greet handles POST /greeting.
func (s *Server) Greet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	text := s.sess.Greet()
	s.mu.Unlock()

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]string{"greeting": text})
		return
	}
	backToPage(w, r)
}
