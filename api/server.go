package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/scenetx/stream"
)

// FrameSource provides the most recent frame.
type FrameSource interface {
	Latest() *stream.Frame
}

// Api serves the client pages and the current scene state.
type Api struct {
	static string
	frames FrameSource
}

// NewApi creates an instance of an Api.
func NewApi(static string, frames FrameSource) *Api {
	a := new(Api)
	a.static = static
	a.frames = frames
	return a
}

// Handler routes / to the static client and /scene to the latest frame.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(a.static)))
	mux.HandleFunc("/scene", a.handleScene)
	return mux
}

func (a *Api) handleScene(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f := a.frames.Latest()
	if f == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.Printf("Failed to write scene: %v", err)
	}
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}
