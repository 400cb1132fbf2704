package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-g-everett/scenetx/scene"
	"github.com/matt-g-everett/scenetx/stream"
)

type fixedSource struct {
	frame *stream.Frame
}

func (s fixedSource) Latest() *stream.Frame {
	return s.frame
}

func TestSceneEndpoint(t *testing.T) {
	frame := stream.NewFrame(0, []scene.ObjectState{{Name: "leaf", Scale: 1}})

	cases := []struct {
		name       string
		method     string
		frame      *stream.Frame
		wantStatus int
	}{
		{"latest", http.MethodGet, frame, http.StatusOK},
		{"no_frame", http.MethodGet, nil, http.StatusServiceUnavailable},
		{"post", http.MethodPost, frame, http.StatusMethodNotAllowed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewApi(t.TempDir(), fixedSource{c.frame})
			rec := httptest.NewRecorder()
			a.Handler().ServeHTTP(rec, httptest.NewRequest(c.method, "/scene", nil))

			if rec.Code != c.wantStatus {
				t.Fatalf("expected status %d, got %d", c.wantStatus, rec.Code)
			}
			if c.wantStatus != http.StatusOK {
				return
			}

			var got stream.Frame
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if len(got.Objects) != 1 || got.Objects[0].Name != "leaf" {
				t.Fatalf("unexpected frame %+v", got)
			}
		})
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<canvas></canvas>"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	a := NewApi(dir, fixedSource{})
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<canvas>") {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}
