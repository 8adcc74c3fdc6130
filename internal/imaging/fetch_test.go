package imaging

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"http://example.com/a.png", true},
		{"https://example.com/a.png", true},
		{"/tmp/a.png", false},
		{"a.png", false},
		{"ftp://example.com/a.png", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.s); got != tt.want {
			t.Errorf("IsURL(%q): got %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestFetch(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 12, 8))); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	img, err := Fetch(srv.URL + "/canvas.png")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 12x8", bounds.Dx(), bounds.Dy())
	}
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Fetch(srv.URL + "/missing.png"); err == nil {
		t.Error("Fetch should fail for a 404 response")
	}
}

func TestFetch_NotAnImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	if _, err := Fetch(srv.URL + "/body.txt"); err == nil {
		t.Error("Fetch should fail for a non-image body")
	}
}
