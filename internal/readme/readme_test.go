package readme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRawBase(t *testing.T) {
	tests := []struct {
		repo    string
		branch  string
		want    string
		wantErr bool
	}{
		{
			repo:   "https://github.com/acme/weather-skill.git",
			branch: "master",
			want:   "https://raw.githubusercontent.com/acme/weather-skill/master",
		},
		{
			repo:   "https://github.com/acme/weather-skill",
			branch: "main",
			want:   "https://raw.githubusercontent.com/acme/weather-skill/main",
		},
		{
			repo:   "https://gitlab.example.com/acme/timer-skill.git",
			branch: "master",
			want:   "https://gitlab.example.com/acme/timer-skill/raw/master",
		},
		{
			repo:    "not a url",
			branch:  "master",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			got, err := RawBase(tt.repo, tt.branch)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("RawBase(%q) succeeded, want error", tt.repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("RawBase: %v", err)
			}
			if got != tt.want {
				t.Errorf("RawBase = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetchProbesVariants(t *testing.T) {
	// Only the second variant (README.rst) exists.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/acme/rst-skill/raw/master/README.rst" {
			w.Write([]byte("rst readme body"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := New("master")
	content, err := f.Fetch(context.Background(), srv.URL+"/acme/rst-skill.git")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if content != "rst readme body" {
		t.Errorf("content = %q", content)
	}
}

func TestFetchNoReadme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	f := New("master")
	if _, err := f.Fetch(context.Background(), srv.URL+"/acme/bare-skill.git"); err == nil {
		t.Fatal("expected error when no README variant exists")
	}
}
