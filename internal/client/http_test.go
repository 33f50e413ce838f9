package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestCreateHTTPClient(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantTimeout time.Duration
		wantProxy   string
	}{
		{name: "defaults", opts: Options{}, wantTimeout: defaultTimeout},
		{name: "custom timeout", opts: Options{Timeout: 5 * time.Second}, wantTimeout: 5 * time.Second},
		{name: "proxy", opts: Options{ProxyURL: "http://localhost:8080"}, wantTimeout: defaultTimeout, wantProxy: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CreateHTTPClient(tt.opts)
			if c.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v, want %v", c.Timeout, tt.wantTimeout)
			}
			if tt.wantProxy == "" {
				return
			}
			tr, ok := c.Transport.(*http.Transport)
			if !ok {
				t.Fatalf("Transport is %T", c.Transport)
			}
			req := &http.Request{URL: &url.URL{Scheme: "https", Host: "example.com"}}
			proxy, err := tr.Proxy(req)
			if err != nil {
				t.Fatalf("Proxy() error = %v", err)
			}
			if proxy == nil || proxy.String() != tt.wantProxy {
				t.Errorf("Proxy() = %v, want %s", proxy, tt.wantProxy)
			}
		})
	}
}

func TestReadResponseBody(t *testing.T) {
	const body = "work_year,job_title\n2023,Data Scientist\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gzip" {
			var b bytes.Buffer
			zw := gzip.NewWriter(&b)
			_, _ = io.WriteString(zw, body)
			_ = zw.Close()
			w.Header().Set("Content-Encoding", "gzip")
			_, _ = w.Write(b.Bytes())
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	defer srv.Close()

	// A bare transport keeps the gzip body as sent.
	c := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	for _, path := range []string{"/plain", "/gzip"} {
		t.Run(path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+path, nil)
			req.Header = DefaultHeaders()
			resp, err := c.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			got, err := ReadResponseBody(resp)
			if err != nil {
				t.Fatalf("ReadResponseBody() error = %v", err)
			}
			if string(got) != body {
				t.Errorf("ReadResponseBody() = %q, want %q", got, body)
			}
		})
	}
}
