// Package dataset downloads the salaries CSV and turns it into the immutable
// record set every dashboard view is computed from.
package dataset

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"

	"github.com/fr4nk3nst1ner/salarydash/internal/client"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
)

// DefaultSource is the published data-jobs salaries file.
const DefaultSource = "https://raw.githubusercontent.com/guilhermeonrails/data-jobs/refs/heads/main/salaries.csv"

// Options controls how a dataset is fetched.
type Options struct {
	// Client is used for http(s) sources. Nil means a default client.
	Client *http.Client

	// Progress draws a download progress bar on stderr.
	Progress bool
}

// Dataset is the normalized record set of one session. It is never mutated
// after Load returns.
type Dataset struct {
	Source      string
	Records     []models.Record
	Rows        int
	Dropped     int
	Size        int
	Fingerprint uint64
	LoadedAt    time.Time
}

// Load fetches source, which may be an http(s) URL, a file:// URL or a local
// path, and normalizes it. Every failure is a *DataLoadError.
func Load(ctx context.Context, source string, opts Options) (*Dataset, error) {
	start := time.Now()
	log := ui.Logger()

	if strings.TrimSpace(source) == "" {
		return nil, &DataLoadError{Source: source, Err: errors.New("no dataset source configured")}
	}

	data, err := fetch(ctx, source, opts)
	if err != nil {
		return nil, &DataLoadError{Source: source, Err: err}
	}

	records, stats, err := Normalize(bytes.NewReader(data))
	if err != nil {
		return nil, &DataLoadError{Source: source, Err: err}
	}

	ds := &Dataset{
		Source:      source,
		Records:     records,
		Rows:        stats.Rows,
		Dropped:     stats.Dropped,
		Size:        len(data),
		Fingerprint: xxh3.Hash(data),
		LoadedAt:    time.Now(),
	}

	log.Info("dataset loaded", log.Args(
		"source", source,
		"size", humanize.Bytes(uint64(len(data))),
		"records", len(records),
		"dropped", stats.Dropped,
		"elapsed", time.Since(start).Round(time.Millisecond),
	))
	return ds, nil
}

func fetch(ctx context.Context, source string, opts Options) ([]byte, error) {
	u, err := url.Parse(source)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return fetchHTTP(ctx, source, opts)
		case "file":
			source = u.Path
		}
	}

	ui.Logger().Debug("reading local dataset", ui.Logger().Args("path", source))
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset file")
	}
	return data, nil
}

func fetchHTTP(ctx context.Context, source string, opts Options) ([]byte, error) {
	httpClient := opts.Client
	if httpClient == nil {
		httpClient = client.CreateHTTPClient(client.Options{})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header = client.DefaultHeaders()

	ui.Logger().Debug("downloading dataset", ui.Logger().Args("url", source))
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to download dataset")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	if opts.Progress {
		total := resp.ContentLength
		if total < 0 {
			total = 0
		}
		bar := pb.New64(total).SetTemplate(pb.Full).Set(pb.Bytes, true).SetWriter(os.Stderr).Start()
		defer bar.Finish()
		resp.Body = bar.NewProxyReader(resp.Body)
	}

	data, err := client.ReadResponseBody(resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset body")
	}
	return data, nil
}
