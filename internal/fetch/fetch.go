// /internal/fetch/fetch.go
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"forge-launcher/internal/log"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
)

// ChunkSize is the copy buffer used when streaming a body to disk.
const ChunkSize = 32 * 1024

const userAgent = "forge-launcher/1.0"

// ErrInterrupted marks a body that stopped before it was fully read.
var ErrInterrupted = errors.New("transfer interrupted")

// StatusError is returned when the remote answers with anything but 200.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download %s: bad status: %s", e.URL, e.Status)
}

// Fetcher streams remote files to disk.
type Fetcher struct {
	client   *resty.Client
	progress io.Writer
}

type Option func(*Fetcher)

// WithProgress draws a byte progress bar on w for every download.
func WithProgress(w io.Writer) Option {
	return func(f *Fetcher) { f.progress = w }
}

// New returns a Fetcher using hc for transport. A nil hc gets a private
// client; http.DefaultClient is never touched.
func New(hc *http.Client, opts ...Option) *Fetcher {
	client := resty.New()
	if hc != nil {
		client = resty.NewWithClient(hc)
	}
	f := &Fetcher{
		client: client.SetHeader("User-Agent", userAgent),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads url to dest, replacing any existing file. The body is
// written to a temp file in dest's directory and renamed into place only
// after a complete transfer, so a failed fetch leaves dest untouched.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	log.Log.Info("Downloading %s ...", url)

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return &StatusError{URL: url, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", dest, err)
	}
	defer os.Remove(tmp.Name())

	var size int64 = -1
	if resp.RawResponse != nil {
		size = resp.RawResponse.ContentLength
	}
	bar := f.newBar(size, filepath.Base(dest))

	_, copyErr := io.CopyBuffer(io.MultiWriter(tmp, bar), body, make([]byte, ChunkSize))
	_ = bar.Finish()
	closeErr := tmp.Close()
	if copyErr != nil {
		return fmt.Errorf("download %s: %w: %w", url, ErrInterrupted, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("write %s: %w", dest, closeErr)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("move download into %s: %w", dest, err)
	}
	log.Log.Info("Saved %s", dest)
	return nil
}

func (f *Fetcher) newBar(size int64, name string) *progressbar.ProgressBar {
	w := f.progress
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}
