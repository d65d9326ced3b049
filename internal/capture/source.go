package capture

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rm-hull/camfilter/internal/frame"
)

// Source supplies a still frame on demand, along with whether it came from
// a user-facing camera and should be mirrored.
type Source interface {
	Capture(ctx context.Context) (*frame.Frame, bool, error)
}

type FileSource struct {
	Path   string
	Facing FacingMode
}

func (s *FileSource) Capture(ctx context.Context) (*frame.Frame, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	fr, _, err := frame.Decode(f)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read frame from %s: %w", s.Path, err)
	}
	return fr, s.Facing.Mirrored(), nil
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SnapshotSource grabs a single still from a camera that serves its current
// frame over HTTP (e.g. an IP camera's snapshot.jpg endpoint).
type SnapshotSource struct {
	url    string
	facing FacingMode
	client HTTPClient
}

func NewSnapshotSource(url string, facing FacingMode) *SnapshotSource {
	return &SnapshotSource{
		url:    url,
		facing: facing,
		client: &http.Client{},
	}
}

func (s *SnapshotSource) Capture(ctx context.Context) (*frame.Frame, bool, error) {
	log.Printf("Retrieving: %s", s.url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch from %s: %w", s.url, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode > 299 {
		return nil, false, fmt.Errorf("http status response from %s: %s", s.url, res.Status)
	}

	fr, _, err := frame.Decode(res.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read frame from %s: %w", s.url, err)
	}
	return fr, s.facing.Mirrored(), nil
}
