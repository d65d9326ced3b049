package export

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Downloader saves captured stills into Dir as ai-camera-<unix millis>.<ext>
type Downloader struct {
	Dir     string
	Encoder Encoder
	Now     func() time.Time
}

func NewDownloader(dir string, encoder Encoder) *Downloader {
	return &Downloader{
		Dir:     dir,
		Encoder: encoder,
		Now:     time.Now,
	}
}

func (d *Downloader) Filename() string {
	return fmt.Sprintf("ai-camera-%d.%s", d.Now().UnixMilli(), d.Encoder.Format.Extension())
}

// target picks a path in Dir that is not already taken, adding -1, -2, ...
// when a capture from the same millisecond is already there.
func (d *Downloader) target() (string, error) {
	name := d.Filename()
	ext := filepath.Ext(name)
	base := name[:len(name)-len(ext)]
	for n := 0; ; n++ {
		candidate := filepath.Join(d.Dir, name)
		if n > 0 {
			candidate = filepath.Join(d.Dir, fmt.Sprintf("%s-%d%s", base, n, ext))
		}
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
	}
}

func (d *Downloader) Save(img image.Image) (string, error) {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create path: %w", err)
	}
	filename, err := d.target()
	if err != nil {
		return "", fmt.Errorf("failed to choose file name: %w", err)
	}

	tmpFile, err := os.CreateTemp(d.Dir, "capture-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := d.Encoder.Encode(tmpFile, img); err != nil {
		return "", fmt.Errorf("failed to encode %s image: %w", d.Encoder.Format, err)
	}

	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return "", fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	log.Printf("Saved %s", filename)
	return filename, nil
}
