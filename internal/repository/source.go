package repository

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/models"
)

// Source yields raw product records from persisted data
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.ProductInput, error)
}

// FileSource reads a JSON array of products from a local file.
// Gzip-compressed files are detected automatically.
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name returns the file path
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// Load opens and decodes the file
func (s *FileSource) Load(ctx context.Context) ([]models.ProductInput, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return decodeProducts(f)
}

// URLSource downloads a JSON array of products over HTTP(S).
// Gzip-compressed bodies are detected automatically.
type URLSource struct {
	URL    string
	client *http.Client
}

// NewURLSource creates a URL-backed source
func NewURLSource(url string) *URLSource {
	return &URLSource{
		URL:    url,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Name returns the URL
func (s *URLSource) Name() string {
	return "url:" + s.URL
}

// Load downloads and decodes the document
func (s *URLSource) Load(ctx context.Context) ([]models.ProductInput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return decodeProducts(resp.Body)
}

// decodeProducts parses a JSON array of products, transparently
// decompressing gzip input
func decodeProducts(r io.Reader) ([]models.ProductInput, error) {
	br := bufio.NewReader(r)

	var body io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gzReader, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		body = gzReader
	}

	var products []models.ProductInput
	if err := json.NewDecoder(body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}
