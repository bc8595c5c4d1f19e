package links

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/demosite/internal/domain"
	"github.com/nfrund/demosite/internal/nav"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Source holds the navigation links currently served to new visitors.
type Source struct {
	fs       afero.Fs
	path     string
	validate *validator.Validate
	current  atomic.Pointer[[]nav.Link]
}

// NewSource creates a source backed by path on fs. An empty path serves the
// default links.
func NewSource(fs afero.Fs, path string) *Source {
	s := &Source{fs: fs, path: path, validate: validator.New()}
	defaults := nav.DefaultLinks()
	s.current.Store(&defaults)
	return s
}

// Path returns the backing file path.
func (s *Source) Path() string {
	return s.path
}

// Links returns the current links. Callers must not modify the result.
func (s *Source) Links() []nav.Link {
	return *s.current.Load()
}

// Reload reads the backing file again. On failure the defaults are served and
// the error is returned for logging.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}
	links, err := s.read()
	if err != nil {
		defaults := nav.DefaultLinks()
		s.current.Store(&defaults)
		return err
	}
	s.current.Store(&links)
	slog.Info("Navigation links loaded", "path", s.path, "count", len(links))
	return nil
}

func (s *Source) read() ([]nav.Link, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLinksSource, err)
	}
	links, err := Parse(filepath.Ext(s.path), data)
	if err != nil {
		return nil, err
	}
	for i := range links {
		if err := s.validate.Struct(links[i]); err != nil {
			return nil, fmt.Errorf("%w: link %d: %v", domain.ErrLinksSource, i, err)
		}
	}
	return nav.NormalizeLinks(links), nil
}

// Parse decodes a links document. ext selects JSON (".json") or YAML
// (anything else). A document that is not a sequence, or an empty one,
// yields an error so the caller falls back to the defaults wholesale.
func Parse(ext string, data []byte) ([]nav.Link, error) {
	var links []nav.Link
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&links)
	default:
		err = yaml.Unmarshal(data, &links)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLinksSource, err)
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("%w: no links defined", domain.ErrLinksSource)
	}
	return links, nil
}
