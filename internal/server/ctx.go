// Package server provides a small preview server over converted GeoJSON files.
package server

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	// Dir is the directory holding converted .geojson documents.
	Dir string
}

// NewServerContext validates the output directory and returns the context.
func NewServerContext(dir string) (*ServerContext, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: dir, Err: os.ErrInvalid}
	}

	ctx := &ServerContext{Dir: dir}
	log.Info().Str("dir", dir).Int("documents", len(ctx.documents())).Msg("Preview server context ready")
	return ctx, nil
}

// documents lists the .geojson files currently in the directory, sorted.
func (s *ServerContext) documents() []string {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		log.Error().Err(err).Str("dir", s.Dir).Msg("Failed to read output directory")
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".geojson") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
