package processor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"

	"github.com/woozymasta/dxf2geojson/internal/crs"
	"github.com/woozymasta/dxf2geojson/internal/dxf"
	"github.com/woozymasta/dxf2geojson/internal/geo"
)

// Options holds the immutable configuration of one conversion batch.
type Options struct {
	Transform *crs.Transform
	OutDir    string // output directory; empty means next to the input
	Pretty    bool   // indent output instead of minifying
	Force     bool   // overwrite existing output files
}

// Result reports what happened to one input file. Logging is layered on top
// of it, never the completion signal.
type Result struct {
	Input           string
	OutputPath      string
	Features        int
	SkippedEntities int // entities that failed extraction
	DroppedFeatures int // features lost to reprojection or validation
	Empty           bool // no convertible entities, nothing written
	Skipped         bool // output already existed and force was off
}

// ProcessFile runs the whole pipeline for one drawing: read entities,
// extract features in encounter order, reproject, write GeoJSON.
//
// Only read/parse failures are returned as errors. Individual bad entities
// and features are logged, counted in the result and skipped.
func ProcessFile(path string, opts Options) (Result, error) {
	res := Result{Input: path}

	outPath := outputPath(path, opts.OutDir, opts.Transform.DestEPSG)
	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			log.Debug().Str("file", path).Str("output", outPath).Msg("Output exists, skipping")
			res.OutputPath = outPath
			res.Skipped = true
			return res, nil
		}
	}

	entities, err := dxf.ReadFile(path)
	if err != nil {
		return res, err
	}
	log.Info().Str("file", path).Int("entities", len(entities)).Msg("Drawing loaded")

	features := make([]geo.Feature, 0, len(entities))
	for i, e := range entities {
		f, err := Extract(e)
		if err != nil {
			res.SkippedEntities++
			log.Warn().Err(err).Str("file", path).Int("entity", i).Msg("Entity skipped")
			continue
		}
		if f == nil {
			continue
		}
		features = append(features, *f)
	}

	if len(features) == 0 {
		log.Warn().Str("file", path).Msg("No convertible entities found")
		res.Empty = true
		return res, nil
	}

	kept := features[:0]
	for i, f := range features {
		g, err := f.Geometry.Transform(opts.Transform.Func)
		if err != nil {
			res.DroppedFeatures++
			log.Error().Err(err).Str("file", path).Int("feature", i).Msg("Reprojection failed, feature dropped")
			continue
		}
		if err := g.Validate(); err != nil {
			res.DroppedFeatures++
			log.Warn().Err(err).Str("file", path).Int("feature", i).Msg("Degenerate geometry, feature dropped")
			continue
		}
		f.Geometry = g
		kept = append(kept, f)
	}

	fc, err := geo.NewFeatureCollection(kept, opts.Transform.DestName)
	if err != nil {
		return res, fmt.Errorf("processor: encode %s: %w", path, err)
	}

	if err := writeDocument(outPath, fc, opts.Pretty); err != nil {
		return res, fmt.Errorf("processor: write %s: %w", outPath, err)
	}

	res.OutputPath = outPath
	res.Features = len(kept)
	log.Info().
		Str("file", path).
		Str("output", outPath).
		Int("features", res.Features).
		Int("skipped_entities", res.SkippedEntities).
		Int("dropped_features", res.DroppedFeatures).
		Msg("Conversion finished")

	return res, nil
}

// outputPath derives the sibling output name: <stem>_epsg<code>.geojson.
func outputPath(input, outDir string, epsg int) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(input)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, fmt.Sprintf("%s_epsg%d.geojson", stem, epsg))
}

// writeDocument marshals the collection and writes it to disk, minified
// unless pretty output was requested.
func writeDocument(path string, fc interface{}, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(fc, "", "  ")
	} else {
		data, err = json.Marshal(fc)
		if err == nil {
			m := minify.New()
			m.AddFunc("application/json", mjson.Minify)
			data, err = m.Bytes("application/json", data)
		}
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
