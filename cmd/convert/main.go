package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/dxf2geojson/internal/config"
	"github.com/woozymasta/dxf2geojson/internal/crs"
	"github.com/woozymasta/dxf2geojson/internal/logger"
	"github.com/woozymasta/dxf2geojson/internal/processor"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file"`
	Zone       int    `short:"z" long:"zone"        env:"ZONE"        description:"JGD2011 plane rectangular zone of the input (1-19)"`
	SourceEPSG int    `long:"source-epsg"           env:"SOURCE_EPSG" description:"Source EPSG code (6669-6687), alternative to --zone"`
	To         string `short:"t" long:"to"          env:"OUTPUT_CRS"  description:"Output coordinate system" choice:"wgs84" choice:"webmercator" choice:"source"`
	OutDir     string `short:"o" long:"out-dir"     env:"OUT_DIR"     description:"Write outputs to this directory instead of next to inputs"`
	Pretty     bool   `short:"p" long:"pretty"      description:"Indent output JSON instead of minifying"`
	Force      bool   `short:"f" long:"force"       description:"Force overwrite of existing output files"`
	ListZones  bool   `short:"l" long:"list-zones"  description:"Print the plane rectangular zone table and exit"`

	Args struct {
		Files []string `positional-arg-name:"file.dxf" description:"DXF drawings to convert"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if opts.ListZones {
		for _, z := range crs.Zones() {
			fmt.Printf("%2d  EPSG:%d  %s\n", z.Number, z.EPSG, z.Region)
		}
		return
	}

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
		}
	}

	// Flags override config file values.
	if opts.Zone != 0 {
		cfg.Zone = opts.Zone
	}
	if opts.To != "" {
		cfg.Output = opts.To
	}
	if opts.OutDir != "" {
		cfg.OutDir = opts.OutDir
	}
	if opts.Pretty {
		cfg.Pretty = true
	}

	if len(opts.Args.Files) == 0 {
		log.Fatal().Msg("No input files given")
	}

	// Every input must exist before any file is opened.
	for _, path := range opts.Args.Files {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			log.Fatal().Str("path", path).Msg("Input file not found")
		}
	}

	var zone crs.Zone
	var err error
	if opts.SourceEPSG != 0 {
		zone, err = crs.ZoneByEPSG(opts.SourceEPSG)
	} else {
		zone, err = crs.ZoneByNumber(cfg.Zone)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid source coordinate system")
	}

	transform, err := crs.NewTransform(zone, crs.Output(cfg.Output))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build coordinate transform")
	}

	log.Info().
		Int("files", len(opts.Args.Files)).
		Int("source_epsg", transform.SourceEPSG).
		Str("output_crs", transform.DestName).
		Msg("Starting conversion")

	procOpts := processor.Options{
		Transform: transform,
		OutDir:    cfg.OutDir,
		Pretty:    cfg.Pretty,
		Force:     opts.Force,
	}

	var converted, failed, empty, features int
	for _, path := range opts.Args.Files {
		res, err := processor.ProcessFile(path, procOpts)
		if err != nil {
			failed++
			log.Error().Err(err).Str("file", path).Msg("File conversion failed")
			continue
		}
		if res.Empty {
			empty++
			continue
		}
		converted++
		features += res.Features
	}

	log.Info().
		Int("converted", converted).
		Int("features", features).
		Int("empty", empty).
		Int("failed", failed).
		Msg("All files processed")

	if failed > 0 {
		os.Exit(1)
	}
}
