package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/dxf2geojson/internal/logger"
	"github.com/woozymasta/dxf2geojson/internal/server"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dir  string `short:"d" long:"dir"  env:"SERVE_DIR"      description:"Directory with converted .geojson files" default:"."`
	Addr string `short:"a" long:"addr" env:"LISTEN_ADDRESS" description:"Address to listen on"                    default:"127.0.0.1"`
	Port int    `short:"p" long:"port" env:"LISTEN_PORT"    description:"Port to listen on"                       default:"8080"`
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

	srvCtx, err := server.NewServerContext(opts.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", opts.Dir).Msg("Failed to open output directory")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/files", srvCtx.HandleFilesList)
	mux.HandleFunc("/files/", srvCtx.HandleFile)
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().Str("addr", listenAddr).Str("dir", opts.Dir).Msg("Preview server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
