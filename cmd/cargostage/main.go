package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"git.fractalqb.de/fractalqb/cargostage"
)

var (
	tracer = cargostage.DefaultTracer()

	configFile = cargostage.DefaultConfigFile
	root       string
	manifest   bool
)

func flags() cargostage.Config {
	flag.StringVar(&configFile, "config", configFile, "Read configuration file")
	flag.StringVar(&root, "root", "", "Override staging root directory")
	flag.BoolVar(&manifest, "manifest", false, "Write manifest.yaml into the staging root")
	fTrace := flag.String("trace", "", "Set trace level off/warn/info/debug")
	flag.Parse()

	if err := tracer.ParseLogFlag(*fTrace); err != nil {
		slog.Error(err.Error())
		os.Exit(2)
	}
	cfg, err := cargostage.LoadConfig(configFile)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	if root != "" {
		cfg.Root = root
	}
	if manifest {
		cfg.Manifest = true
	}
	return cfg
}

func main() {
	cfg := flags()
	coll := cfg.Collector()
	if err := coll.Run(context.Background(), tracer); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
