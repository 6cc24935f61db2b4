package main

import (
	"errors"
	"os"

	"github.com/myl7/blockbench"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	fs := blockbench.BuildFlagSet()
	v, err := blockbench.GetViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("invalid commandline arg")
	}

	cfg, err := blockbench.LoadConfig(v)
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("logLevel", cfg.LogLevel).Fatal("invalid log level")
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	suite, err := blockbench.NewSuite(cfg, blockbench.NewRunner(os.Stdout))
	if err != nil {
		log.WithError(err).Fatal("bench setup failed")
	}

	log.WithFields(log.Fields{
		"cases":      cfg.Cases,
		"iterations": cfg.Iterations,
		"codec":      cfg.JSONCodec,
	}).Debug("bench start")

	if _, err := suite.Run(); err != nil {
		log.WithError(err).Fatal("bench failed")
	}
}
