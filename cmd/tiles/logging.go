package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/songe/minesweeper/internal/autoplay"
	"github.com/songe/minesweeper/internal/mines"
)

func setupLogging() error {
	logLevel, err := cfg.Level()
	if err != nil {
		return err
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetOutput(os.Stderr)
	log.ReplaceHooks(make(logrus.LevelHooks))

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
		log.AddHook(hook)
		// keep the terminal for the board
		log.SetOutput(io.Discard)
	}

	mines.Log = log
	autoplay.Log = log
	return nil
}
