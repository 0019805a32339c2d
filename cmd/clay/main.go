package main

import (
	"os"

	"github.com/unattended-backpack/clay/envx"
	"github.com/unattended-backpack/clay/logx"
	"github.com/unattended-backpack/clay/secretprint"
)

func main() {
	level, _ := envx.Get(logx.LevelVariable).String()
	logger := logx.New(os.Stderr, level)

	if err := secretprint.New(secretprint.Clay, secretprint.WithLogger(logger)).Run(); err != nil {
		logger.Fatal("secret not found", "error", err.Error())
	}
}
