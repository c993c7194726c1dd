//go:build tinygo && baremetal

package main

import (
	"lcdtris/app"
	"lcdtris/config"
	"lcdtris/hal"
)

func main() {
	cfg := config.Default()
	app.Run(hal.New(hal.Config{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Hz:     cfg.Timer.Hz,
	}), cfg)
}
