//go:build tinygo && baremetal && picocalc

package main

import (
	"context"
	"fmt"

	"spincube/app"
	"spincube/hal"
	"spincube/internal/buildinfo"
)

func main() {
	log := hal.NewUARTLogger()
	preset, err := app.LookupPreset(app.DefaultPreset)
	if err != nil {
		log.WriteLineString(err.Error())
		return
	}
	log.WriteLineString(fmt.Sprintf("spincube %s preset=%s", buildinfo.Short(), preset.Name))

	err = hal.Run(context.Background(), hal.BackendPicoCalc, hal.Config{
		Title: buildinfo.Title("spincube"),
		FPS:   preset.FPS,
		Log:   log,
	}, app.New(preset, app.Config{Log: log}))
	if err != nil {
		log.WriteLineString(err.Error())
	}
	select {}
}
