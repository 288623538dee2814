//go:build !(tinygo && baremetal && picocalc)

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"spincube/app"
	"spincube/hal"
	"spincube/internal/buildinfo"
	"spincube/internal/profile"

	"github.com/urfave/cli"
)

const defaultProfile = "spincube.yaml"

func main() {
	a := cli.NewApp()
	a.Name = "spincube"
	a.Usage = "spin a cube in perspective"
	a.Version = buildinfo.Short()
	a.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend, b",
			Value: string(hal.BackendEbiten),
			Usage: fmt.Sprintf("window backend, one of %v (raylib needs -tags raylib, which drops ebiten)", hal.Backends),
		},
		cli.StringFlag{
			Name:  "preset, p",
			Usage: fmt.Sprintf("demo preset, one of %v (default %q)", app.PresetNames(), app.DefaultPreset),
		},
		cli.StringFlag{
			Name:  "profile",
			Value: defaultProfile,
			Usage: "YAML file overriding preset values",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 200,
			Usage: "initial window width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 200,
			Usage: "initial window height",
		},
		cli.IntFlag{
			Name:  "hz",
			Usage: "frame rate (default from preset)",
		},
		cli.Uint64Flag{
			Name:  "ticks",
			Usage: "stop after N ticks in headless mode (0 = run until interrupted)",
		},
		cli.StringFlag{
			Name:  "snapshot",
			Usage: "save the last headless frame as PNG",
		},
		cli.BoolFlag{
			Name:  "stats",
			Usage: "log frame rate and heap usage every second",
		},
	}
	a.Action = run

	if err := a.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log := hal.NewLogger(os.Stdout)

	backend, err := hal.ParseBackend(c.String("backend"))
	if err != nil {
		return err
	}

	prof, err := loadProfile(c, log)
	if err != nil {
		return err
	}
	preset, err := prof.Resolve(c.String("preset"))
	if err != nil {
		return err
	}

	fps := preset.FPS
	if c.IsSet("hz") {
		fps = c.Int("hz")
	}

	log.WriteLineString(fmt.Sprintf("spincube %s commit=%s preset=%s mode=%s distance=%g",
		buildinfo.Short(), buildinfo.Commit, preset.Name, preset.Mode, preset.Distance))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = hal.Run(ctx, backend, hal.Config{
		Title:    buildinfo.Title(c.App.Name),
		Width:    c.Int("width"),
		Height:   c.Int("height"),
		FPS:      fps,
		Ticks:    c.Uint64("ticks"),
		Snapshot: c.String("snapshot"),
		Log:      log,
	}, app.New(preset, app.Config{Log: log, Stats: c.Bool("stats")}))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadProfile reads the profile named by --profile. The default file is
// optional; an explicitly named one must exist.
func loadProfile(c *cli.Context, log hal.Logger) (profile.Profile, error) {
	path := c.String("profile")
	if path == "" {
		return profile.Profile{}, nil
	}
	if c.IsSet("profile") {
		p, err := profile.Load(path)
		if err == nil {
			log.WriteLineString("profile: " + path)
		}
		return p, err
	}
	p, found, err := profile.LoadOptional(path)
	if found {
		log.WriteLineString("profile: " + path)
	}
	return p, err
}
