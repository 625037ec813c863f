//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"binwatch/app"
	"binwatch/config"
	"binwatch/hal"
)

func main() {
	var (
		cfgPath  string
		headless hal.HeadlessConfig
		round    bool
		style    string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to the config file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 0, "Tick rate in headless mode (default from config).")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&round, "round", false, "Use the round-watch layout.")
	flag.StringVar(&style, "style", "", `Clock style override: "12h" or "24h".`)
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
	}
	if round {
		cfg.Round = true
	}
	if style != "" {
		cfg.ClockStyle = style
	}
	if headless.Hz == 0 {
		headless.Hz = cfg.TickHz
	}

	halCfg := hal.Config{
		Use24Hour:  cfg.Use24Hour(),
		ConfigPath: config.Path(cfgPath),
	}
	if style != "" {
		// An explicit style wins for the whole run; don't let a file
		// edit override it.
		halCfg.ConfigPath = ""
	}
	if cfg.Round {
		halCfg.Width, halCfg.Height = 180, 180
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, halCfg, headless, app.New); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(halCfg, app.New); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
