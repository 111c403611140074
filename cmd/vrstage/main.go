package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/xlab/closer"

	"vrstage/internal/config"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "settings file (YAML), reloaded on change")
		headless   = flag.Bool("headless", false, "run without a window using the null renderer")
		ticks      = flag.Int("ticks", 10, "fixed ticks to run in headless mode")
		vr         = flag.Bool("vr", false, "enable XR on the app render context")
		background = flag.String("bg", "", "background color, e.g. #202830")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	var reloads <-chan string
	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			closer.Fatalln("load settings:", err)
		}
		watcher, err := config.Watch(*configPath)
		if err != nil {
			closer.Fatalln("watch settings:", err)
		}
		go func() {
			for err := range watcher.Errors {
				log.Warn("settings reload failed", "err", err)
			}
		}()
		reloads = watcher.Events
		closer.Bind(func() { _ = watcher.Close() })
	}
	if *background != "" {
		config.SetBackground(*background)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	closer.Bind(func() {
		cancel()
		<-done
	})

	var err error
	if *headless {
		_, err = runHeadless(*ticks, *vr, reloads, log)
	} else {
		err = runWindowed(ctx, *vr, reloads, log)
	}
	close(done)
	if err != nil && ctx.Err() == nil {
		closer.Fatalln(err)
	}
	closer.Close()
}
