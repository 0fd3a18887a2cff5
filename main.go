package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sqweek/dialog"

	"runcat/animator"
	"runcat/cpu"
	"runcat/icons"
	"runcat/log"
	"runcat/shutdown"
	"runcat/tray"
)

var version = "dev"

const (
	appTitle     = "RunCat"
	readyTimeout = 10 * time.Second
)

// The tray must be driven from the main thread on macOS.
func init() {
	runtime.LockOSThread()
}

func main() {
	initLogging()

	iconDir, err := icons.ResolveDir()
	if err != nil {
		fatal(err)
	}
	frames, err := icons.Load(iconDir)
	if err != nil {
		fatal(err)
	}
	log.SessionStart(version, iconDir)
	log.FramesLoaded(2*frames.Len(), humanize.Bytes(frames.Size()))

	sampler, err := cpu.New()
	if err != nil {
		fatal(err)
	}

	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	tray.Run(tray.Options{
		Tooltip:      appTitle,
		Icon:         frames.Frame(icons.Dark, 0).Tray,
		QuitTitle:    "Quit",
		ReadyTimeout: readyTimeout,
		OnFail: func(err error) {
			fatal(fmt.Errorf("register tray icon: %w", err))
		},
	}, func(surface *tray.Systray) {
		go run(ctx, surface, frames, sampler)
	}, nil)

	log.Close()
}

func run(ctx context.Context, surface *tray.Systray, frames *icons.FrameSet, sampler *cpu.Sampler) {
	a := animator.New(animator.DefaultConfig(), frames, surface, sampler, time.Now())
	reason := "quit"
	if err := a.Run(ctx); err != nil {
		reason = "signal"
	}
	log.SessionEnd(reason, a.State().Shown)
	surface.Close()
}

func initLogging() {
	dir, err := log.ResolveDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to resolve log directory: %v\n", err)
		return
	}
	log.SetDir(dir)

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
		return
	}
	if crashFile, err := log.OpenCrashFile(); err == nil {
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}
}

// fatal reports a startup failure everywhere a user might look and exits.
func fatal(err error) {
	msg := fmt.Sprintf("%s failed to start: %v", appTitle, err)
	fmt.Fprintln(os.Stderr, msg)
	log.Error(msg)
	log.Close()
	dialog.Message("%s", msg).Title(appTitle).Error()
	os.Exit(1)
}
