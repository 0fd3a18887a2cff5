package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	appName       = "runcat"
	diagFileName  = "diagnostics_log.txt"
	crashFileName = "crash_log.txt"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

// ResolveDir returns the OS-specific log directory.
func ResolveDir() (string, error) {
	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagPath := filepath.Join(dir, diagFileName)
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

// OpenCrashFile opens crash_log.txt for runtime/debug.SetCrashOutput and
// writes a session marker.
func OpenCrashFile() (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(dir, crashFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(f, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
	return f, nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func SessionStart(version, iconDir string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("version", version).
		Str("icons", iconDir).
		Msg("session_start")
}

func FramesLoaded(frames int, size string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("frames", frames).
		Str("size", size).
		Msg("frames_loaded")
}

// Sample records a CPU refresh and the frame interval it produced.
func Sample(usage float64, interval time.Duration) {
	if !logReady {
		return
	}
	diagLog.Debug().
		Float64("usage_pct", usage).
		Float64("interval_ms", float64(interval)/float64(time.Millisecond)).
		Msg("cpu_sample")
}

func ColorToggled(mode string) {
	if !logReady {
		return
	}
	diagLog.Info().Str("mode", mode).Msg("color_toggled")
}

func SessionEnd(reason string, frames uint64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("reason", reason).
		Uint64("frames_shown", frames).
		Msg("session_end")
}
