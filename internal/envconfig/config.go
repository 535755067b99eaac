// SPDX-License-Identifier: MIT

// Package envconfig reads NDSLICE_* settings from the environment.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/ndslice/internal/logutil"
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"NDSLICE_DEBUG":    {"NDSLICE_DEBUG", LogLevel(), "Log verbosity: 1 (or true) for debug, 2 for trace"},
		"NDSLICE_PARALLEL": {"NDSLICE_PARALLEL", Parallel(), "Default number of concurrent benchmark workers (default GOMAXPROCS)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

// LogLevel maps NDSLICE_DEBUG to a slog level. Unset or false means INFO;
// any other non-numeric value means DEBUG.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	s := clean("NDSLICE_DEBUG")
	if s == "" {
		return level
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			level = slog.LevelDebug
		}
		return level
	}
	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n >= 2:
			return logutil.LevelTrace
		case n == 1:
			return slog.LevelDebug
		}
		return level
	}
	return slog.LevelDebug
}

// Parallel reads NDSLICE_PARALLEL; invalid or non-positive values fall back
// to GOMAXPROCS.
func Parallel() int {
	def := runtime.GOMAXPROCS(0)
	s := clean("NDSLICE_PARALLEL")
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		slog.Warn("invalid setting, ignoring", "NDSLICE_PARALLEL", s, "error", err)
		return def
	}
	return n
}
