package jokester

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mistweaverco/jokester/internal/config"
)

// getColorConfigFunc provides access to the resolved config from root.go
var getColorConfigFunc func() config.ConfigFlags

// SetColorConfigFunc sets the function to access color config
func SetColorConfigFunc(fn func() config.ConfigFlags) {
	getColorConfigFunc = fn
}

func getColorConfig() config.ConfigFlags {
	if getColorConfigFunc != nil {
		return getColorConfigFunc()
	}
	return config.ConfigFlags{Color: config.ColorModeAuto}
}

// isTerminalFn is swapped in tests
var isTerminalFn = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// shouldUseColors determines if colors/icons should be used based on color mode and TTY status
func shouldUseColors() bool {
	switch getColorConfig().Color {
	case config.ColorModeAlways:
		return true
	case config.ColorModeNever:
		return false
	default:
		return isTerminalFn()
	}
}

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
)

const (
	iconCheck = "✓"
	iconJoke  = "😂"
)

// Plain text alternative for the check icon when not in TTY
const textCheck = "[✓]"

func IconCheck() string {
	if !shouldUseColors() {
		return textCheck
	}
	return colorGreen + iconCheck + colorReset
}
