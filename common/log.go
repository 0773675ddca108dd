package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

// NewLogger returns a prefixed logger writing to stdout
// 2024/06/30 00:56:06 [prefix] message
func NewLogger(prefix string) *log.Logger {
	return log.New(os.Stdout, color.HiGreenString(fmt.Sprintf("[%s] ", prefix)), log.Ldate|log.Ltime|log.Lmsgprefix)
}

// DebugLogger returns a logger that is silenced unless G16_LOG=debug
func DebugLogger(prefix string) *log.Logger {
	var out io.Writer = io.Discard
	if strings.EqualFold(os.Getenv("G16_LOG"), "debug") {
		out = os.Stderr
	}
	return log.New(out, color.HiYellowString(fmt.Sprintf("[%s] ", prefix)), log.Ldate|log.Ltime|log.Lmsgprefix)
}
