package middleware

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const (
	slowRequestThreshold = 500 * time.Millisecond
	errorStatusFloor     = 400
)

// Logger keeps only slow or failed requests. The landing page polls
// content and loads a dozen images per visit; logging every 200 would
// bury anything useful.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "15:04:05",
		Output:     &quietWriter{dest: os.Stdout},
	})
}

// quietWriter drops lines for fast successful responses. Status and
// latency come out of the fixed "time | status | latency | ..." format
// above; an unparsable line is written as-is rather than lost.
type quietWriter struct {
	dest io.Writer
}

func (w *quietWriter) Write(p []byte) (int, error) {
	fields := strings.Split(string(p), " | ")
	if len(fields) < 3 {
		return w.dest.Write(p)
	}

	status, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || status >= errorStatusFloor {
		return w.dest.Write(p)
	}

	if latency, err := time.ParseDuration(strings.TrimSpace(fields[2])); err == nil && latency >= slowRequestThreshold {
		return w.dest.Write(p)
	}

	return len(p), nil
}
