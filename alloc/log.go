package alloc

import (
	"io"
	"log/slog"
	"os"
)

// debugLogging mirrors the teacher's HIVE_LOG_ALLOC toggle: a single
// environment variable, parsed once, that only controls whether internal
// decisions are logged. It never changes allocator behavior.
var debugLogging = os.Getenv("GOHEAP_DEBUG") != ""

var debugLogger = newDebugLogger()

func newDebugLogger() *slog.Logger {
	if !debugLogging {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (a *Arena) logGrow(chunkSize uintptr, multiplier int) {
	if !debugLogging {
		return
	}
	a.logger.Debug("grow", "chunk_bytes", chunkSize, "multiplier", multiplier, "live_chunks", len(a.chunks))
}

func (a *Arena) logUnmap(base, chunkSize uintptr) {
	if !debugLogging {
		return
	}
	a.logger.Debug("unmap", "base", base, "chunk_bytes", chunkSize, "live_chunks", len(a.chunks))
}

func (a *Arena) logUnmapFailed(base, chunkSize uintptr, err error) {
	if !debugLogging {
		return
	}
	a.logger.Debug("unmap_failed", "base", base, "chunk_bytes", chunkSize, "err", err)
}
