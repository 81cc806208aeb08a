package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event as a debug line on a charmbracelet logger.
// It implements PipelineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger.WithPrefix("hooks")}
}

// Install registers h for all three event families.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnBuildStart(_ context.Context, worldType string, seed int64) {
	h.Logger.Debug("build start", "world_type", worldType, "seed", seed)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, worldType string, layers int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("build failed", "world_type", worldType, "error", err)
		return
	}
	h.Logger.Debug("build done", "world_type", worldType, "layers", layers, "took", d)
}

func (h *LogHooks) OnRegionStart(_ context.Context, chain string, cells int) {
	h.Logger.Debug("region start", "chain", chain, "cells", cells)
}

func (h *LogHooks) OnRegionComplete(_ context.Context, chain string, cells int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("region failed", "chain", chain, "error", err)
		return
	}
	h.Logger.Debug("region done", "chain", chain, "cells", cells, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}
