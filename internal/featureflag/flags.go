package featureflag

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/metrics"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/store"

	"go.uber.org/zap"
)

// EnableInfluxKey flag name selecting the time-series store for current values.
const EnableInfluxKey = "enable_influx"

// DefaultPrefix KV key prefix for flags.
const DefaultPrefix = "xspoc:feature:"

// Flags runtime feature switches. Implementations are read on every call.
type Flags interface {
	EnableInflux(ctx context.Context) bool
}

// StaticFlags fixed values loaded from configuration.
type StaticFlags struct {
	Influx bool
}

func (f StaticFlags) EnableInflux(context.Context) bool { return f.Influx }

// KVFlags reads flags from a KV store and falls back to static values when a key is
// missing, malformed or the store fails.
type KVFlags struct {
	kv       store.KV
	prefix   string
	fallback StaticFlags
	logger   *zap.Logger
}

// NewKVFlags creates KV backed flags. An empty prefix uses DefaultPrefix.
func NewKVFlags(kv store.KV, prefix string, fallback StaticFlags, logger *zap.Logger) *KVFlags {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &KVFlags{kv: kv, prefix: prefix, fallback: fallback, logger: logger}
}

var (
	_ Flags = StaticFlags{}
	_ Flags = (*KVFlags)(nil)
)

func (f *KVFlags) EnableInflux(ctx context.Context) bool {
	return f.boolFlag(ctx, EnableInfluxKey, f.fallback.Influx)
}

// SetEnableInflux persists the flag.
func (f *KVFlags) SetEnableInflux(ctx context.Context, enabled bool) error {
	if err := f.kv.Set(ctx, f.prefix+EnableInfluxKey, strconv.FormatBool(enabled), 0); err != nil {
		return fmt.Errorf("failed to set flag %s: %w", EnableInfluxKey, err)
	}
	f.logger.Info("Feature flag updated",
		zap.String("flag", EnableInfluxKey),
		zap.Bool("value", enabled),
	)
	return nil
}

// Reset removes the stored flag so the fallback applies again.
func (f *KVFlags) Reset(ctx context.Context, name string) error {
	if err := f.kv.Delete(ctx, f.prefix+name); err != nil {
		return fmt.Errorf("failed to reset flag %s: %w", name, err)
	}
	return nil
}

// List returns every stored flag under the prefix, keyed by name without prefix.
func (f *KVFlags) List(ctx context.Context) (map[string]string, error) {
	keys, err := f.kv.ScanKeys(ctx, f.prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := f.kv.Get(ctx, k)
		if err != nil {
			// deleted between scan and get
			continue
		}
		out[strings.TrimPrefix(k, f.prefix)] = v
	}
	return out, nil
}

func (f *KVFlags) boolFlag(ctx context.Context, name string, fallback bool) bool {
	raw, err := f.kv.Get(ctx, f.prefix+name)
	if err != nil {
		if err != store.ErrMiss {
			f.logger.Warn("Failed to read feature flag, using fallback",
				zap.String("flag", name),
				zap.Bool("fallback", fallback),
				zap.Error(err),
			)
			metrics.IncFlagFallback(name)
		}
		return fallback
	}

	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		f.logger.Warn("Malformed feature flag value, using fallback",
			zap.String("flag", name),
			zap.String("value", raw),
			zap.Bool("fallback", fallback),
		)
		metrics.IncFlagFallback(name)
		return fallback
	}
	return v
}
