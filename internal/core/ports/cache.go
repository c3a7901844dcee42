package ports

import "context"

// ContentCache caches rendered public content list responses. All methods
// are best-effort: a miss and a backend failure look the same to callers,
// who fall through to the store.
type ContentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
	Invalidate(ctx context.Context, key string)
}
