package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ademsari/coursehub/internal/pkg/logger"
)

// PageCache caches successful GET list responses in Redis for the
// configured TTL. A nil client disables caching entirely, so the
// middleware can be wired unconditionally.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new PageCache
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{
		client: client,
		ttl:    ttl,
	}
}

type cachedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachedWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

// Cache returns the caching middleware. Only GET requests are cached;
// the full request URI (path plus query) is the cache key.
func (p *PageCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p.client == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := "pagecache:" + c.Request.URL.RequestURI()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 200*time.Millisecond)
		defer cancel()

		if cached, err := p.client.Get(ctx, key).Bytes(); err == nil {
			c.Header("Content-Type", "application/json; charset=utf-8")
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}

		setCtx, setCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer setCancel()
		if err := p.client.Set(setCtx, key, writer.body.Bytes(), p.ttl).Err(); err != nil {
			logger.Debug().Err(err).Str("key", key).Msg("Failed to store page in cache")
		}
	}
}
