package cache

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// PageCache keeps rendered public pages in memory so repeated reads skip
// template rendering and the database. Mutations call Invalidate with the
// route set they affect; invalidation is decoupled from the mutation result
// and can never fail it.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
}

type cachedPage struct {
	contentType string
	body        []byte
}

// New returns an empty PageCache.
func New() *PageCache {
	return &PageCache{pages: make(map[string]cachedPage)}
}

// Invalidate drops the cached render of every given route. Unknown routes
// are ignored.
func (p *PageCache) Invalidate(routes ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, route := range routes {
		delete(p.pages, route)
	}
}

// Len reports the number of cached routes.
func (p *PageCache) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pages)
}

// Middleware serves a stored render when one exists for the request path and
// otherwise captures a successful response for the next hit. Only full GET
// requests without a query string are cached.
func (p *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || c.Request.URL.RawQuery != "" {
			c.Next()
			return
		}

		route := c.Request.URL.Path

		p.mu.RLock()
		page, ok := p.pages[route]
		p.mu.RUnlock()
		if ok {
			c.Header("Content-Type", page.contentType)
			c.Data(http.StatusOK, page.contentType, page.body)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() != http.StatusOK {
			return
		}

		p.mu.Lock()
		p.pages[route] = cachedPage{
			contentType: writer.Header().Get("Content-Type"),
			body:        writer.buf.Bytes(),
		}
		p.mu.Unlock()
	}
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(data []byte) (int, error) {
	w.buf.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *captureWriter) WriteString(data string) (int, error) {
	w.buf.WriteString(data)
	return w.ResponseWriter.WriteString(data)
}
