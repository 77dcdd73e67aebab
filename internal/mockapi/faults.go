package mockapi

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

type fault struct {
	status  int
	message string
}

// faults holds one-shot failures keyed by "METHOD /pattern".
type faults struct {
	mu      sync.Mutex
	pending map[string][]fault
}

func newFaults() *faults {
	return &faults{pending: make(map[string][]fault)}
}

func (f *faults) add(route string, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[route] = append(f.pending[route], fault{status: status, message: message})
}

func (f *faults) take(route string) (fault, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.pending[route]
	if len(q) == 0 {
		return fault{}, false
	}
	f.pending[route] = q[1:]
	return q[0], true
}

func (f *faults) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Request.Method + " " + strings.TrimPrefix(c.FullPath(), "/api")
		if ft, ok := f.take(route); ok {
			c.AbortWithStatusJSON(ft.status, gin.H{"message": ft.message})
			return
		}
		c.Next()
	}
}
