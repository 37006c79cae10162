package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyCheckTimeout = 2 * time.Second

// ReadyCheck is one dependency probed by /readyz.
type ReadyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyz(checks []ReadyCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		failed := map[string]string{}
		for _, rc := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
			err := rc.Check(ctx)
			cancel()
			if err != nil {
				failed[rc.Name] = err.Error()
			}
		}
		if len(failed) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "failed": failed})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
