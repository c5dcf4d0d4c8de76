package middleware

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency returns middleware that sleeps for a random duration in
// [min, max) before handling the request. The corpus API stands in for a slow
// banking upstream; without this, clients built against it pass locally and
// then time out against the real thing.
//
// min >= max disables the jitter and sleeps exactly min.
func SimulatedLatency(min, max time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		delay := min
		if max > min {
			delay += time.Duration(rand.Int63n(int64(max - min)))
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		c.Next()
	}
}
