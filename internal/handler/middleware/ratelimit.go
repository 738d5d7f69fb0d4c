package middleware

import (
	"net/http"
	"sync"
	"time"

	"shiba-faucet/internal/pkg/clock"
	"shiba-faucet/internal/pkg/config"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
)

// RateLimiter keeps a sliding window of request timestamps per key in
// an LRU cache, so the hottest clients stay tracked and idle ones age
// out without a sweeper goroutine.
type RateLimiter struct {
	mu     sync.Mutex
	cache  *lru.Cache
	clock  clock.Clock
	window time.Duration
	ipMax  int
	wMax   int
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	cache, _ := lru.New(cfg.MaxEntries)
	return &RateLimiter{
		cache:  cache,
		clock:  clk,
		window: cfg.Window,
		ipMax:  cfg.IPRequests,
		wMax:   cfg.WalletRequests,
	}
}

func (r *RateLimiter) allow(key string, limit int) bool {
	if limit <= 0 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	cutoff := now.Add(-r.window)

	var stamps []time.Time
	if v, ok := r.cache.Get(key); ok {
		for _, t := range v.([]time.Time) {
			if t.After(cutoff) {
				stamps = append(stamps, t)
			}
		}
	}

	if len(stamps) >= limit {
		r.cache.Add(key, stamps)
		return false
	}

	stamps = append(stamps, now)
	r.cache.Add(key, stamps)
	return true
}

// AllowWallet is called from handlers once the wallet address is known.
// Requests without a wallet dimension are only subject to the IP limit.
func (r *RateLimiter) AllowWallet(wallet string) bool {
	if wallet == "" {
		return true
	}
	return r.allow("wallet:"+wallet, r.wMax)
}

func (r *RateLimiter) PerIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow("ip:"+c.ClientIP(), r.ipMax) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
