// Package webhook receives vote push notifications from the bot directory
// and republishes them to the embedding application as an event stream.
package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Vote is a single decoded vote notification. Both IDs stay decimal strings:
// parsing them here could fail and block delivery of an otherwise valid
// event, so numeric conversion is left to the consumer.
type Vote struct {
	BotID     string `json:"bot"`
	UserID    string `json:"user"`
	Kind      string `json:"type"`
	IsWeekend bool   `json:"isWeekend"`
	Query     string `json:"query"`
}

// Listener is an inbound HTTP endpoint for directory vote webhooks. Requests
// are authenticated against a shared secret, decoded, and pushed onto an
// unbounded FIFO stream read via Votes.
type Listener struct {
	secret string
	log    *slog.Logger
	queue  *voteQueue
	router *gin.Engine

	srv  *http.Server
	addr net.Addr
}

// ListenerOption customizes a Listener at construction time.
type ListenerOption func(*Listener)

// WithLogger enables request logging. The default logger discards everything.
func WithLogger(l *slog.Logger) ListenerOption {
	return func(lis *Listener) { lis.log = l }
}

// NewListener builds a listener that accepts POSTs whose Authorization
// header equals secret exactly.
func NewListener(secret string, opts ...ListenerOption) *Listener {
	l := &Listener{
		secret: secret,
		log:    slog.New(slog.DiscardHandler),
		queue:  newVoteQueue(),
	}
	for _, opt := range opts {
		opt(l)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/", l.handleVote)
	l.router = r

	return l
}

// Handler exposes the HTTP handler, for embedding in an existing server.
func (l *Listener) Handler() http.Handler { return l.router }

// Votes returns the notification stream. It is intended for a single
// consumer; delivery order matches arrival order of validated requests. The
// stream has no backpressure: if the consumer stops draining, notifications
// accumulate in memory. The channel closes after Shutdown once everything
// already queued has been delivered.
func (l *Listener) Votes() <-chan Vote { return l.queue.Out() }

// Start binds addr on all interfaces and serves in the background. A failed
// bind is returned immediately and should be treated as fatal by the caller.
func (l *Listener) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	l.addr = ln.Addr()

	l.srv = &http.Server{
		Handler:           l.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := l.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.log.Error("webhook_serve_failed", "error", err)
		}
	}()

	l.log.Info("webhook_listening", "addr", l.addr.String())
	return nil
}

// Addr returns the bound address after Start, useful with a ":0" port.
func (l *Listener) Addr() net.Addr { return l.addr }

// Shutdown stops accepting requests, waits for in-flight handlers within the
// context deadline, then closes the vote stream after it drains.
func (l *Listener) Shutdown(ctx context.Context) error {
	var err error
	if l.srv != nil {
		err = l.srv.Shutdown(ctx)
	}
	l.queue.Close()
	return err
}

func (l *Listener) handleVote(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if subtle.ConstantTimeCompare([]byte(auth), []byte(l.secret)) != 1 {
		l.log.Warn("webhook_unauthorized", "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{
				"code":    "unauthorized",
				"message": "invalid webhook secret",
			},
		})
		return
	}

	var vote Vote
	if err := json.NewDecoder(c.Request.Body).Decode(&vote); err != nil {
		l.log.Warn("webhook_bad_body", "client_ip", c.ClientIP(), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "invalid_body",
				"message": "body is not a vote notification",
			},
		})
		return
	}

	l.queue.Push(vote)
	l.log.Debug("vote_received", "bot", vote.BotID, "user", vote.UserID, "kind", vote.Kind)
	c.Status(http.StatusOK)
}
