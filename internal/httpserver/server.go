package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"github.com/tinytelemetry/lotus-wallet/internal/payload"
)

// maxBodyBytes caps validate request bodies well above any sane payload limit.
const maxBodyBytes = 1 << 20

// Config wires the static data and limits served by the API.
type Config struct {
	Tokens       []model.TokenPreset
	Chains       model.ChainSwitcher
	MaxPayloadKB float64
}

// Server provides an HTTP API with wallet metadata and payload validation
// for upstream forms.
type Server struct {
	addr      string
	cfg       Config
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server.
func NewServer(addr string, cfg Config) *Server {
	if addr == "" {
		addr = model.DefaultAPIAddr
	}
	if cfg.MaxPayloadKB <= 0 {
		cfg.MaxPayloadKB = model.DefaultMaxPayloadKB
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		cfg:       cfg,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// Handler builds the gin engine with every API route.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/tokens", s.handleTokens)
	api.GET("/chains", s.handleChains)
	api.POST("/payload/validate", s.handleValidatePayload)

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Addr returns the bound address once started, else the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) chains() []model.Chain {
	if s.cfg.Chains == nil {
		return []model.Chain{}
	}
	return s.cfg.Chains.Chains()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime":         time.Since(s.startTime).String(),
		"token_count":    len(s.cfg.Tokens),
		"chain_count":    len(s.chains()),
		"max_payload_kb": s.cfg.MaxPayloadKB,
	})
}

func (s *Server) handleTokens(c *gin.Context) {
	tokens := s.cfg.Tokens
	if raw := c.Query("chainId"); raw != "" {
		chainID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chainId must be a positive integer"})
			return
		}
		filtered := make([]model.TokenPreset, 0, len(tokens))
		for _, t := range tokens {
			if t.ChainID == chainID {
				filtered = append(filtered, t)
			}
		}
		tokens = filtered
	}
	if tokens == nil {
		tokens = []model.TokenPreset{}
	}

	c.JSON(http.StatusOK, gin.H{
		"tokens": tokens,
		"count":  len(tokens),
	})
}

func (s *Server) handleChains(c *gin.Context) {
	chains := s.chains()
	c.JSON(http.StatusOK, gin.H{
		"chains": chains,
		"count":  len(chains),
	})
}

func (s *Server) handleValidatePayload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req struct {
		Payload   json.RawMessage `json:"payload"`
		MaxSizeKB float64         `json:"maxSizeKB"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if len(req.Payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing payload field"})
		return
	}

	limit := req.MaxSizeKB
	if limit <= 0 {
		limit = s.cfg.MaxPayloadKB
	}

	// The raw payload is measured as compact JSON, exactly as sent.
	c.JSON(http.StatusOK, payload.ValidateSize(req.Payload, limit))
}
