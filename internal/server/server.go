// Package server provides the cssel preview server: it serves the
// currently rendered stylesheet together with a minimal HTML shell and
// pushes reload notifications to connected browsers over WebSocket when
// the stylesheet is re-rendered.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/conneroisu/cssel/internal/config"
	"github.com/conneroisu/cssel/internal/logging"
)

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>cssel preview</title>
<link rel="stylesheet" href="/style.css">
</head>
<body>
<h1>cssel preview</h1>
<p>This page reloads automatically when the stylesheet document changes.</p>
<script>
(function connect() {
	var proto = location.protocol === "https:" ? "wss://" : "ws://";
	var ws = new WebSocket(proto + location.host + "/ws");
	ws.onmessage = function (ev) {
		if (ev.data === "reload") {
			location.reload();
		}
	};
	ws.onclose = function () {
		setTimeout(connect, 1000);
	};
})();
</script>
</body>
</html>
`

// PreviewServer serves rendered CSS with live reload.
type PreviewServer struct {
	host           string
	port           int
	allowedOrigins []string
	logger         logging.Logger

	cssMutex sync.RWMutex
	css      string

	clientsMutex sync.Mutex
	clients      map[*websocket.Conn]struct{}

	httpServer *http.Server
}

// New creates a preview server from configuration.
func New(cfg *config.Config, logger logging.Logger) *PreviewServer {
	return &PreviewServer{
		host:           cfg.Server.Host,
		port:           cfg.Server.Port,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger.WithComponent("server"),
		clients:        make(map[*websocket.Conn]struct{}),
	}
}

// SetCSS replaces the served stylesheet and notifies connected clients.
func (s *PreviewServer) SetCSS(ctx context.Context, css string) {
	s.cssMutex.Lock()
	s.css = css
	s.cssMutex.Unlock()

	s.broadcast(ctx, "reload")
}

// CSS returns the currently served stylesheet.
func (s *PreviewServer) CSS() string {
	s.cssMutex.RLock()
	defer s.cssMutex.RUnlock()

	return s.css
}

// Handler returns the server's HTTP handler, exposed for tests.
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/style.css", s.handleCSS)
	mux.HandleFunc("/ws", s.handleWS)

	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *PreviewServer) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info(ctx, "preview server listening", "addr", s.httpServer.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.closeClients()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}

		return nil
	case err := <-errs:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func (s *PreviewServer) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprint(w, s.CSS())
}

func (s *PreviewServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.allowedOrigins,
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "websocket accept failed")
		return
	}

	s.clientsMutex.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMutex.Unlock()

	s.logger.Debug(r.Context(), "websocket client connected")

	// Drain incoming messages; returning deregisters the client.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			break
		}
	}

	s.clientsMutex.Lock()
	delete(s.clients, conn)
	s.clientsMutex.Unlock()

	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *PreviewServer) broadcast(ctx context.Context, msg string) {
	s.clientsMutex.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.clientsMutex.Unlock()

	for _, conn := range conns {
		writeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := conn.Write(writeCtx, websocket.MessageText, []byte(msg)); err != nil {
			s.logger.Debug(ctx, "dropping unresponsive websocket client")
			conn.Close(websocket.StatusPolicyViolation, "write timeout")
		}
		cancel()
	}
}

func (s *PreviewServer) closeClients() {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	for conn := range s.clients {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	s.clients = make(map[*websocket.Conn]struct{})
}
