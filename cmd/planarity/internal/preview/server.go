// Package preview serves the current analysis result as a local web page
// with live reload over a websocket.
package preview

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
)

// Server renders board snapshots at / and pushes reload notifications to
// connected pages over /ws.
type Server struct {
	host      string
	port      int
	board     *present.Board
	log       *logrus.Logger
	upgrader  websocket.Upgrader
	wsClients map[*websocket.Conn]bool
	wsMutex   sync.RWMutex
	srv       *http.Server
}

// NewServer creates a preview server for the given board. A nil log gets a
// default logger.
func NewServer(host string, port int, board *present.Board, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		host:      host,
		port:      port,
		board:     board,
		log:       log,
		wsClients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Local preview only; allow all origins.
				return true
			},
		},
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string { return fmt.Sprintf("%s:%d", s.host, s.port) }

// URL returns the browsable address.
func (s *Server) URL() string { return "http://" + s.Addr() }

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/", s.servePage)
	return mux
}

// Start runs the HTTP server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{Addr: s.Addr(), Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(renderPage(s.board.Snapshot())))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	s.wsMutex.Lock()
	s.wsClients[conn] = true
	s.wsMutex.Unlock()

	defer func() {
		s.wsMutex.Lock()
		delete(s.wsClients, conn)
		s.wsMutex.Unlock()
	}()

	for {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.WithError(err).Debug("websocket closed")
			}
			break
		}

		switch msg["type"] {
		case "HELLO":
			conn.WriteJSON(map[string]any{"type": "ACK"}) //nolint:errcheck
		default:
			s.log.WithField("type", msg["type"]).Debug("unknown websocket message")
		}
	}
}

// NotifyReload tells every connected page to refresh.
func (s *Server) NotifyReload() {
	s.wsMutex.RLock()
	defer s.wsMutex.RUnlock()

	for client := range s.wsClients {
		if err := client.WriteJSON(map[string]any{"type": "RELOAD"}); err != nil {
			s.log.WithError(err).Debug("failed to notify preview client")
		}
	}
}

// ClientCount reports how many preview pages are connected.
func (s *Server) ClientCount() int {
	s.wsMutex.RLock()
	defer s.wsMutex.RUnlock()
	return len(s.wsClients)
}
