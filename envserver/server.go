package envserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/boarding-sim/sim"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Server upgrades HTTP requests to WebSocket sessions, one simulation each.
type Server struct {
	defaults sim.BoardingConfig
	upgrader websocket.Upgrader
}

// NewServer creates a Server whose sessions reset with defaults unless a
// reset request overrides them.
func NewServer(defaults sim.BoardingConfig) *Server {
	return &Server{
		defaults: defaults,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP handles one client connection until it closes.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("WS upgrade error: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	logrus.Infof("Decision client connected from %s", r.RemoteAddr)
	sess := newSession(srv.defaults)
	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Warnf("WS read error from %s: %v", r.RemoteAddr, err)
			}
			break
		}
		resp := sess.handle(req)
		if resp.Error != "" {
			logrus.Debugf("Request %q from %s failed: %s", req.Op, r.RemoteAddr, resp.Error)
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(resp); err != nil {
			logrus.Warnf("WS write error to %s: %v", r.RemoteAddr, err)
			break
		}
	}
	logrus.Infof("Decision client %s disconnected", r.RemoteAddr)
}

// ListenAndServe serves sessions on addr under /env until ctx is cancelled.
func (srv *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/env", srv)
	httpServer := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Boarding environment listening on ws://%s/env", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
