package harness

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const httpListenerTimeout = time.Second * 10

// LocalServer is an HTTP server on the loopback interface, used to run the suite against an
// in-process API instead of the real one.
type LocalServer struct {
	server   *http.Server
	listener net.Listener
	errCh    chan error
}

// StartLocalServer starts serving handler on 127.0.0.1:port (port 0 picks a free port), and
// does not return until the listener is answering requests.
func StartLocalServer(port int, handler http.Handler) (*LocalServer, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("could not start local server: %w", err)
	}
	s := &LocalServer{
		server: &http.Server{
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodHead && r.URL.Path == "/" {
					w.WriteHeader(200) // readiness check
					return
				}
				handler.ServeHTTP(w, r)
			}),
			ReadHeaderTimeout: 10 * time.Second, // arbitrary but non-infinite timeout to avoid Slowloris Attack
		},
		listener: listener,
		errCh:    make(chan error, 1),
	}
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- err
		}
		close(s.errCh)
	}()

	// Wait till the server is definitely listening for requests before we run any tests
	deadline := time.NewTimer(httpListenerTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(time.Millisecond * 10)
	defer ticker.Stop()
	client := &http.Client{Timeout: time.Second}
	for {
		select {
		case <-deadline.C:
			_ = s.server.Close()
			return nil, fmt.Errorf("could not detect own listener at %s", s.URL())
		case err, ok := <-s.errCh:
			if !ok {
				err = errors.New("server stopped")
			}
			return nil, fmt.Errorf("local server failed: %w", err)
		case <-ticker.C:
			req, _ := http.NewRequest(http.MethodHead, s.URL()+"/", nil)
			if resp, err := client.Do(req); err == nil {
				_ = resp.Body.Close()
				return s, nil
			}
		}
	}
}

// URL returns the server's root URL, such as "http://127.0.0.1:53012".
func (s *LocalServer) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Close shuts the server down, waiting for active requests up to the context deadline.
func (s *LocalServer) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
