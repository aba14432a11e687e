package link

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

var ErrAborted = errors.New("link aborted")

//go:generate mockgen -source=server.go -destination=server_mock.go -package=link
type TokenAPI interface {
	CreateLinkToken(ctx context.Context, userID, accessToken string) (string, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (string, error)
}

// Server runs the browser link flow on a local port. It blocks until the
// widget reports back or ctx ends.
type Server struct {
	api     TokenAPI
	addr    string
	userID  string
	onReady func(url string)
	log     *slog.Logger
}

type Option func(*Server)

// WithUserID sets the client user id sent with every link token request.
func WithUserID(id string) Option { return func(s *Server) { s.userID = id } }

// WithOnReady is called with the page URL once the server is listening.
func WithOnReady(fn func(url string)) Option { return func(s *Server) { s.onReady = fn } }

func NewServer(api TokenAPI, addr string, opts ...Option) *Server {
	s := &Server{
		api:    api,
		addr:   addr,
		userID: "onm",
		log:    slog.Default().With("component", "link"),
	}

	s.onReady = func(url string) { s.log.Info("open the link page in a browser", "url", url) }

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AccessToken links a new institution and returns its access token.
func (s *Server) AccessToken(ctx context.Context) (string, error) {
	token, err := s.run(ctx, "")
	if err != nil {
		return "", fmt.Errorf("link institution: %w", err)
	}

	return token, nil
}

// UpdateLink re-authenticates the item behind accessToken.
func (s *Server) UpdateLink(ctx context.Context, accessToken string) error {
	if _, err := s.run(ctx, accessToken); err != nil {
		return fmt.Errorf("update link: %w", err)
	}

	return nil
}

func (s *Server) run(ctx context.Context, accessToken string) (string, error) {
	linkToken, err := s.api.CreateLinkToken(ctx, s.userID, accessToken)
	if err != nil {
		return "", err
	}

	h := newHandler(linkToken, accessToken != "", s.api.ExchangePublicToken)

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", s.addr, err)
	}

	srv := &http.Server{Handler: h.router(), ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("link server failed", "error", err)
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	s.onReady("http://" + ln.Addr().String())

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-h.done:
		if res.err != nil {
			return "", res.err
		}

		if accessToken != "" {
			return accessToken, nil
		}

		return res.accessToken, nil
	}
}
