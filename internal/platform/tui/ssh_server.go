package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// sessionIDKey stores the per-connection id in the SSH context.
type sessionIDKey struct{}

// SSHServer hosts one independent game per SSH session via Wish.
type SSHServer struct {
	config config.Config
	server *ssh.Server
	logger *log.Logger
	seed   int64
}

// NewSSHServer creates a new SSH server with the given configuration.
// A non-zero seed makes every session start with the same obstacle layout.
func NewSSHServer(cfg config.Config, seed int64, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		logger: logger,
		seed:   seed,
	}

	// Resolve host key path
	hostKeyPath := cfg.Server.HostKey
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".flappy", "host_key")
	}
	hostKeyPath, err := config.ExpandHome(hostKeyPath)
	if err != nil {
		return nil, err
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: logging wraps the terminal check,
	// which wraps the game.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}
	if cfg.Server.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.Server.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:      pty.Window.Width,
		ScreenH:      pty.Window.Height,
		TickRate:     s.config.Display.FPS,
		Seed:         s.seed,
		CellW:        s.config.Display.CellWidth,
		CellH:        s.config.Display.CellHeight,
		TouchPrimary: s.config.Input.TouchPrimary(sess.Environ()),
	}

	logger := s.logger.With("session", sessionID(sess), "user", sess.User())
	model := NewModel(cfg, bubbletea.MakeRenderer(sess), logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware tags the session with an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)

		start := time.Now()
		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// sessionID returns the id assigned by loggingMiddleware.
func sessionID(sess ssh.Session) string {
	if id, ok := sess.Context().Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.Addr())

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		return fmt.Errorf("ssh server: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Server.Address
}
