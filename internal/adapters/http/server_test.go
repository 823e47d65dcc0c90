package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/guessgame/completionrate/internal/adapters/http"
	"github.com/guessgame/completionrate/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func loopback(port int) config.ServerConfig {
	return config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// run starts s in the background and waits until it listens. Canceling the
// returned context stops it; the channel yields Run's result.
func run(t *testing.T, s *adapthttp.Server) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	select {
	case <-s.Ready():
	case err := <-errCh:
		t.Fatalf("Run() returned before listening: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}
	return cancel, errCh
}

func wait(t *testing.T, errCh <-chan error) error {
	t.Helper()

	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
		return nil
	}
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, http.NoBody)
	if err != nil {
		t.Errorf("NewRequest: %v", err)
		return 0, ""
	}
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Do(req)
	if err != nil {
		t.Errorf("GET %s: %v", url, err)
		return 0, ""
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	if s := adapthttp.NewServer(loopback(0), http.NotFoundHandler(), nil); s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_AddrBeforeRun(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopback(9090), http.NotFoundHandler(), discardLogger())

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func TestServer_ServesUntilCanceled(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopback(0), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}), discardLogger())
	cancel, errCh := run(t, s)

	addr := s.Addr()
	if strings.HasSuffix(addr, ":0") {
		t.Fatalf("Addr() = %q, want the bound port", addr)
	}
	if status, body := get(t, "http://"+addr+"/health/live"); status != http.StatusOK || body != "ok" {
		t.Errorf("GET = %d %q, want 200 \"ok\"", status, body)
	}

	cancel()
	if err := wait(t, errCh); err != nil {
		t.Fatalf("Run() error after cancel: %v", err)
	}
}

func TestServer_CancelDrainsInFlightRequest(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	s := adapthttp.NewServer(loopback(0), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		_, _ = io.WriteString(w, "finished")
	}), discardLogger())
	cancel, errCh := run(t, s)

	type result struct {
		status int
		body   string
	}
	got := make(chan result, 1)
	go func() {
		status, body := get(t, "http://"+s.Addr()+"/")
		got <- result{status, body}
	}()

	<-entered
	cancel()
	// Run must not return while the handler still holds the request.
	select {
	case err := <-errCh:
		t.Fatalf("Run() returned %v before the in-flight request finished", err)
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	if r := <-got; r.status != http.StatusOK || r.body != "finished" {
		t.Errorf("in-flight GET = %d %q, want 200 \"finished\"", r.status, r.body)
	}
	if err := wait(t, errCh); err != nil {
		t.Fatalf("Run() error after drain: %v", err)
	}
}

func TestServer_ShutdownEndsRun(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopback(0), http.NotFoundHandler(), discardLogger())
	_, errCh := run(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := wait(t, errCh); err != nil {
		t.Fatalf("Run() error after Shutdown: %v", err)
	}
}

func TestServer_RunFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	s := adapthttp.NewServer(loopback(ln.Addr().(*net.TCPAddr).Port), http.NotFoundHandler(), discardLogger())

	if err := s.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want listen failure")
	}
	select {
	case <-s.Ready():
		t.Error("Ready() closed although Run never listened")
	default:
	}
}
