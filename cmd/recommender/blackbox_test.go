package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"recommender/pkg/types"
)

// The blackbox tests build the real binary and drive it over HTTP. They never
// reach the hosted model: dummy credentials are set and only local paths run.

// findFreePort picks an available TCP port on localhost.
func findFreePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil { t.Fatalf("listen: %v", err) }
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() { t.Skip("blackbox: skipped in -short mode") }
	binPath := filepath.Join(t.TempDir(), "recommender")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil { t.Fatalf("go build failed: %v\n%s", err, string(out)) }
	return binPath
}

type serverProc struct {
	cmd  *exec.Cmd
	base string // http base URL, e.g. http://127.0.0.1:18080
}

func startServer(t *testing.T, bin string, extra ...string) *serverProc {
	t.Helper()
	port := findFreePort(t)
	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	args := append([]string{"serve", "--addr", fmt.Sprintf("127.0.0.1:%d", port), "--log-format", "json"}, extra...)
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(),
		"AWS_ACCESS_KEY_ID=AKIDEXAMPLE",
		"AWS_SECRET_ACCESS_KEY=secret",
		"AWS_EC2_METADATA_DISABLED=true",
		"REGION=us-east-1",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil { t.Fatalf("start server: %v", err) }
	t.Cleanup(func() { _ = cmd.Process.Kill() })
	// Wait for healthz
	deadline := time.Now().Add(10 * time.Second)
	for {
		resp, err := http.Get(base + "/healthz")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK { break }
		}
		if time.Now().After(deadline) { t.Fatalf("server did not become healthy in time") }
		time.Sleep(50 * time.Millisecond)
	}
	return &serverProc{cmd: cmd, base: base}
}

func bbDo(t *testing.T, c *http.Client, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := c.Do(req)
	if err != nil { t.Fatalf("do: %v", err) }
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}

func TestBlackbox_Flow(t *testing.T) {
	bin := buildBinary(t)
	sp := startServer(t, bin)
	jar, _ := cookiejar.New(nil)
	c := &http.Client{Jar: jar, CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	newReq := func(method, path string, body io.Reader) *http.Request {
		req, err := http.NewRequestWithContext(context.Background(), method, sp.base+path, body)
		if err != nil { t.Fatalf("new req: %v", err) }
		return req
	}

	// /readyz is ready once the model client is configured
	resp, body := bbDo(t, c, newReq(http.MethodGet, "/readyz", nil))
	if resp.StatusCode != http.StatusOK { t.Fatalf("/readyz %d %s", resp.StatusCode, body) }

	// wizard page
	resp, body = bbDo(t, c, newReq(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusOK || !bytes.Contains(body, []byte("Step 1 of 4")) { t.Fatalf("/ %d %s", resp.StatusCode, body) }

	// advance one step through the form
	req := newReq(http.MethodPost, "/wizard/next", strings.NewReader(url.Values{"value": {"Books"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, body = bbDo(t, c, req)
	if resp.StatusCode != http.StatusSeeOther { t.Fatalf("/wizard/next %d %s", resp.StatusCode, body) }

	resp, body = bbDo(t, c, newReq(http.MethodGet, "/api/wizard", nil))
	var st types.WizardState
	if err := json.Unmarshal(body, &st); err != nil || st.Step != 2 || st.Type != "Books" { t.Fatalf("/api/wizard %d %s", resp.StatusCode, body) }

	// /api/options
	resp, body = bbDo(t, c, newReq(http.MethodGet, "/api/options", nil))
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") { t.Fatalf("/api/options content-type=%s", ct) }

	// validation happens before any model call
	req = newReq(http.MethodPost, "/api/recommendations", strings.NewReader(`{"type":"Books"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body = bbDo(t, c, req)
	if resp.StatusCode != http.StatusBadRequest { t.Fatalf("/api/recommendations %d %s", resp.StatusCode, body) }

	// /status
	resp, body = bbDo(t, c, newReq(http.MethodGet, "/status", nil))
	var status types.StatusResponse
	if err := json.Unmarshal(body, &status); err != nil || status.Region != "us-east-1" || status.Sessions < 1 {
		t.Fatalf("/status %d %s", resp.StatusCode, body)
	}
}

func TestBlackbox_GracefulShutdown(t *testing.T) {
	bin := buildBinary(t)
	sp := startServer(t, bin)
	if err := sp.cmd.Process.Signal(syscall.SIGTERM); err != nil { t.Fatalf("signal: %v", err) }
	done := make(chan error, 1)
	go func() { done <- sp.cmd.Wait() }()
	select {
	case err := <-done:
		if err != nil { t.Fatalf("exit: %v", err) }
	case <-time.After(10 * time.Second):
		t.Fatalf("server did not stop after SIGTERM")
	}
}
