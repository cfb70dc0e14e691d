package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"recommender/internal/httpapi"
	"recommender/internal/llm"
	"recommender/internal/manager"
)

// scriptedRuntime stands in for the Bedrock runtime and replays a body or error.
type scriptedRuntime struct {
	mu     sync.Mutex
	body   string
	err    error
	inputs []string
}

func (s *scriptedRuntime) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var body llm.RequestBody
	_ = json.Unmarshal(in.Body, &body)
	s.inputs = append(s.inputs, body.InputText)
	if s.err != nil { return nil, s.err }
	return &bedrockruntime.InvokeModelOutput{Body: []byte(s.body)}, nil
}

func (s *scriptedRuntime) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs)
}

// newServer wires the real manager and Titan client over rt behind an httptest server.
func newServer(t *testing.T, rt llm.RuntimeAPI) (*httptest.Server, *manager.Manager) {
	t.Helper()
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Generator: llm.NewTitan(rt, llm.Config{}),
		ModelID:   llm.DefaultModelID,
		Region:    "us-east-1",
	})
	srv := httptest.NewServer(httpapi.NewMux(mgr, nil))
	t.Cleanup(srv.Close)
	return srv, mgr
}

// newClient returns a client that keeps cookies and does not follow redirects.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil { t.Fatalf("cookie jar: %v", err) }
	return &http.Client{
		Jar:           jar,
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func get(t *testing.T, c *http.Client, u string) (int, string) {
	t.Helper()
	resp, err := c.Get(u)
	if err != nil { t.Fatalf("GET %s: %v", u, err) }
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func postForm(t *testing.T, c *http.Client, u, value string) (int, string) {
	t.Helper()
	resp, err := c.PostForm(u, url.Values{"value": {value}})
	if err != nil { t.Fatalf("POST %s: %v", u, err) }
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func postJSON(t *testing.T, c *http.Client, u, body string) (int, []byte) {
	t.Helper()
	resp, err := c.Post(u, "application/json", strings.NewReader(body))
	if err != nil { t.Fatalf("POST %s: %v", u, err) }
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
