package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrock"

	"recommender/internal/catalog"
	"recommender/internal/llm"
	"recommender/internal/manager"
	"recommender/internal/wizard"
	"recommender/pkg/types"
)

// mockService is a minimal Service for handler tests that do not need sessions.
type mockService struct {
	status    types.StatusResponse
	ready     bool
	result    manager.Result
	err       error
	recommend []wizard.Preferences
}

func (m *mockService) Ensure(id string) manager.Snapshot {
	if id == "" {
		id = "sess-new"
	}
	return manager.Snapshot{ID: id, State: *wizard.New()}
}
func (m *mockService) View(id string) manager.Snapshot {
	if id == "" {
		return manager.Snapshot{State: *wizard.New()}
	}
	return m.Ensure(id)
}
func (m *mockService) Advance(id, value string) (manager.Snapshot, error) { return m.Ensure(id), m.err }
func (m *mockService) Back(id string) (manager.Snapshot, error) { return m.Ensure(id), m.err }
func (m *mockService) Submit(ctx context.Context, id, value string) (manager.Snapshot, error) {
	return m.Ensure(id), m.err
}
func (m *mockService) Reset(id string) manager.Snapshot { return m.Ensure("") }
func (m *mockService) Recommend(ctx context.Context, p wizard.Preferences) (manager.Result, error) {
	m.recommend = append(m.recommend, p)
	return m.result, m.err
}
func (m *mockService) Options() catalog.Catalog { return catalog.Default() }
func (m *mockService) Status() types.StatusResponse { return m.status }
func (m *mockService) Ready() bool { return m.ready }

// mockAdmin records inputs and replays canned outputs.
type mockAdmin struct {
	err       error
	listIn    *bedrock.ListFoundationModelsInput
	getIn     *bedrock.GetModelCustomizationJobInput
	createIn  *bedrock.CreateModelCustomizationJobInput
	listOut   *bedrock.ListFoundationModelsOutput
	getOut    *bedrock.GetModelCustomizationJobOutput
	createOut *bedrock.CreateModelCustomizationJobOutput
}

func (a *mockAdmin) CreateModelCustomizationJob(_ context.Context, in *bedrock.CreateModelCustomizationJobInput) (*bedrock.CreateModelCustomizationJobOutput, error) {
	a.createIn = in
	return a.createOut, a.err
}
func (a *mockAdmin) GetModelCustomizationJob(_ context.Context, in *bedrock.GetModelCustomizationJobInput) (*bedrock.GetModelCustomizationJobOutput, error) {
	a.getIn = in
	return a.getOut, a.err
}
func (a *mockAdmin) ListFoundationModels(_ context.Context, in *bedrock.ListFoundationModelsInput) (*bedrock.ListFoundationModelsOutput, error) {
	a.listIn = in
	return a.listOut, a.err
}

// browser drives the HTML flow against a handler, carrying the session cookie.
type browser struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func newBrowser(t *testing.T, gen llm.Generator) (*browser, *manager.Manager) {
	t.Helper()
	m := manager.NewWithConfig(manager.ManagerConfig{Generator: gen})
	return &browser{t: t, h: NewMux(m, nil)}, m
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.h.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			b.cookie = c
			if c.MaxAge < 0 {
				b.cookie = nil
			}
		}
	}
	return w
}

func (b *browser) post(path, value string) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, url.Values{"value": {value}})
}

func (b *browser) page() string {
	b.t.Helper()
	w := b.do(http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		b.t.Fatalf("GET / status=%d", w.Code)
	}
	return w.Body.String()
}

func (b *browser) walkToLastStep() {
	b.t.Helper()
	b.page()
	for _, v := range []string{"Movies", "Inception", "Sci-Fi"} {
		if w := b.post("/wizard/next", v); w.Code != http.StatusSeeOther {
			b.t.Fatalf("next %q status=%d body=%s", v, w.Code, w.Body.String())
		}
	}
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
