package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/starfolio/internal/analytics"
	"github.com/Zachkp/starfolio/internal/contact"
	"github.com/Zachkp/starfolio/internal/projects"
)

type stubSource struct {
	list []projects.Project
	err  error
}

func (s stubSource) ListProjects(_ context.Context, _ string, _ int) ([]projects.Project, error) {
	return s.list, s.err
}

type countingSubmitter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingSubmitter) Submit(_ context.Context, _ contact.FormData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.err
}

func (c *countingSubmitter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type fakeAnalytics struct {
	mu      sync.Mutex
	visits  []string
	cleaned time.Duration
}

func (f *fakeAnalytics) HashIP(ip string) string { return "hashed" }

func (f *fakeAnalytics) RecordVisit(_ context.Context, _, _, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits = append(f.visits, path)
	return nil
}

func (f *fakeAnalytics) Visits() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.visits...)
}

func (f *fakeAnalytics) Stats(_ context.Context) (*analytics.Stats, error) {
	return &analytics.Stats{TotalVisitors: 42, UniqueVisitors: 7}, nil
}

func (f *fakeAnalytics) RecentVisitors(_ context.Context, _ int) ([]analytics.Visitor, error) {
	return []analytics.Visitor{{ID: 1, HashedIP: "abcd", Path: "/", Timestamp: time.Now()}}, nil
}

func (f *fakeAnalytics) Cleanup(_ context.Context, retention time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = retention
	return 3, nil
}

type testEnv struct {
	server    *Server
	submitter *countingSubmitter
	analytics *fakeAnalytics
}

func newTestEnv(t *testing.T, source projects.Source) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sub := &countingSubmitter{}
	fa := &fakeAnalytics{}

	svc := projects.NewService(source, projects.NewMemoryCache(), projects.ServiceOptions{
		User:    "tester",
		PerPage: 30,
		TTL:     time.Minute,
		Logger:  logger,
	})

	s, err := New(Options{
		Mode:          gin.TestMode,
		Projects:      svc,
		Contact:       contact.NewService(sub, nil, logger),
		Analytics:     fa,
		AdminUsername: "owner",
		AdminPassword: "s3cret",
		Seed:          7,
		Logger:        logger,
	})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return &testEnv{server: s, submitter: sub, analytics: fa}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func postForm(path string, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func validContactForm() url.Values {
	return url.Values{
		"firstName": {"Ada"},
		"lastName":  {"Lovelace"},
		"email":     {"ada@example.com"},
		"subject":   {"project"},
		"message":   {"Let's build an analytical engine."},
		"privacy":   {"true"},
	}
}

func TestPagesRender(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Alex Yu"},
		{"/about", "Experience"},
		{"/projects", "Projects"},
		{"/contact", "Get In Touch"},
		{"/privacy", "Privacy Policy"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := env.get(tt.path)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("expected body to contain %q", tt.want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)
	w := env.get("/health")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestUnknownPage(t *testing.T) {
	env := newTestEnv(t, nil)
	if w := env.get("/nowhere"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestThemeCookie(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
	if body := env.do(req).Body.String(); !strings.Contains(body, `<html lang="en" class="light">`) {
		t.Errorf("expected light theme class")
	}

	if body := env.get("/about").Body.String(); !strings.Contains(body, `<html lang="en" class="dark">`) {
		t.Errorf("expected dark theme by default")
	}
}

func idNames(list []projects.Project) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, fmt.Sprintf("%d:%s", p.ID, p.Name))
	}
	sort.Strings(out)
	return out
}

func TestFetchFailureServesFallback(t *testing.T) {
	env := newTestEnv(t, stubSource{err: errors.New("github unavailable")})

	w := env.get("/api/projects")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Projects []projects.Project `json:"projects"`
		Origin   projects.Origin    `json:"origin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if body.Origin != projects.OriginFallback {
		t.Errorf("expected fallback origin, got %s", body.Origin)
	}
	got, want := idNames(body.Projects), idNames(projects.Fallback())
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected fallback list\n got %v\nwant %v", got, want)
	}

	page := env.get("/projects").Body.String()
	if strings.Contains(strings.ToLower(page), "github unavailable") {
		t.Errorf("fetch error leaked into the page")
	}
}

func TestMissingDescriptionPlaceholder(t *testing.T) {
	env := newTestEnv(t, stubSource{list: []projects.Project{
		{ID: 10, Name: "bare-repo", URL: "https://example.com/bare", UpdatedAt: time.Now()},
	}})

	body := env.get("/projects").Body.String()
	if !strings.Contains(body, "bare-repo") || !strings.Contains(body, "No description available") {
		t.Errorf("expected placeholder description in the project grid")
	}
}

func TestProjectGridFilters(t *testing.T) {
	env := newTestEnv(t, nil)

	all := env.get("/projects/grid?language=all").Body.String()
	for _, p := range projects.Fallback() {
		if !strings.Contains(all, p.Name) {
			t.Errorf("language=all is missing %s", p.Name)
		}
	}

	python := env.get("/projects/grid?language=Python").Body.String()
	if !strings.Contains(python, "ML-DataScience-Toolkit") || strings.Contains(python, "React-Dashboard-Pro") {
		t.Errorf("unexpected python filter result")
	}

	none := env.get("/projects/grid?q=zzzz-no-match").Body.String()
	if !strings.Contains(none, "No projects found") {
		t.Errorf("expected empty state")
	}
}

func TestProjectModal(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/projects/1")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "3D-Portfolio-Website") {
		t.Errorf("unexpected modal response %d", w.Code)
	}

	for _, path := range []string{"/projects/999", "/projects/abc"} {
		if w := env.get(path); w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func TestAPIProject(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/api/projects/2")
	var p projects.Project
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil || p.ID != 2 {
		t.Errorf("unexpected project response %d %s", w.Code, w.Body.String())
	}

	if w := env.get("/api/projects/999"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAPIProjectsSortByStars(t *testing.T) {
	env := newTestEnv(t, nil)

	var body struct {
		Projects []projects.Project `json:"projects"`
	}
	w := env.get("/api/projects?sort=stars")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for i := 1; i < len(body.Projects); i++ {
		if body.Projects[i-1].Stars < body.Projects[i].Stars {
			t.Fatalf("stars not descending at %d", i)
		}
	}
}

func TestContactShortMessageNeverSubmits(t *testing.T) {
	env := newTestEnv(t, nil)

	form := validContactForm()
	form.Set("message", "too short")
	w := env.do(postForm("/contact", form, true))

	// htmx only swaps 2xx responses, so the fragment must not carry 422
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for an htmx request, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Message must be at least 10 characters") {
		t.Errorf("expected message field error")
	}
	if !strings.Contains(body, `hx-post="/contact"`) || strings.Contains(body, "<html") {
		t.Errorf("expected the form fragment, not a full page")
	}
	if env.submitter.Calls() != 0 {
		t.Errorf("submitter called %d times", env.submitter.Calls())
	}
}

func TestContactMissingPrivacy(t *testing.T) {
	env := newTestEnv(t, nil)

	form := validContactForm()
	form.Del("privacy")
	w := env.do(postForm("/contact", form, false))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "You must agree to the privacy policy") || !strings.Contains(body, "Get In Touch") {
		t.Errorf("expected full page with privacy error")
	}
	if env.submitter.Calls() != 0 {
		t.Errorf("submitter should not be called")
	}
}

func TestContactSuccess(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(postForm("/contact", validContactForm(), true))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Message sent successfully!") {
		t.Errorf("expected success toast")
	}
	if env.submitter.Calls() != 1 {
		t.Errorf("expected one submission, got %d", env.submitter.Calls())
	}
}

func TestContactFailureKeepsInput(t *testing.T) {
	env := newTestEnv(t, nil)
	env.submitter.err = contact.ErrSimulatedFailure

	w := env.do(postForm("/contact", validContactForm(), true))
	body := w.Body.String()
	if !strings.Contains(body, "Failed to send message. Please try again later.") {
		t.Errorf("expected failure toast")
	}
	if !strings.Contains(body, `value="ada@example.com"`) {
		t.Errorf("expected the form to keep the visitor's input")
	}
}

func TestStarfieldAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/api/starfield/hero?seed=3&theme=light")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var snap struct {
		Variant   string    `json:"variant"`
		Theme     string    `json:"theme"`
		Seed      uint64    `json:"seed"`
		Count     int       `json:"count"`
		Positions []float32 `json:"positions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if snap.Variant != "hero" || snap.Theme != "light" || snap.Seed != 3 || snap.Count != 2000 || len(snap.Positions) != 6000 {
		t.Errorf("unexpected snapshot header %+v", snap)
	}

	if w := env.get("/api/starfield/nebula"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown variant, got %d", w.Code)
	}
	if w := env.get("/api/starfield/background?seed=abc"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad seed, got %d", w.Code)
	}
}

func TestStarfieldAPIDefaultsToServerSeed(t *testing.T) {
	env := newTestEnv(t, nil)

	a := env.get("/api/starfield/interactive").Body.String()
	b := env.get("/api/starfield/interactive?seed=7").Body.String()
	if a != b {
		t.Errorf("default seed should be the server seed")
	}
}

func TestGeometryAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	var body struct {
		Geometries []struct {
			Shape string `json:"shape"`
		} `json:"geometries"`
	}
	w := env.get("/api/starfield/geometry?seed=1")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body.Geometries) != 15 || body.Geometries[0].Shape != "box" {
		t.Errorf("unexpected geometry response %s", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://elsewhere.dev")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := env.do(req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("expected CORS headers on preflight")
	}
}

func TestVisitorTracking(t *testing.T) {
	env := newTestEnv(t, nil)

	dnt := httptest.NewRequest(http.MethodGet, "/about", nil)
	dnt.Header.Set("DNT", "1")
	env.do(dnt)
	env.get("/static/site.css")
	env.get("/api/projects")
	env.get("/")

	env.server.Wait()

	visits := env.analytics.Visits()
	if len(visits) != 1 || visits[0] != "/" {
		t.Errorf("expected only / to be tracked, got %v", visits)
	}
}

func TestAdminFlow(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/admin/dashboard")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/login" {
		t.Fatalf("expected redirect to login, got %d", w.Code)
	}

	bad := env.do(postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"nope"}}, false))
	if bad.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", bad.Code)
	}

	ok := env.do(postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"s3cret"}}, false))
	if ok.Code != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d", ok.Code)
	}
	cookies := ok.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Name != adminCookie {
		t.Fatalf("expected admin cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookies[0])
	dash := env.do(req)
	if dash.Code != http.StatusOK || !strings.Contains(dash.Body.String(), "42") {
		t.Errorf("unexpected dashboard response %d", dash.Code)
	}

	cleanup := postForm("/admin/cleanup", url.Values{}, false)
	cleanup.Header.Set("Accept", "application/json")
	cleanup.AddCookie(cookies[0])
	res := env.do(cleanup)
	if res.Code != http.StatusOK || !strings.Contains(res.Body.String(), `"removed":3`) {
		t.Errorf("unexpected cleanup response %d %s", res.Code, res.Body.String())
	}
	if env.analytics.cleaned != 365*24*time.Hour {
		t.Errorf("cleanup should use the default retention, got %s", env.analytics.cleaned)
	}

	forged := httptest.NewRequest(http.MethodGet, "/admin/visitors", nil)
	forged.AddCookie(&http.Cookie{Name: adminCookie, Value: "forged"})
	if w := env.do(forged); w.Code != http.StatusFound {
		t.Errorf("forged token accepted")
	}
}

func TestRetentionText(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "12 months"},
		{365 * 24 * time.Hour, "12 months"},
		{2 * 365 * 24 * time.Hour, "2 years"},
		{90 * 24 * time.Hour, "3 months"},
		{10 * 24 * time.Hour, "10 days"},
	}
	for _, tt := range tests {
		if got := retentionText(tt.in); got != tt.want {
			t.Errorf("retentionText(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type blockingAnalytics struct {
	fakeAnalytics
	release chan struct{}
}

func (b *blockingAnalytics) RecordVisit(ctx context.Context, ip, agent, path string) error {
	<-b.release
	return b.fakeAnalytics.RecordVisit(ctx, ip, agent, path)
}

func TestWaitBlocksUntilVisitWritten(t *testing.T) {
	store := &blockingAnalytics{release: make(chan struct{})}
	s, err := New(Options{
		Mode:      gin.TestMode,
		Projects:  projects.NewService(nil, nil, projects.ServiceOptions{}),
		Contact:   contact.NewService(&countingSubmitter{}, nil, nil),
		Analytics: store,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatal(err)
	}

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	waited := make(chan struct{})
	go func() {
		s.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while a visit was still being written")
	case <-time.After(20 * time.Millisecond):
	}

	close(store.release)
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the write finished")
	}
	if got := store.Visits(); len(got) != 1 {
		t.Errorf("expected one recorded visit, got %v", got)
	}
}
