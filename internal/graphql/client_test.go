package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/jamesprial/jianshu-mcp/internal/config"
)

// Verify that HTTPClient satisfies the Client interface at compile time.
var _ Client = (*HTTPClient)(nil)

// capturedRequest holds what the test server saw.
type capturedRequest struct {
	Method  string
	Path    string
	Headers http.Header
	Body    map[string]any
}

// newCapturingServer starts a server that records each request and answers
// with status and body.
func newCapturingServer(t *testing.T, status int, body string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []capturedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)

		mu.Lock()
		reqs = append(reqs, capturedRequest{Method: r.Method, Path: r.URL.Path, Headers: r.Header.Clone(), Body: decoded})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func newTestClient(t *testing.T, url string, opts ...Option) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(config.GraphQLConfig{URL: url, Timeout: 5}, opts...)
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	return c
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func Test_NewHTTPClient_Cases(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.GraphQLConfig
		wantErr     bool
		wantURL     string
		wantTimeout time.Duration
	}{
		{name: "empty URL", cfg: config.GraphQLConfig{}, wantErr: true},
		{name: "appends /graphql", cfg: config.GraphQLConfig{URL: "http://host:8000"}, wantURL: "http://host:8000/graphql", wantTimeout: 30 * time.Second},
		{name: "trailing slash", cfg: config.GraphQLConfig{URL: "http://host/"}, wantURL: "http://host/graphql", wantTimeout: 30 * time.Second},
		{name: "already normalised", cfg: config.GraphQLConfig{URL: "http://host/graphql/", Timeout: 7}, wantURL: "http://host/graphql", wantTimeout: 7 * time.Second},
		{name: "negative timeout uses default", cfg: config.GraphQLConfig{URL: "http://host", Timeout: -1}, wantURL: "http://host/graphql", wantTimeout: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewHTTPClient(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.URL() != tt.wantURL {
				t.Errorf("URL = %q, want %q", c.URL(), tt.wantURL)
			}
			if c.httpClient.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, tt.wantTimeout)
			}
		})
	}
}

func Test_NewHTTPClient_HeadersCopied(t *testing.T) {
	headers := map[string]string{"Authorization": "Bearer a"}
	c, err := NewHTTPClient(config.GraphQLConfig{URL: "http://h", Headers: headers})
	if err != nil {
		t.Fatal(err)
	}
	headers["Authorization"] = "changed"
	if c.headers["Authorization"] != "Bearer a" {
		t.Error("client headers alias the config map")
	}
}

// ---------------------------------------------------------------------------
// Execute
// ---------------------------------------------------------------------------

func Test_HTTPClient_Execute_WireFormat(t *testing.T) {
	srv, reqs := newCapturingServer(t, http.StatusOK, `{"data":{"ValidUsername":true}}`)
	c, err := NewHTTPClient(config.GraphQLConfig{URL: srv.URL, Headers: map[string]string{"Cookie": "sid=1"}})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := c.Execute(context.Background(), &Request{
		OperationName: "ValidUsername",
		Kind:          Query,
		Query:         "query ValidUsername($username: String!) { ValidUsername(username: $username) }",
		Variables:     map[string]any{"username": "ann"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Data) != `{"ValidUsername":true}` {
		t.Errorf("Data = %s", resp.Data)
	}

	got := (*reqs)[0]
	if got.Method != http.MethodPost || got.Path != "/graphql" {
		t.Errorf("request = %s %s, want POST /graphql", got.Method, got.Path)
	}
	want := map[string]any{
		"query":         "query ValidUsername($username: String!) { ValidUsername(username: $username) }",
		"operationName": "ValidUsername",
		"variables":     map[string]any{"username": "ann"},
	}
	if diff := cmp.Diff(want, got.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if ct := got.Headers.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got.Headers.Get("Cookie") != "sid=1" {
		t.Errorf("configured header missing: %v", got.Headers)
	}
	if _, err := uuid.Parse(got.Headers.Get(requestIDHeader)); err != nil {
		t.Errorf("%s is not a uuid: %v", requestIDHeader, err)
	}
}

func Test_HTTPClient_Execute_NilVariablesOmitted(t *testing.T) {
	srv, reqs := newCapturingServer(t, http.StatusOK, `{"data":{"Logout":true}}`)
	c := newTestClient(t, srv.URL)

	if _, err := c.Execute(context.Background(), &Request{OperationName: "Logout", Kind: Mutation, Query: "mutation Logout { Logout }"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := (*reqs)[0].Body["variables"]; ok {
		t.Errorf("variables present in body: %v", (*reqs)[0].Body)
	}
}

func Test_HTTPClient_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		req       *Request
		wantErr   error
		errSubstr string
	}{
		{name: "nil request", req: nil, errSubstr: "nil request"},
		{name: "upload refused", req: &Request{Uploads: true}, wantErr: ErrUploadUnsupported},
		{name: "401", status: http.StatusUnauthorized, body: "{}", req: &Request{}, errSubstr: "authentication failed"},
		{name: "500", status: http.StatusInternalServerError, body: "oops", req: &Request{}, errSubstr: "unexpected HTTP status 500"},
		{name: "bad JSON", status: http.StatusOK, body: "not json", req: &Request{}, errSubstr: "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, reqs := newCapturingServer(t, tt.status, tt.body)
			c := newTestClient(t, srv.URL)

			resp, err := c.Execute(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if resp != nil {
				t.Errorf("resp = %+v, want nil", resp)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("err = %q, want it to contain %q", err, tt.errSubstr)
			}
			if (tt.req == nil || tt.req.Uploads) && len(*reqs) != 0 {
				t.Error("request sent although it should have been refused locally")
			}
		})
	}
}

func Test_HTTPClient_Execute_GraphQLErrorsPassThrough(t *testing.T) {
	body := `{"data":{"User":null},"errors":[{"message":"no such user","path":["User"]}],"extensions":{"cost":1}}`
	srv, _ := newCapturingServer(t, http.StatusOK, body)
	c := newTestClient(t, srv.URL)

	resp, err := c.Execute(context.Background(), &Request{OperationName: "User"})
	if err != nil {
		t.Fatalf("GraphQL errors must not be a transport error: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Message != "no such user" {
		t.Errorf("Errors = %v", resp.Errors)
	}
	if resp.Extensions["cost"] != float64(1) {
		t.Errorf("Extensions = %v", resp.Extensions)
	}
}

func Test_HTTPClient_Execute_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Execute(ctx, &Request{OperationName: "Slow"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

func Test_HTTPClient_Execute_DebugLogging(t *testing.T) {
	srv, _ := newCapturingServer(t, http.StatusOK, `{"data":{}}`)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := newTestClient(t, srv.URL, WithLogger(logrus.NewEntry(logger)))

	if _, err := c.Execute(context.Background(), &Request{OperationName: "CurrentUser", Kind: Query}); err != nil {
		t.Fatal(err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry")
	}
	if entry.Message != "graphql request completed" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.Data["operation"] != "CurrentUser" || entry.Data["kind"] != "query" {
		t.Errorf("fields = %v", entry.Data)
	}
}

func Test_HTTPClient_WithHTTPClient(t *testing.T) {
	var used bool
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		used = true
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"data":{"IsFollow":false}}`)),
			Header:     make(http.Header),
		}, nil
	})}
	c := newTestClient(t, "http://jianshu.invalid", WithHTTPClient(hc), WithHTTPClient(nil))

	if _, err := c.Execute(context.Background(), &Request{}); err != nil {
		t.Fatal(err)
	}
	if !used {
		t.Error("custom http.Client was not used")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func Test_HTTPClient_ConcurrentUse(t *testing.T) {
	srv, reqs := newCapturingServer(t, http.StatusOK, `{"data":{}}`)
	c := newTestClient(t, srv.URL)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Execute(context.Background(), &Request{}); err != nil {
				t.Errorf("Execute: %v", err)
			}
		}()
	}
	wg.Wait()

	ids := make(map[string]struct{}, n)
	for _, r := range *reqs {
		ids[r.Headers.Get(requestIDHeader)] = struct{}{}
	}
	if len(ids) != n {
		t.Errorf("got %d distinct request ids, want %d", len(ids), n)
	}
}
