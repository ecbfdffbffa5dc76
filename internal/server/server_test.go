package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/docktile/docktile/pkg/dock"
	"github.com/docktile/docktile/pkg/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(store.NewMemoryStore(), log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func sampleDumpJSON(t *testing.T) []byte {
	t.Helper()
	root, err := dock.BuildRoot(dock.NewNullFactory(),
		dock.HSplit(0.3, dock.Text("A"), dock.Text("B")))
	if err != nil {
		t.Fatalf("build sample: %v", err)
	}
	data, err := dock.MarshalDump(root.Dump())
	if err != nil {
		t.Fatalf("marshal sample: %v", err)
	}
	return data
}

func doRequest(t *testing.T, method, url string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestLayoutLifecycle(t *testing.T) {
	ts := newTestServer(t)
	dumpJSON := sampleDumpJSON(t)

	// Create
	resp := doRequest(t, http.MethodPut, ts.URL+"/layouts/editor", dumpJSON)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("PUT status = %d, want 201", resp.StatusCode)
	}
	var created store.Layout
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" || created.Name != "editor" {
		t.Errorf("created = %+v", created)
	}

	// Update keeps identity
	resp = doRequest(t, http.MethodPut, ts.URL+"/layouts/editor", dumpJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second PUT status = %d, want 200", resp.StatusCode)
	}
	var updated store.Layout
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update changed ID from %s to %s", created.ID, updated.ID)
	}

	// Get
	resp = doRequest(t, http.MethodGet, ts.URL+"/layouts/editor", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", resp.StatusCode)
	}
	var got store.Layout
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if got.Dump == nil || got.Dump.Type != dock.TypeRoot {
		t.Errorf("GET dump = %+v", got.Dump)
	}

	// List
	resp = doRequest(t, http.MethodGet, ts.URL+"/layouts", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var list []layoutSummary
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "editor" {
		t.Errorf("list = %+v", list)
	}

	// Delete
	resp = doRequest(t, http.MethodDelete, ts.URL+"/layouts/editor", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", resp.StatusCode)
	}
	resp = doRequest(t, http.MethodGet, ts.URL+"/layouts/editor", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestPutRejectsBadInput(t *testing.T) {
	ts := newTestServer(t)

	resp := doRequest(t, http.MethodPut, ts.URL+"/layouts/editor", []byte(`{"type":"grid"}`))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed dump status = %d, want 400", resp.StatusCode)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "INVALID_DUMP" {
		t.Errorf("error code = %s, want INVALID_DUMP", body.Error.Code)
	}

	resp = doRequest(t, http.MethodPut, ts.URL+"/layouts/bad..name", sampleDumpJSON(t))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad name status = %d, want 400", resp.StatusCode)
	}
}

func TestDeriveEndpoint(t *testing.T) {
	ts := newTestServer(t)

	markup := "hsplit ratio=0.3\n  view\n    | A\n  view\n    | B\n"
	resp := doRequest(t, http.MethodPost, ts.URL+"/derive", []byte(markup))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("derive status = %d, want 200", resp.StatusCode)
	}
	var dump dock.Dump
	if err := json.NewDecoder(resp.Body).Decode(&dump); err != nil {
		t.Fatalf("decode dump: %v", err)
	}
	if dump.Type != dock.TypeRoot || len(dump.Children) != 1 {
		t.Fatalf("dump = %+v", dump)
	}
	split := dump.Children[0]
	if split.Type != dock.TypeSplit || split.Ratio == nil || *split.Ratio != 0.3 {
		t.Errorf("derived split = %+v", split)
	}
}

func TestDeriveRejectsBadMarkup(t *testing.T) {
	ts := newTestServer(t)

	resp := doRequest(t, http.MethodPost, ts.URL+"/derive", []byte("grid\n  view"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("derive status = %d, want 400", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(data), "INVALID_MARKUP") {
		t.Errorf("error body %s missing INVALID_MARKUP", data)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp := doRequest(t, http.MethodGet, ts.URL+"/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", resp.StatusCode)
	}
}
