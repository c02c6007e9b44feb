package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/eringen/portfolio/content"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--env-file", "testdata-missing.env"))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFetchPrintsServedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(content.Seed())
	}))
	defer srv.Close()

	out, errOut, err := runCLI(t, "fetch", srv.URL, "-o", "json", "--strict=true")
	if err != nil {
		t.Fatalf("fetch failed: %v (%s)", err, errOut)
	}
	var got content.Document
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, content.Seed()) {
		t.Errorf("printed document = %+v, want seed", got)
	}
	if !strings.Contains(errOut, "state: loaded") {
		t.Errorf("stderr = %q, want loaded state", errOut)
	}
}

func TestFetchFallsBackToDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	out, errOut, err := runCLI(t, "fetch", srv.URL, "-o", "yaml", "--strict=false")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if !strings.Contains(out, "title: Default Project") {
		t.Errorf("stdout = %q, want default document", out)
	}
	if !strings.Contains(errOut, "state: default") {
		t.Errorf("stderr = %q, want default state", errOut)
	}

	if _, _, err := runCLI(t, "fetch", srv.URL, "-o", "json", "--strict=true"); err == nil {
		t.Error("strict fetch should fail when defaults are shown")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "portfolio dev\n" {
		t.Errorf("version output = %q", out)
	}
}
