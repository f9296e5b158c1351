package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const repoConfig = "../../bindgen.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func Test_Generate_ThenCheck(t *testing.T) {
	target := filepath.Join(t.TempDir(), "jianshu", "generated.go")

	if _, err := run(t, "generate", "--config", repoConfig, "--output", target); err != nil {
		t.Fatalf("generate: %v", err)
	}
	src, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(src, []byte("// Code generated by bindgen. DO NOT EDIT.")) {
		t.Errorf("unexpected output header: %.80s", src)
	}

	if _, err := run(t, "check", "--config", repoConfig, "--output", target); err != nil {
		t.Errorf("check after generate: %v", err)
	}

	if err := os.WriteFile(target, append(src, []byte("\n// edited\n")...), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = run(t, "check", "--config", repoConfig, "--output", target)
	if !errors.Is(err, errStale) {
		t.Errorf("check on edited file = %v, want errStale", err)
	}
}

func Test_Document_JSON(t *testing.T) {
	out, err := run(t, "document", "--config", repoConfig, "--format", "json")
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	var docs []operationDoc
	if err := json.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(docs) != 21 {
		t.Fatalf("len = %d, want 21", len(docs))
	}

	byName := make(map[string]operationDoc, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
	}
	signIn := byName["SignIn"]
	if signIn.Kind != "mutation" || len(signIn.Variables) != 3 || signIn.Variables[2].Name != "rememberme" || !signIn.Variables[2].Required {
		t.Errorf("SignIn = %+v", signIn)
	}
	hot := byName["HotArticles"]
	if len(hot.Fragments) != 1 || hot.Fragments[0] != "articlesInfo" {
		t.Errorf("HotArticles fragments = %v", hot.Fragments)
	}
	if hot.Variables[0].Required {
		t.Error("HotArticles $cursor should be optional")
	}
}

func Test_Document_TextWithDocuments(t *testing.T) {
	out, err := run(t, "document", "--config", repoConfig, "--text")
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if !strings.Contains(out, "($username: String!)") {
		t.Errorf("text output missing ValidUsername row:\n%s", out)
	}
	if strings.Count(out, "fragment userInfo on User") != 3 {
		t.Errorf("expected userInfo text once per CurrentUser, User and FollowList")
	}
}

func Test_Document_UnknownFormat(t *testing.T) {
	if _, err := run(t, "document", "--config", repoConfig, "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func Test_Root_MissingConfig(t *testing.T) {
	if _, err := run(t, "generate", "--config", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing config")
	}
}
