package operations

import (
	"strings"
	"testing"
	"testing/fstest"
)

func Test_Sources_Embedded(t *testing.T) {
	srcs, err := Sources()
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}
	if len(srcs) != 23 {
		t.Fatalf("len = %d, want 23 (2 fragments, 10 queries, 11 mutations)", len(srcs))
	}
	if srcs[0].Name != "fragments/articlesInfo.graphql" || srcs[1].Name != "fragments/userInfo.graphql" {
		t.Errorf("fragments not first: %s, %s", srcs[0].Name, srcs[1].Name)
	}
	if !strings.HasPrefix(srcs[2].Name, "queries/") || !strings.HasPrefix(srcs[len(srcs)-1].Name, "mutations/") {
		t.Errorf("unexpected group order: %s ... %s", srcs[2].Name, srcs[len(srcs)-1].Name)
	}
}

func Test_SourcesFrom_OrderAndMissingDirs(t *testing.T) {
	fsys := fstest.MapFS{
		"queries/B.graphql":   {Data: []byte("query B { b }")},
		"queries/A.graphql":   {Data: []byte("query A { a }")},
		"queries/notes.txt":   {Data: []byte("ignored")},
		"mutations/M.graphql": {Data: []byte("mutation M { m }")},
	}
	srcs, err := SourcesFrom(fsys)
	if err != nil {
		t.Fatalf("SourcesFrom: %v", err)
	}
	var names []string
	for _, s := range srcs {
		names = append(names, s.Name)
	}
	want := "queries/A.graphql,queries/B.graphql,mutations/M.graphql"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("names = %s, want %s", got, want)
	}
	if srcs[0].Input != "query A { a }" {
		t.Errorf("Input = %q", srcs[0].Input)
	}
}
