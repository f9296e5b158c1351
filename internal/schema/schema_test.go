package schema

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

func Test_Load_RootsAndTypes(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Query == nil || s.Query.Name != "Query" {
		t.Fatalf("query root = %v", s.Query)
	}
	if s.Mutation == nil || s.Mutation.Name != "Mutation" {
		t.Fatalf("mutation root = %v", s.Mutation)
	}

	tests := []struct {
		name string
		kind ast.DefinitionKind
	}{
		{"Article", ast.Object},
		{"User", ast.Object},
		{"PageInfo", ast.Object},
		{"ArticleEdge", ast.Object},
		{"ArticleConnection", ast.Object},
		{"ArticleState", ast.Enum},
		{"Gender", ast.Enum},
		{"UserState", ast.Enum},
		{"Time", ast.Scalar},
		{"NullString", ast.Scalar},
		{"Int64", ast.Scalar},
		{"Upload", ast.Scalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := s.Types[tt.name]
			if def == nil {
				t.Fatalf("type %s missing", tt.name)
			}
			if def.Kind != tt.kind {
				t.Errorf("%s kind = %s, want %s", tt.name, def.Kind, tt.kind)
			}
		})
	}
}

func Test_Load_ArticleStateDescriptions(t *testing.T) {
	s := MustLoad()
	v := s.Types["ArticleState"].EnumValues.ForName("Online")
	if v == nil || v.Description != "已发布" {
		t.Errorf("Online = %+v, want description 已发布", v)
	}
}

func Test_Load_ReturnsSharedSchema(t *testing.T) {
	a, _ := Load()
	b, _ := Load()
	if a != b {
		t.Error("Load should return the same schema on every call")
	}
}
