package projector

import "testing"

func Test_GoName_Cases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "ID"},
		{"uid", "UID"},
		{"subTitle", "SubTitle"},
		{"endCursor", "EndCursor"},
		{"ViewNum", "ViewNum"},
		{"rememberme", "Rememberme"},
		{"__typename", "Typename"},
		{"UnFollow", "UnFollow"},
		{"articlesInfo", "ArticlesInfo"},
		{"avatarUrl", "AvatarURL"},
		{"HTTPServer", "HTTPServer"},
		{"UNAUDITED", "Unaudited"},
		{"snake_case_name", "SnakeCaseName"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := GoName(tt.in); got != tt.want {
				t.Errorf("GoName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func Test_LowerFirst_Cases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User", "user"},
		{"HotArticlesQuery", "hotArticlesQuery"},
		{"ID", "id"},
		{"IDList", "idList"},
		{"already", "already"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := lowerFirst(tt.in); got != tt.want {
				t.Errorf("lowerFirst(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
