package hookflow

import "testing"

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   []Param
		want     string
	}{
		{
			name:     "inline substitution",
			template: "https://api.github.com/repos/{owner}/{repo}",
			params:   []Param{P("owner", "acme"), P("repo", "api")},
			want:     "https://api.github.com/repos/acme/api",
		},
		{
			name:     "segment substitution",
			template: "https://api.github.com/users/octocat/following{/other_user}",
			params:   []Param{P("other_user", "hubot")},
			want:     "https://api.github.com/users/octocat/following/hubot",
		},
		{
			name:     "nil truncates at segment token",
			template: "https://api.github.com/users/octocat/following{/other_user}",
			params:   []Param{P("other_user", nil)},
			want:     "https://api.github.com/users/octocat/following",
		},
		{
			name:     "empty string truncates at segment token",
			template: "https://x/{a}{/b}",
			params:   []Param{P("a", "1"), P("b", "")},
			want:     "https://x/1",
		},
		{
			name:     "absence stops later params",
			template: "https://x{/a}{/b}",
			params:   []Param{P("a", nil), P("b", "kept-out")},
			want:     "https://x",
		},
		{
			name:     "numeric zero is a value",
			template: "https://x{/n}",
			params:   []Param{P("n", 0)},
			want:     "https://x/0",
		},
		{
			name:     "boolean false is a value",
			template: "https://x{/flag}",
			params:   []Param{P("flag", false)},
			want:     "https://x/false",
		},
		{
			name:     "json float renders without fraction",
			template: "https://x/items{/id}",
			params:   []Param{P("id", float64(42))},
			want:     "https://x/items/42",
		},
		{
			name:     "unknown param is a no-op",
			template: "https://x/{a}",
			params:   []Param{P("nope", "v"), P("a", "1")},
			want:     "https://x/1",
		},
		{
			name:     "no params returns template unchanged",
			template: "https://x/{a}{/b}",
			params:   nil,
			want:     "https://x/{a}{/b}",
		},
		{
			name:     "multi param order",
			template: "https://x/starred{/owner}{/repo}",
			params:   []Param{P("owner", "acme"), P("repo", "api")},
			want:     "https://x/starred/acme/api",
		},
		{
			name:     "absent without token still stops processing",
			template: "https://x/{a}",
			params:   []Param{P("b", nil), P("a", "never")},
			want:     "https://x/{a}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.template, tt.params...)
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}
