package structure_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bashate/pkg/lint"
	_ "github.com/leapstack-labs/bashate/pkg/lint/rules/structure" // register rules
	"github.com/leapstack-labs/bashate/pkg/token"
)

// Helper to run analysis and filter by rule ID
func runRule(t *testing.T, content, ruleID string, opts map[string]any) []lint.Diagnostic {
	t.Helper()
	cfg := lint.NewConfig()
	if opts != nil {
		cfg.SetRuleOptions(ruleID, opts)
	}
	diags := lint.NewAnalyzer(cfg).AnalyzeSource(context.Background(), "test.sh", []byte(content))

	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func lines(diags []lint.Diagnostic) []int {
	out := make([]int, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Pos.Line)
	}
	return out
}

var sameLine = map[string]any{"placement": "same-line"}

func TestE010_DoPlacement(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    map[string]any
		want    []int
	}{
		{
			name:    "do shares the for line",
			content: "for i in 1 2 3; do\n    echo $i\ndone\n",
			want:    []int{1},
		},
		{
			name:    "do on its own line",
			content: "for i in 1 2 3;\ndo\n    echo $i\ndone\n",
			want:    []int{},
		},
		{
			name:    "while and until",
			content: "while true; do\n    :\ndone\nuntil false; do\n    :\ndone\n",
			want:    []int{1, 4},
		},
		{
			name:    "one-liner",
			content: "for f in *; do echo \"$f\"; done\n",
			want:    []int{1},
		},
		{
			name:    "continued header is skipped",
			content: "for i in 1 2 \\\n    3; do\n    echo $i\ndone\n",
			want:    []int{},
		},
		{
			name:    "embedded awk loop",
			content: "awk '{ for (i = 1; i <= NF; i++) print $i }' f\n    for (i in arr) { do_x; do y }\n",
			want:    []int{},
		},
		{
			name:    "arithmetic for",
			content: "for ((i = 0; i < 3; i++)); do\n    echo $i\ndone\n",
			want:    []int{1},
		},
		{
			name:    "do in a comment",
			content: "for i in 1 2 3 # ; do\ndo\n    :\ndone\n",
			want:    []int{},
		},
		{
			name:    "same-line: do on its own line",
			content: "for i in $(seq 1 100);\ndo\n    echo hi\ndone\n",
			opts:    sameLine,
			want:    []int{1},
		},
		{
			name:    "same-line: do on the header",
			content: "for i in 1 2 3; do\n    echo $i\ndone\n",
			opts:    sameLine,
			want:    []int{},
		},
		{
			name:    "same-line: continued header is skipped",
			content: "while read -r a \\\n    b\ndo\n    :\ndone\n",
			opts:    sameLine,
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lines(runRule(t, tt.content, "E010", tt.opts)))
		})
	}
}

func TestE010_Position(t *testing.T) {
	diags := runRule(t, "    for i in a b; do\n        :\n    done\n", "E010", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, token.Position{Line: 1, Column: 19}, diags[0].Pos)
	assert.Equal(t, `The "do" should not be on the same line as for`, diags[0].Message)

	diags = runRule(t, "while true\ndo\n    :\ndone\n", "E010", sameLine)
	require.Len(t, diags, 1)
	assert.Equal(t, `The "do" should be on same line as while`, diags[0].Message)
}

func TestE011_ThenPlacement(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    map[string]any
		want    []int
	}{
		{
			name:    "then shares the if line",
			content: "if [ -f x ]; then\n    :\nfi\n",
			want:    []int{1},
		},
		{
			name:    "then on its own line",
			content: "if [ -f x ]\nthen\n    :\nfi\n",
			want:    []int{},
		},
		{
			name:    "elif",
			content: "if true\nthen\n    :\nelif false; then\n    :\nfi\n",
			want:    []int{4},
		},
		{
			name:    "condition continued with &&",
			content: "if [ -f x ] &&\n   [ -f y ]; then\n    :\nfi\n",
			want:    []int{2},
		},
		{
			name:    "backslash-continued header is skipped",
			content: "if [ -f x ] && \\\n   [ -f y ]; then\n    :\nfi\n",
			want:    []int{},
		},
		{
			name:    "then inside a string",
			content: "echo \"if x; then\"\n",
			want:    []int{},
		},
		{
			name:    "same-line: then on its own line",
			content: "if [ -f x ]\nthen\n    :\nfi\n",
			opts:    sameLine,
			want:    []int{1},
		},
		{
			name:    "same-line: then on the header",
			content: "if [ -f x ]; then\n    :\nelif [ -f y ]; then\n    :\nfi\n",
			opts:    sameLine,
			want:    []int{},
		},
		{
			name:    "same-line: only bracket tests are checked",
			content: "if grep -q x f\nthen\n    :\nfi\n",
			opts:    sameLine,
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lines(runRule(t, tt.content, "E011", tt.opts)))
		})
	}
}

func TestE011_Position(t *testing.T) {
	diags := runRule(t, "if true; then\n    :\nfi\n", "E011", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, token.Position{Line: 1, Column: 10}, diags[0].Pos)
}

func TestE012_UnterminatedHeredoc(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []token.Position
	}{
		{
			name:    "terminated",
			content: "cat <<EOF\nbody\nEOF\n",
			want:    []token.Position{},
		},
		{
			name:    "unterminated",
			content: "echo start\ncat <<EOF\nbody\n",
			want:    []token.Position{{Line: 2, Column: 5}},
		},
		{
			name:    "terminator with trailing blank",
			content: "cat <<EOF\nbody\nEOF \n",
			want:    []token.Position{{Line: 1, Column: 5}},
		},
		{
			name:    "second of two open heredocs reported once",
			content: "paste <<A <<B\na\nA\nb\n",
			want:    []token.Position{{Line: 1, Column: 11}},
		},
		{
			name:    "first unterminated wins",
			content: "cat <<ONE\ncat <<TWO\n",
			want:    []token.Position{{Line: 1, Column: 5}},
		},
		{
			name:    "here-string",
			content: "cat <<< \"$x\"\n",
			want:    []token.Position{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.content, "E012", nil)
			got := make([]token.Position, 0, len(diags))
			for _, d := range diags {
				got = append(got, d.Pos)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestE012_Message(t *testing.T) {
	diags := runRule(t, "\ncat <<'END'\nx\n", "E012", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "here-document at line 2 delimited by end-of-file (wanted `END')", diags[0].Message)
}

func TestE020_FunctionDecl(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []int
	}{
		{name: "canonical", content: "function foo {\n    :\n}\n", want: []int{}},
		{name: "dashed name", content: "function foo-bar {\n    :\n}\n", want: []int{}},
		{name: "parens", content: "foo() {\n    :\n}\n", want: []int{1}},
		{name: "parens with space", content: "foo () {\n    :\n}\n", want: []int{1}},
		{name: "keyword and parens", content: "function foo() {\n    :\n}\n", want: []int{1}},
		{name: "brace on next line", content: "function foo\n{\n    :\n}\n", want: []int{1}},
		{name: "trailing comment", content: "function foo { # helper\n    :\n}\n", want: []int{}},
		{name: "indented", content: "if true\nthen\n    bar() {\n        :\n    }\nfi\n", want: []int{3}},
		{name: "array assignment", content: "arr=()\n", want: []int{}},
		{name: "call", content: "foo\n", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lines(runRule(t, tt.content, "E020", nil)))
		})
	}
}
