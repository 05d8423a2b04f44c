package deprecated_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	_ "github.com/leapstack-labs/bashate/pkg/lint/rules/deprecated" // register rules
	"github.com/leapstack-labs/bashate/pkg/token"
)

// Helper to run analysis and filter by rule ID
func runRule(t *testing.T, content, ruleID string) []lint.Diagnostic {
	t.Helper()
	diags := lint.NewAnalyzer(nil).AnalyzeSource(context.Background(), "test.sh", []byte(content))

	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func positions(diags []lint.Diagnostic) []token.Position {
	out := make([]token.Position, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Pos)
	}
	return out
}

func TestE041_ObsoleteArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []token.Position
	}{
		{name: "assignment", content: "result=$[1+2]\n", want: []token.Position{{Line: 1, Column: 8}}},
		{name: "modern form", content: "result=$((1+2))\n", want: []token.Position{}},
		{name: "twice", content: "echo $[a] $[b]\n", want: []token.Position{{Line: 1, Column: 6}, {Line: 1, Column: 11}}},
		{name: "on a continued line", content: "echo a \\\n    $[b]\n", want: []token.Position{{Line: 2, Column: 5}}},
		{name: "in a comment", content: "echo ok # $[x]\n", want: []token.Position{}},
		{name: "in a heredoc", content: "cat <<EOF\n$[x]\nEOF\n", want: []token.Position{}},
		{name: "array subscript", content: "echo ${a[1]}\n", want: []token.Position{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positions(runRule(t, tt.content, "E041")))
		})
	}
}

func TestE041_Scenario(t *testing.T) {
	diags := lint.NewAnalyzer(nil).AnalyzeSource(context.Background(), "test.sh", []byte("result=$[1+2]\n"))
	require.Len(t, diags, 1)
	assert.Equal(t, "E041", diags[0].RuleID)
	assert.Contains(t, diags[0].Message, "$[")
	assert.Equal(t, core.SeverityError, diags[0].Severity)
}

func TestE042_LocalHidesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []token.Position
	}{
		{name: "command substitution", content: "local out=$(make)\n", want: []token.Position{{Line: 1, Column: 10}}},
		{name: "quoted substitution", content: "    local out=\"$(make)\"\n", want: []token.Position{{Line: 1, Column: 14}}},
		{name: "backticks", content: "local out=`make`\n", want: []token.Position{{Line: 1, Column: 10}}},
		{name: "quoted backticks", content: "local out=\"`make`\"\n", want: []token.Position{{Line: 1, Column: 10}}},
		{name: "plain value", content: "local out=1\n", want: []token.Position{}},
		{name: "declaration only", content: "local out\nout=$(make)\n", want: []token.Position{}},
		{name: "not local", content: "out=$(make)\n", want: []token.Position{}},
		{name: "second name", content: "local a=1 b=$(make)\n", want: []token.Position{{Line: 1, Column: 12}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.content, "E042")
			assert.Equal(t, tt.want, positions(diags))
			for _, d := range diags {
				assert.Equal(t, core.SeverityWarning, d.Severity)
			}
		})
	}
}

func TestE043_ArithmeticCompound(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []token.Position
	}{
		{name: "increment", content: "((counter++))\n", want: []token.Position{{Line: 1, Column: 1}}},
		{name: "indented", content: "if true\nthen\n    ((i += 2))\nfi\n", want: []token.Position{{Line: 3, Column: 5}}},
		{name: "assignment", content: "counter=$((counter + 1))\n", want: []token.Position{}},
		{name: "arithmetic for", content: "for ((i = 0; i < 3; i++))\ndo\n    :\ndone\n", want: []token.Position{}},
		{name: "subshell", content: "( cd /tmp && ls )\n", want: []token.Position{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positions(runRule(t, tt.content, "E043")))
		})
	}
}

func TestE044_SingleBracketComparison(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []token.Position
	}{
		{name: "regex match", content: "if [ \"$a\" =~ ^x ]\nthen\n    :\nfi\n", want: []token.Position{{Line: 1, Column: 11}}},
		{name: "less than", content: "[ \"$a\" < \"$b\" ] && echo lt\n", want: []token.Position{{Line: 1, Column: 8}}},
		{name: "greater than glued", content: "[ \"$a\" >\"$b\" ]\n", want: []token.Position{{Line: 1, Column: 8}}},
		{name: "double bracket", content: "[[ \"$a\" =~ ^x ]]\n", want: []token.Position{}},
		{name: "double bracket relational", content: "[[ \"$a\" < \"$b\" ]]\n", want: []token.Position{}},
		{name: "escaped operator", content: "[ \"$a\" \\< \"$b\" ]\n", want: []token.Position{}},
		{name: "quoted operator", content: "[ \"$a\" = \"<\" ]\n", want: []token.Position{}},
		{name: "operator in quoted words", content: "[ \"a < b\" = \"$x\" ]\n", want: []token.Position{}},
		{name: "redirect after test", content: "[ -f x ] > /dev/null\n", want: []token.Position{}},
		{name: "numeric comparison", content: "[ \"$a\" -lt 3 ]\n", want: []token.Position{}},
		{name: "array subscript", content: "echo ${arr[ 1 ]} > out\n", want: []token.Position{}},
		{name: "two tests", content: "[ a > b ] || [ c =~ d ]\n", want: []token.Position{{Line: 1, Column: 5}, {Line: 1, Column: 18}}},
		{name: "negated", content: "if ! [ a > b ]\nthen\n    :\nfi\n", want: []token.Position{{Line: 1, Column: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positions(runRule(t, tt.content, "E044")))
		})
	}
}

func TestE044_Message(t *testing.T) {
	diags := runRule(t, "[ a =~ b ]\n", "E044")
	require.Len(t, diags, 1)
	assert.Equal(t, "Use [[ for non-POSIX comparisons: =~", diags[0].Message)
}
