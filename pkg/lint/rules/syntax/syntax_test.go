package syntax_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	_ "github.com/leapstack-labs/bashate/pkg/lint/rules/syntax" // register rules
	"github.com/leapstack-labs/bashate/pkg/syntax"
	"github.com/leapstack-labs/bashate/pkg/token"
)

func analyze(t *testing.T, cfg *lint.Config, checker syntax.Checker, path string) []lint.Diagnostic {
	t.Helper()
	opts := []lint.Option{}
	if checker != nil {
		opts = append(opts, lint.WithSyntaxChecker(checker))
	}
	return lint.NewAnalyzer(cfg, opts...).AnalyzeSource(context.Background(), path, []byte("echo hi\n"))
}

func TestE040_SyntaxError(t *testing.T) {
	stub := &syntax.Stub{Findings: map[string]*syntax.Finding{
		"bad.sh": {Line: 7, Message: "syntax error near unexpected token `}'"},
	}}

	diags := analyze(t, nil, stub, "bad.sh")
	require.Len(t, diags, 1)
	assert.Equal(t, "E040", diags[0].RuleID)
	assert.Equal(t, core.SeverityError, diags[0].Severity)
	assert.Equal(t, token.Position{Line: 7, Column: 1}, diags[0].Pos)
	assert.Equal(t, "Syntax error: syntax error near unexpected token `}'", diags[0].Message)
	assert.Equal(t, "bad.sh", diags[0].File)

	assert.Empty(t, analyze(t, nil, stub, "good.sh"))
	assert.Equal(t, []string{"bad.sh", "good.sh"}, stub.Calls())
}

func TestE040_NoChecker(t *testing.T) {
	assert.Empty(t, analyze(t, nil, nil, "bad.sh"))
}

func TestE040_IgnoredSkipsChecker(t *testing.T) {
	stub := &syntax.Stub{}
	diags := analyze(t, lint.NewConfig().Ignore("E04"), stub, "a.sh")
	assert.Empty(t, diags)
	assert.Empty(t, stub.Calls())
}

func TestE049_Unavailable(t *testing.T) {
	stub := &syntax.Stub{Err: fmt.Errorf("%w: bash: executable file not found in $PATH", syntax.ErrUnavailable)}

	diags := analyze(t, nil, stub, "a.sh")
	require.Len(t, diags, 1)
	assert.Equal(t, "E049", diags[0].RuleID)
	assert.Equal(t, core.SeverityWarning, diags[0].Severity)
	assert.Equal(t, "Syntax checker unavailable: bash: executable file not found in $PATH", diags[0].Message)

	// E049 can be silenced on its own without losing E040.
	assert.Empty(t, analyze(t, lint.NewConfig().Ignore("E049"), stub, "a.sh"))
}

func TestE040_IgnoredKeepsUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		ignore []string
		want   []string
		calls  int
	}{
		{name: "E040 ignored", ignore: []string{"E040"}, want: []string{"E049"}, calls: 1},
		{name: "E040 and E049 ignored", ignore: []string{"E040", "E049"}, want: nil, calls: 0},
		{name: "prefix ignores both", ignore: []string{"E04"}, want: nil, calls: 0},
		{name: "nothing ignored", ignore: nil, want: []string{"E049"}, calls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &syntax.Stub{Err: fmt.Errorf("%w: bash: not found", syntax.ErrUnavailable)}

			var got []string
			for _, d := range analyze(t, lint.NewConfig().Ignore(tt.ignore...), stub, "a.sh") {
				got = append(got, d.RuleID)
			}
			assert.Equal(t, tt.want, got)
			assert.Len(t, stub.Calls(), tt.calls)
		})
	}
}

func TestE049_OtherFailure(t *testing.T) {
	stub := &syntax.Stub{Err: errors.New("check a.sh: context deadline exceeded")}

	diags := analyze(t, lint.NewConfig().ForceError("E049"), stub, "a.sh")
	require.Len(t, diags, 1)
	assert.Equal(t, "E049", diags[0].RuleID)
	assert.Equal(t, core.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "deadline exceeded")
}

func TestE049_CatalogueOnly(t *testing.T) {
	rule, ok := lint.GetRuleByID("E049")
	require.True(t, ok)
	assert.Nil(t, rule.Check)
	assert.Equal(t, "syntax", rule.Group)
}
