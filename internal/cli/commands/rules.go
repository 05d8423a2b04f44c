package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	"github.com/leapstack-labs/bashate/pkg/report"
)

// Rule listing formats.
const (
	RulesFormatText     = "text"
	RulesFormatMarkdown = "markdown"
	RulesFormatJSON     = "json"
	RulesFormatYAML     = "yaml"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [code]",
		Short: "List available style rules",
		Long: `List all style rules with their default severity.

Rules are organized by group (whitespace, structure, deprecated, syntax).
Pass a code to see its full documentation, including examples.`,
		Example: `  # List all rules
  bashate rules

  # Show details for a specific rule
  bashate rules E010

  # List the whitespace rules
  bashate rules --group whitespace

  # Output as YAML
  bashate rules --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd.OutOrStdout(), args[0], opts)
			}
			return listRules(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", RulesFormatText, "Output format: text, markdown, json, yaml")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{RulesFormatText, RulesFormatMarkdown, RulesFormatJSON, RulesFormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// WriteCatalogue prints every rule with its long description.
func WriteCatalogue(w io.Writer) error {
	return listRules(w, &RulesOptions{Verbose: true, Format: RulesFormatText})
}

func listRules(w io.Writer, opts *RulesOptions) error {
	rules := lint.AllRules()
	if opts.Group != "" {
		var filtered []core.RuleInfo
		for _, r := range rules {
			if r.Group == opts.Group {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	switch opts.Format {
	case RulesFormatJSON:
		return listRulesJSON(w, rules)
	case RulesFormatYAML:
		return listRulesYAML(w, rules)
	case RulesFormatMarkdown:
		rulesTable(w, rules, opts.Verbose).RenderMarkdown()
		return nil
	case RulesFormatText, "":
		t := rulesTable(w, rules, opts.Verbose)
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, markdown, json or yaml)", opts.Format)
	}
}

func rulesTable(w io.Writer, rules []core.RuleInfo, verbose bool) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{"Code", "Severity", "Group", "Description"}
	if verbose {
		header = append(header, "Options")
	}
	t.AppendHeader(header)

	for _, r := range rules {
		row := table.Row{r.ID, r.DefaultSeverity.Letter(), r.Group, r.Description}
		if verbose {
			row = append(row, strings.Join(r.ConfigKeys, ", "))
		}
		t.AppendRow(row)
	}
	return t
}

// RulesOutput is the JSON and YAML document for the rule listing.
type RulesOutput struct {
	Rules []core.RuleInfo `json:"rules" yaml:"rules"`
	Count struct {
		Errors   int `json:"errors" yaml:"errors"`
		Warnings int `json:"warnings" yaml:"warnings"`
		Total    int `json:"total" yaml:"total"`
	} `json:"count" yaml:"count"`
}

func newRulesOutput(rules []core.RuleInfo) RulesOutput {
	out := RulesOutput{Rules: rules}
	if out.Rules == nil {
		out.Rules = []core.RuleInfo{}
	}
	for _, r := range rules {
		if r.DefaultSeverity == core.SeverityWarning {
			out.Count.Warnings++
		} else {
			out.Count.Errors++
		}
	}
	out.Count.Total = len(rules)
	return out
}

func listRulesJSON(w io.Writer, rules []core.RuleInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newRulesOutput(rules))
}

func listRulesYAML(w io.Writer, rules []core.RuleInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newRulesOutput(rules)); err != nil {
		return err
	}
	return enc.Close()
}

func showRule(w io.Writer, code string, opts *RulesOptions) error {
	def, ok := lint.GetRuleByID(strings.ToUpper(code))
	if !ok {
		return fmt.Errorf("rule %q not found", code)
	}
	rule := def.Info()

	switch opts.Format {
	case RulesFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rule)
	case RulesFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rule); err != nil {
			return err
		}
		return enc.Close()
	case RulesFormatMarkdown:
		return showRuleMarkdown(w, &rule)
	default:
		return showRuleText(w, &rule)
	}
}

// showRuleText displays detailed rule info with lipgloss styles.
func showRuleText(w io.Writer, rule *core.RuleInfo) error {
	styles := report.NewStyles(w, report.ColorEnabled(w))
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", styles.Path.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	fmt.Fprintf(&b, "  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	fmt.Fprintf(&b, "  %s: %s\n", styles.Bold.Render("Severity"), strings.TrimSpace(styles.Severity(rule.DefaultSeverity)))
	fmt.Fprintf(&b, "  %s: %s\n\n", styles.Bold.Render("Scope"), rule.Scope)

	fmt.Fprintf(&b, "%s\n  %s\n\n", styles.Bold.Render("Description"), rule.Description)

	if rule.Rationale != "" {
		fmt.Fprintf(&b, "%s\n  %s\n\n", styles.Bold.Render("Why This Matters"), rule.Rationale)
	}
	if rule.BadExample != "" {
		b.WriteString(styles.Bold.Render("Bad Example") + "\n")
		for _, line := range strings.Split(rule.BadExample, "\n") {
			b.WriteString(styles.Muted.Render("  "+line) + "\n")
		}
		b.WriteString("\n")
	}
	if rule.GoodExample != "" {
		b.WriteString(styles.Bold.Render("Good Example") + "\n")
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			b.WriteString(styles.Success.Render("  "+line) + "\n")
		}
		b.WriteString("\n")
	}
	if rule.Fix != "" {
		fmt.Fprintf(&b, "%s\n  %s\n\n", styles.Bold.Render("How to Fix"), rule.Fix)
	}
	if len(rule.ConfigKeys) > 0 {
		fmt.Fprintf(&b, "%s\n  Options: %s\n", styles.Bold.Render("Configuration"), strings.Join(rule.ConfigKeys, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(w io.Writer, rule *core.RuleInfo) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s - %s\n\n", rule.ID, rule.Name)
	fmt.Fprintf(&b, "**Group:** %s | **Severity:** `%s` | **Scope:** %s\n\n", rule.Group, rule.DefaultSeverity, rule.Scope)
	b.WriteString(rule.Description + "\n\n")

	if rule.Rationale != "" {
		fmt.Fprintf(&b, "## Why This Matters\n\n%s\n\n", rule.Rationale)
	}
	if rule.BadExample != "" {
		fmt.Fprintf(&b, "## Bad Example\n\n```bash\n%s\n```\n\n", rule.BadExample)
	}
	if rule.GoodExample != "" {
		fmt.Fprintf(&b, "## Good Example\n\n```bash\n%s\n```\n\n", rule.GoodExample)
	}
	if rule.Fix != "" {
		fmt.Fprintf(&b, "## How to Fix\n\n%s\n\n", rule.Fix)
	}
	if len(rule.ConfigKeys) > 0 {
		fmt.Fprintf(&b, "## Configuration\n\nOptions: `%s`\n", strings.Join(rule.ConfigKeys, "`, `"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
