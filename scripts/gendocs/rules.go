package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
	_ "github.com/leapstack-labs/bashate/pkg/lint/rules"
)

// groupOrder lists the rule groups in catalogue order.
var groupOrder = []string{"whitespace", "structure", "deprecated", "syntax"}

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"whitespace": "Rules about indentation, trailing blanks, line length and file framing.",
	"structure":  "Rules about where do and then go, heredocs and function declarations.",
	"deprecated": "Rules about obsolete or error-prone shell syntax.",
	"syntax":     "Findings reported by the external syntax checker.",
}

// generateRuleDocs generates all rule documentation files.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.AllRules()

	if err := os.WriteFile(filepath.Join(outDir, "index.md"), rulesIndex(rules), 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range groupOrder {
		page := rulesPage(group, groupRules(rules, group))
		if err := os.WriteFile(filepath.Join(outDir, group+".md"), page, 0600); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}

	return nil
}

// rulesIndex renders the overview page.
func rulesIndex(rules []core.RuleInfo) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Style rules checked by bashate")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("bashate checks **%d rules** in %d groups.", len(rules), len(groupOrder)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Fails the run with exit status 1"},
			{InlineCode("warning"), "Reported without changing the exit status"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Severities are regraded by code prefix, on the command line or in `.bashate.yaml`:")
	w.CodeBlock("yaml", `ignore: [E006]      # drop
warn: [E04]         # every deprecated-syntax rule becomes a warning
error: [E042]       # error wins over warn
rules:
  E003:
    width: 2        # rule-specific option`)

	w.Header(2, "Groups")
	var rows [][]string
	for _, group := range groupOrder {
		link := fmt.Sprintf("[%s](/rules/%s)", capitalizeFirst(group), group)
		rows = append(rows, []string{link, codeRange(groupRules(rules, group)), groupDescriptions[group]})
	}
	w.Table([]string{"Group", "Codes", "Description"}, rows)

	w.Header(2, "All Rules")
	rows = rows[:0]
	for _, r := range rules {
		link := fmt.Sprintf("[%s](/rules/%s#%s)", r.ID, r.Group, r.ID)
		rows = append(rows, []string{link, r.DefaultSeverity.Letter(), cleanDescription(r.Description)})
	}
	w.Table([]string{"Code", "Severity", "Description"}, rows)

	return w.Bytes()
}

// rulesPage renders the page for one group.
func rulesPage(group string, rules []core.RuleInfo) []byte {
	w := NewMarkdownWriter()

	title := capitalizeFirst(group) + " Rules"
	w.Frontmatter(title, groupDescriptions[group])
	w.GeneratedMarker()

	w.Header(1, title)
	w.Paragraph(groupDescriptions[group])

	for _, rule := range rules {
		writeRuleDoc(w, rule)
	}

	return w.Bytes()
}

func groupRules(rules []core.RuleInfo, group string) []core.RuleInfo {
	var out []core.RuleInfo
	for _, r := range rules {
		if r.Group == group {
			out = append(out, r)
		}
	}
	return out
}

// codeRange returns "E001-E007" for a sorted group, or the single code.
func codeRange(rules []core.RuleInfo) string {
	switch len(rules) {
	case 0:
		return ""
	case 1:
		return rules[0].ID
	default:
		return rules[0].ID + "-" + rules[len(rules)-1].ID
	}
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	// Rule header with anchor: ### E001 - whitespace.trailing {#E001}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s | **Scope:** %s", InlineCode(rule.DefaultSeverity.String()), rule.Scope))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}

	if rule.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("bash", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("bash", rule.GoodExample)
	}

	if rule.Fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(strings.TrimSpace(rule.Fix))
	}

	if len(rule.ConfigKeys) > 0 {
		w.Header(4, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following configuration options: %s",
			InlineCode(strings.Join(rule.ConfigKeys, ", "))))
	}

	w.Line("---")
	w.Newline()
}
