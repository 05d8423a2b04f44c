package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/leapstack-labs/bashate/internal/cli/config"
)

// configDescriptions documents each top-level key of the configuration file.
var configDescriptions = map[string]string{
	"ignore":          "Rule codes or prefixes whose violations are dropped",
	"warn":            "Rule codes or prefixes reported as warnings",
	"error":           "Rule codes or prefixes reported as errors; wins over warn",
	"verbose":         "Log each file as it is checked",
	"format":          "Output format: text, json, pretty",
	"jobs":            "Files checked in parallel; 0 means one per CPU",
	"max_line_length": "Longest line allowed by E006",
	"indent_width":    "Indent unit checked by E003",
	"align_arguments": "Let E003 accept continuation lines aligned with the first argument",
	"placement":       "Where E010/E011 expect do and then: separate or same-line",
	"suffixes":        "File suffixes for which E005 skips the hashbang check",
	"syntax_command":  "Command used by E040 to syntax check a file",
	"no_syntax_check": "Skip the external syntax check",
	"syntax_timeout":  "Time limit for one syntax check",
	"rules":           "Per-rule options keyed by code, applied after the keys above",
}

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema reflects over config.Config so the page tracks the
// struct's koanf tags.
func getConfigSchema() []ConfigField {
	defaults := config.Defaults()
	t := reflect.TypeOf(config.Config{})

	fields := make([]ConfigField, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		name := f.Tag.Get("koanf")
		if name == "" {
			continue
		}
		def := "-"
		if v, ok := defaults[name]; ok {
			def = fmt.Sprint(v)
		}
		fields = append(fields, ConfigField{
			Name:        name,
			Type:        f.Type.String(),
			Default:     def,
			Description: configDescriptions[name],
		})
	}
	return fields
}

// generateConfigDocs writes configuration.md.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "configuration.md"), configurationPage(), 0600); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")
	return nil
}

func configurationPage() []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "bashate configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("bashate reads %s from the working directory or the nearest parent "+
		"directory. Pass `--config` to name a file explicitly.", InlineCode(config.FileName)))

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Built-in defaults",
		"The configuration file",
		fmt.Sprintf("%s environment variables", InlineCode(config.EnvPrefix+"*")),
		"Command-line flags",
	})

	w.Header(2, "Keys")
	var rows [][]string
	for _, f := range getConfigSchema() {
		def := f.Default
		if def != "-" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode(f.Name), strings.ReplaceAll(f.Type, "interface {}", "any"), def, f.Description})
	}
	w.Table([]string{"Key", "Type", "Default", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `ignore: [E006]
warn: [E04]
error: [E042]
max_line_length: 100
placement: same-line
rules:
  E003:
    width: 2`)

	return w.Bytes()
}
