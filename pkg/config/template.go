package config

import (
	"bytes"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every option with its default value instead of a
	// commented minimal file.
	Full bool
}

const templateHeader = `# gmi2html configuration
# See: https://github.com/yaklabco/gmi2html
`

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(templateHeader)
	buf.WriteString(`
# Input file extensions to convert
extensions:
`)
	for _, ext := range DefaultExtensions() {
		fmt.Fprintf(&buf, "  - %q\n", ext)
	}
	buf.WriteString(`
# Extension of generated files
output_extension: "` + DefaultOutputExtension + `"

# Write output under this directory instead of next to each input
# output_dir: "public"

# Close a list, quote or preformatted block left open at end of input
# close_containers: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "drafts/**"

# Back up existing output files before replacing them
# backups:
#   enabled: true
#   mode: sidecar
`)

	return buf.Bytes()
}

// generateFullTemplate serializes the defaults with a header.
func generateFullTemplate() ([]byte, error) {
	body, err := NewConfig().ToYAML()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(templateHeader)
	buf.WriteString("\n")
	buf.Write(body)

	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
