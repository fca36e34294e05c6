package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeader = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML with sections sorted by name, so
// repeated writes of the same config produce identical files.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML renders cfg the way WriteConfigOrdered stores it.
func EncodeTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// sortTOMLSections reorders table blocks alphabetically by header. Keys
// above the first header stay first.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var (
		sections []section
		current  *section
		preamble []string
	)
	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var out strings.Builder
	for _, line := range preamble {
		out.WriteString(line)
		out.WriteString("\n")
	}
	for _, sec := range sections {
		if s := out.String(); s != "" && !strings.HasSuffix(s, "\n\n") {
			out.WriteString("\n")
		}
		for _, line := range sec.lines {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}

	output := strings.TrimRight(out.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return output
}
