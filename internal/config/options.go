package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"checkgrip/internal/selector"
)

// StdinSource is the options path that means "read standard input"
const StdinSource = "-"

const textEscape = `\`

// Format is an options file format
type Format int

const (
	FormatText Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// FormatForPath picks a format from the file extension
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

type optionsDocument struct {
	Options []selector.Option `toml:"options" yaml:"options"`
}

// LoadOptions reads options from path, or from stdin when path is "-"
func LoadOptions(path string, stdin io.Reader) ([]selector.Option, error) {
	if path == StdinSource {
		return ParseOptions(stdin, FormatText)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file: %w", err)
	}
	defer f.Close()

	opts, err := ParseOptions(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes options in the given format
func ParseOptions(r io.Reader, format Format) ([]selector.Option, error) {
	switch format {
	case FormatTOML:
		var doc optionsDocument
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml options: %w", err)
		}
		return doc.Options, nil
	case FormatYAML:
		return parseYAML(r)
	default:
		return parseText(r)
	}
}

// parseYAML accepts either a top-level list or an "options:" key
func parseYAML(r io.Reader) ([]selector.Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read yaml options: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse yaml options: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		var opts []selector.Option
		if err := node.Decode(&opts); err != nil {
			return nil, fmt.Errorf("failed to decode yaml options: %w", err)
		}
		return opts, nil
	}

	var doc optionsDocument
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode yaml options: %w", err)
	}
	return doc.Options, nil
}

// parseText reads one option per line: "name" or "name<TAB>label".
// A leading "+" checks the option by default. Blank lines and lines
// starting with "#" are skipped. A backslash before the name makes a
// leading "+", "#" or "\" part of the name.
func parseText(r io.Reader) ([]selector.Option, error) {
	var opts []selector.Option
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var opt selector.Option
		if strings.HasPrefix(line, "+") {
			opt.Default = true
			line = strings.TrimSpace(line[1:])
		}
		line = strings.TrimPrefix(line, textEscape)
		name, label, _ := strings.Cut(line, "\t")
		opt.Name = strings.TrimSpace(name)
		opt.Label = strings.TrimSpace(label)
		opts = append(opts, opt)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return opts, nil
}

// FormatTextOption renders opt as one line of the plain text format,
// escaping names that would otherwise read as syntax
func FormatTextOption(opt selector.Option) string {
	var b strings.Builder
	if opt.Default {
		b.WriteString("+")
	}
	if strings.HasPrefix(opt.Name, "+") || strings.HasPrefix(opt.Name, "#") || strings.HasPrefix(opt.Name, textEscape) {
		b.WriteString(textEscape)
	}
	b.WriteString(opt.Name)
	if opt.Label != "" {
		b.WriteString("\t")
		b.WriteString(opt.Label)
	}
	return b.String()
}

// ParseOptionFlag parses a command line option of the form name[=label]
func ParseOptionFlag(value string) selector.Option {
	name, label, _ := strings.Cut(value, "=")
	return selector.Option{Name: strings.TrimSpace(name), Label: strings.TrimSpace(label)}
}
