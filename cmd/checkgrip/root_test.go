package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkgrip/internal/config"
	"checkgrip/internal/selector"
	"checkgrip/internal/ui"
)

func TestLoadRegistrySourcePriority(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "opts.txt")
	require.NoError(t, os.WriteFile(file, []byte("from-file\n"), 0644))
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("- name: from-config-file\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.Options = []selector.Option{{Name: "inline"}}

	tests := []struct {
		name       string
		args       []string
		flags      []string
		optsFile   string
		wantSource string
		wantFirst  string
	}{
		{"argument wins", []string{file}, []string{"flag"}, other, file, "from-file"},
		{"flags next", nil, []string{"flag=Flag"}, other, "flags", "flag"},
		{"config options file", nil, nil, other, other, "from-config-file"},
		{"inline options last", nil, nil, "", "config", "inline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *cfg
			c.OptionsFile = tt.optsFile

			reg, source, err := loadRegistry(&c, tt.args, tt.flags, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, source)
			first, ok := reg.At(0)
			require.True(t, ok)
			assert.Equal(t, tt.wantFirst, first.Name)
		})
	}
}

func TestLoadRegistryFromStdin(t *testing.T) {
	reg, source, err := loadRegistry(config.DefaultConfig(), []string{"-"}, nil, strings.NewReader("a\n+b\n"))
	require.NoError(t, err)
	assert.Equal(t, "-", source)
	assert.Equal(t, 2, reg.Len())
}

func TestLoadRegistryRejectsDuplicates(t *testing.T) {
	_, _, err := loadRegistry(config.DefaultConfig(), nil, []string{"a", "b", "a"}, nil)
	require.ErrorIs(t, err, selector.ErrDuplicateOption)
}

func TestReport(t *testing.T) {
	sel := []string{"india", "france"}

	var out bytes.Buffer
	require.NoError(t, report(&out, ui.Result{Accepted: true, Selected: sel}, false))
	assert.Equal(t, "india\nfrance\n", out.String())

	out.Reset()
	err := report(&out, ui.Result{Selected: sel}, false)
	assert.Equal(t, exitError{code: 1}, err)
	assert.Empty(t, out.String())

	out.Reset()
	require.NoError(t, report(&out, ui.Result{Selected: sel}, true))
	assert.Equal(t, "india\nfrance\n", out.String())

	out.Reset()
	err = report(&out, ui.Result{Aborted: true, Selected: sel}, true)
	assert.Equal(t, exitError{code: 130}, err)
	assert.Empty(t, out.String())
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte(`
[[options]]
name = "a"
default = true

[[options]]
name = "b"
`), 0644))
	dup := filepath.Join(dir, "dup.txt")
	require.NoError(t, os.WriteFile(dup, []byte("a\na\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"check", good})
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "2 options, 1 checked by default")

	rootCmd.SetArgs([]string{"check", dup})
	err := Execute()
	require.ErrorIs(t, err, selector.ErrDuplicateOption)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "checkgrip version dev")
}

func TestTerminalRendererFollowsOutput(t *testing.T) {
	t.Cleanup(func() { lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stdout)) })

	t.Setenv(e2eEnv, "")
	lr := newTerminalRenderer(&bytes.Buffer{})
	assert.Equal(t, termenv.Ascii, lr.ColorProfile(), "a non-terminal writer gets no colour")
	assert.Same(t, lr, lipgloss.DefaultRenderer())

	t.Setenv(e2eEnv, "1")
	lr = newTerminalRenderer(&bytes.Buffer{})
	assert.Equal(t, termenv.ANSI256, lr.ColorProfile())
	assert.True(t, lr.HasDarkBackground())
}

func TestCheckCommandListsOptions(t *testing.T) {
	file := filepath.Join(t.TempDir(), "opts.txt")
	require.NoError(t, os.WriteFile(file, []byte("+india\tIndia\n\\#usa\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		listOptions = false
	})

	rootCmd.SetArgs([]string{"check", "--list", file})
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "2 options, 1 checked by default")
	assert.Contains(t, out.String(), "+india\tIndia\n\\#usa\n")
}

func TestInitCommandWritesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "nested", "config.toml")
	optsFile := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(optsFile, []byte("- name: india\n  label: India\n- name: usa\n  default: true\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
		forceInit = false
	})

	rootCmd.SetArgs([]string{"init", "--config", cfgFile, optsFile})
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "Wrote "+cfgFile)

	cfg, err := config.NewConfigService(cfgFile).Load()
	require.NoError(t, err)
	assert.Equal(t, "Select All", cfg.SelectAllLabel)
	assert.Equal(t, []selector.Option{
		{Name: "india", Label: "India"},
		{Name: "usa", Default: true},
	}, cfg.Options)

	rootCmd.SetArgs([]string{"init", "--config", cfgFile})
	err = Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	rootCmd.SetArgs([]string{"init", "--config", cfgFile, "--force"})
	require.NoError(t, Execute())
	cfg, err = config.NewConfigService(cfgFile).Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Options)
}

func TestInitCommandRejectsDuplicateOptions(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.toml")
	optsFile := filepath.Join(dir, "dup.txt")
	require.NoError(t, os.WriteFile(optsFile, []byte("a\na\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
	})

	rootCmd.SetArgs([]string{"init", "--config", cfgFile, optsFile})
	require.ErrorIs(t, Execute(), selector.ErrDuplicateOption)
	assert.NoFileExists(t, cfgFile)
}
