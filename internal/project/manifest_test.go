package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"protogen/internal/encoding"
	"protogen/internal/project"
)

func writeManifest(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), project.DefaultManifestName)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	m, err := project.Load(writeManifest(t, `
[protocol]
strategy = "sysex"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Protocol.Name != "sysex" {
		t.Errorf("Name defaulted to %q, want strategy name", m.Protocol.Name)
	}
	if m.Limits.StringMaxLength != 32 {
		t.Errorf("StringMaxLength = %d, want 32", m.Limits.StringMaxLength)
	}
	if m.Limits.MaxNestingDepth != 3 {
		t.Errorf("MaxNestingDepth = %d, want 3", m.Limits.MaxNestingDepth)
	}
	if m.Output.Dir != "generated" {
		t.Errorf("Output.Dir = %q, want generated", m.Output.Dir)
	}
	if m.Protocol.StartID != 0 || m.Protocol.IncludeMessageName {
		t.Errorf("protocol defaults = %+v", m.Protocol)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	m, err := project.Load(writeManifest(t, `
[protocol]
name = "mixer"
strategy = "binary"
start_id = 16
include_message_name = true

[limits]
string_max_length = 64
max_nesting_depth = 5

[output]
dir = "out/ir"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Protocol.Name != "mixer" || m.Protocol.StartID != 16 || !m.Protocol.IncludeMessageName {
		t.Errorf("protocol = %+v", m.Protocol)
	}
	if m.Limits.StringMaxLength != 64 || m.Limits.MaxNestingDepth != 5 {
		t.Errorf("limits = %+v", m.Limits)
	}
	if m.Output.Dir != "out/ir" {
		t.Errorf("Output.Dir = %q", m.Output.Dir)
	}
}

func TestLoadMissingSections(t *testing.T) {
	_, err := project.Load(writeManifest(t, `
[output]
dir = "x"
`))
	if !errors.Is(err, project.ErrProtocolSectionMissing) {
		t.Errorf("error = %v, want ErrProtocolSectionMissing", err)
	}

	_, err = project.Load(writeManifest(t, `
[protocol]
name = "mixer"
`))
	if !errors.Is(err, project.ErrStrategyMissing) {
		t.Errorf("error = %v, want ErrStrategyMissing", err)
	}
}

func TestLoadUnknownStrategy(t *testing.T) {
	_, err := project.Load(writeManifest(t, `
[protocol]
strategy = "morse"
`))
	if err == nil {
		t.Error("unknown strategy accepted")
	}
}

func TestLoadStringLengthBounds(t *testing.T) {
	// 200 exceeds the sysex cap of 127 but fits serial8's 255.
	_, err := project.Load(writeManifest(t, `
[protocol]
strategy = "sysex"

[limits]
string_max_length = 200
`))
	if err == nil {
		t.Error("sysex accepted string_max_length past its cap")
	}

	if _, err := project.Load(writeManifest(t, `
[protocol]
strategy = "serial8"

[limits]
string_max_length = 200
`)); err != nil {
		t.Errorf("serial8 rejected valid string_max_length: %v", err)
	}

	if _, err := project.Load(writeManifest(t, `
[protocol]
strategy = "binary"

[limits]
string_max_length = 0
`)); err == nil {
		t.Error("zero string_max_length accepted")
	}
}

func TestNamePrefixSize(t *testing.T) {
	m, err := project.Load(writeManifest(t, `
[protocol]
strategy = "binary"
include_message_name = true

[limits]
string_max_length = 16
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	strat, err := encoding.Select(m.Protocol.Strategy)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := m.NamePrefixSize(strat); got != 17 {
		t.Errorf("NamePrefixSize = %d, want 17", got)
	}

	m.Protocol.IncludeMessageName = false
	if got := m.NamePrefixSize(strat); got != 0 {
		t.Errorf("NamePrefixSize = %d, want 0", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := project.Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file accepted")
	}
}
