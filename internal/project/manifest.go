// Package project loads the protocol manifest: the per-run configuration
// that selects the encoding strategy and sets generation limits.
package project

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"protogen/internal/encoding"
)

// DefaultManifestName is looked up in the working directory when no
// manifest path is given.
const DefaultManifestName = "protocol.toml"

var (
	// ErrProtocolSectionMissing indicates a manifest without [protocol].
	ErrProtocolSectionMissing = errors.New("missing [protocol]")
	// ErrStrategyMissing indicates a manifest without [protocol].strategy.
	ErrStrategyMissing = errors.New("missing [protocol].strategy")
)

// Manifest is the parsed protocol.toml.
type Manifest struct {
	Protocol ProtocolSection `toml:"protocol"`
	Limits   LimitsSection   `toml:"limits"`
	Output   OutputSection   `toml:"output"`
}

type ProtocolSection struct {
	// Name labels the protocol in IR metadata and output file names.
	Name string `toml:"name"`
	// Strategy is "binary", "serial8" or "sysex".
	Strategy string `toml:"strategy"`
	// StartID offsets message ID allocation.
	StartID int `toml:"start_id"`
	// IncludeMessageName embeds the message name ahead of each payload
	// for diagnostic logging. Adds name-prefix bytes to every size.
	IncludeMessageName bool `toml:"include_message_name"`
}

type LimitsSection struct {
	StringMaxLength int `toml:"string_max_length"`
	MaxNestingDepth int `toml:"max_nesting_depth"`
}

type OutputSection struct {
	Dir string `toml:"dir"`
}

// Load parses and validates a manifest file, applying defaults for
// omitted limits.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("protocol") {
		return nil, fmt.Errorf("%s: %w", path, ErrProtocolSectionMissing)
	}
	if !meta.IsDefined("protocol", "strategy") || m.Protocol.Strategy == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrStrategyMissing)
	}
	strat, err := encoding.Select(m.Protocol.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Protocol.Name == "" {
		m.Protocol.Name = m.Protocol.Strategy
	}
	if !meta.IsDefined("limits", "string_max_length") {
		m.Limits.StringMaxLength = 32
	}
	if !meta.IsDefined("limits", "max_nesting_depth") {
		m.Limits.MaxNestingDepth = 3
	}
	if m.Limits.StringMaxLength <= 0 {
		return nil, fmt.Errorf("%s: string_max_length must be positive, got %d", path, m.Limits.StringMaxLength)
	}

	// The strategy's string layout caps what a manifest may ask for.
	if limit := strat.StringSpec().MaxLength; m.Limits.StringMaxLength > limit {
		return nil, fmt.Errorf("%s: string_max_length %d exceeds %s limit %d",
			path, m.Limits.StringMaxLength, strat.Name(), limit)
	}
	if m.Output.Dir == "" {
		m.Output.Dir = "generated"
	}
	return &m, nil
}

// NamePrefixSize returns the byte cost of the optional message-name
// prefix: a length-prefixed string bounded by the configured maximum.
func (m *Manifest) NamePrefixSize(strat encoding.Strategy) int {
	if !m.Protocol.IncludeMessageName {
		return 0
	}
	return strat.StringMaxEncodedSize(m.Limits.StringMaxLength)
}
