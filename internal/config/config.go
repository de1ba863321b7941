// Package config loads and merges bincc's configuration: built-in
// defaults, an on-disk .bincc.toml (whose path the BINCC_CONFIG
// environment variable can set), and CLI flags, in that increasing order
// of precedence. Grounded on
// github.com/ludo-technologies/pyscn's internal/config package.
package config

// Config is the root configuration structure, loaded from .bincc.toml
// (located directly or through BINCC_CONFIG via viper) and merged with CLI
// flags. No other BINCC_* environment variable is read.
type Config struct {
	Structure StructureConfig `mapstructure:"structure" yaml:"structure" toml:"structure"`
	Disasm    DisasmConfig    `mapstructure:"disasm" yaml:"disasm" toml:"disasm"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output" toml:"output"`
	Batch     BatchConfig     `mapstructure:"batch" yaml:"batch" toml:"batch"`
}

// StructureConfig controls the CFS reduction engine's CLI-visible knobs.
type StructureConfig struct {
	// FailOnIrreducible makes `bincc structure` exit 1 instead of 0 when a
	// function cannot be fully reduced to a single region.
	FailOnIrreducible bool `mapstructure:"fail_on_irreducible" yaml:"fail_on_irreducible" toml:"fail_on_irreducible"`
}

// DisasmConfig configures the external disassembler subprocess adapter.
type DisasmConfig struct {
	// Executable names a radare2 binary. It is loaded, saved and merged
	// like every other field, but the disassembler driver does not read
	// it: sessions always launch "radare2" resolved from PATH.
	Executable string `mapstructure:"executable" yaml:"executable" toml:"executable"`

	// TimeoutSeconds sets the deadline of a `bincc structure` run: the
	// whole run gets TimeoutSeconds multiplied by the number of path
	// arguments, shared by every disassembler session it starts (spec.md
	// 5: "embedders may bound elapsed time externally").
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// OutputConfig controls the rendering envelope written to stdout.
type OutputConfig struct {
	// Format is one of "dot", "json", "yaml".
	Format string `mapstructure:"format" yaml:"format" toml:"format"`

	// Color is loaded, saved and merged like every other field; no output
	// path reads it, and no output is colored.
	Color bool `mapstructure:"color" yaml:"color" toml:"color"`
}

// BatchConfig controls directory/multi-binary structuring.
type BatchConfig struct {
	// IncludeGlobs are doublestar patterns selecting which files under a
	// directory are treated as binaries to analyze.
	IncludeGlobs []string `mapstructure:"include_globs" yaml:"include_globs" toml:"include_globs"`

	// Progress enables the schollz/progressbar/v3 progress bar while
	// structuring many functions.
	Progress bool `mapstructure:"progress" yaml:"progress" toml:"progress"`
}

// DefaultConfig returns the built-in configuration used when no
// .bincc.toml is found and no flags override it.
func DefaultConfig() *Config {
	return &Config{
		Structure: StructureConfig{FailOnIrreducible: false},
		Disasm: DisasmConfig{
			Executable:     "radare2",
			TimeoutSeconds: 60,
		},
		Output: OutputConfig{
			Format: "dot",
			Color:  true,
		},
		Batch: BatchConfig{
			IncludeGlobs: []string{"**/*"},
			Progress:     true,
		},
	}
}
