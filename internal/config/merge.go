package config

// LoaderWithFlags wraps the plain file/default loader with a FlagTracker
// so callers can merge CLI overrides without clobbering a config file's
// explicit choices with a flag's unset zero value. Grounded on
// service/config_loader_with_flags.go's ConfigurationLoaderWithFlags,
// adapted from pyscn's ComplexityRequest merge to this package's smaller
// Config shape.
type LoaderWithFlags struct {
	tracker *FlagTracker
}

// NewLoaderWithFlags returns a loader that tracks the given explicitly-set
// flag names.
func NewLoaderWithFlags(explicit map[string]bool) *LoaderWithFlags {
	tracker := NewFlagTracker()
	for name, set := range explicit {
		if set {
			tracker.Set(name)
		}
	}
	return &LoaderWithFlags{tracker: tracker}
}

// Merge combines file-loaded config with CLI-flag overrides: a field
// carries the override only when its flag was explicitly set, preserving
// flag > config file > built-in default precedence (SPEC_FULL.md 2).
func (l *LoaderWithFlags) Merge(base *Config, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}
	merged := *base
	merged.Structure.FailOnIrreducible = l.tracker.MergeBool(
		merged.Structure.FailOnIrreducible, override.Structure.FailOnIrreducible, "fail-on-irreducible")
	merged.Disasm.Executable = l.tracker.MergeString(
		merged.Disasm.Executable, override.Disasm.Executable, "disasm-exe")
	merged.Disasm.TimeoutSeconds = l.tracker.MergeInt(
		merged.Disasm.TimeoutSeconds, override.Disasm.TimeoutSeconds, "disasm-timeout")
	merged.Output.Format = l.tracker.MergeString(
		merged.Output.Format, override.Output.Format, "format")
	merged.Output.Color = l.tracker.MergeBool(
		merged.Output.Color, override.Output.Color, "color")
	merged.Batch.Progress = l.tracker.MergeBool(
		merged.Batch.Progress, override.Batch.Progress, "progress")
	if l.tracker.WasSet("include") && len(override.Batch.IncludeGlobs) > 0 {
		merged.Batch.IncludeGlobs = override.Batch.IncludeGlobs
	}
	return &merged
}
