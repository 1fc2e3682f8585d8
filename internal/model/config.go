package model

// RunConfig holds the inputs of a single directory scan. It is immutable for
// the duration of the run.
type RunConfig struct {
	WorkingDir       Path
	ConfigPath       Path
	DefaultIgnoreDir Path
	ScanRoots        []Path
}

// RulesConfig is the "rules" block of a lint configuration file.
type RulesConfig struct {
	Tags    []string `mapstructure:"tags" validate:"dive,required"`
	Include []string `mapstructure:"include" validate:"dive,required"`
	Exclude []string `mapstructure:"exclude" validate:"dive,required"`
}

// FilesConfig is the "files" block of a lint configuration file.
type FilesConfig struct {
	Include []string `mapstructure:"include" validate:"dive,required"`
	Exclude []string `mapstructure:"exclude" validate:"dive,required"`
}

// LintConfigFile mirrors the on-disk JSON layout of a lint configuration file.
type LintConfigFile struct {
	Rules RulesConfig `mapstructure:"rules"`
	Files FilesConfig `mapstructure:"files"`
}

// LoadedConfig is a parsed configuration file. It is present only when the
// configuration file exists and is never mutated after loading.
type LoadedConfig struct {
	Path         Path
	Rules        RulesConfig
	IncludePaths []Path
	ExcludePaths []Path
}

// RuleSet is the ordered list of rule codes enabled for a run.
type RuleSet []string

// Contains reports whether code is part of the set.
func (rs RuleSet) Contains(code string) bool {
	for _, c := range rs {
		if c == code {
			return true
		}
	}

	return false
}
