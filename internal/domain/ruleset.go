package domain

import (
	"log/slog"

	"denolint.dev/pkg/denolint/internal/domain/rules"
	m "denolint.dev/pkg/denolint/internal/model"
)

// SelectForSingleFile builds the rule set for single-buffer mode. The base is
// every rule when allRules is set, otherwise the recommended set; exclude is
// applied before include so an explicit include always wins.
func SelectForSingleFile(allRules bool, exclude, include []string) m.RuleSet {
	base := rules.Recommended()
	if allRules {
		base = rules.All()
	}

	return refine(rules.Codes(base), exclude, include)
}

// SelectForScan builds the rule set for a directory scan. Without a
// configuration file the recommended set is used unconditionally; otherwise
// its rules block is authoritative.
func SelectForScan(loaded *m.LoadedConfig) m.RuleSet {
	if loaded == nil {
		return rules.Codes(rules.Recommended())
	}

	tags := loaded.Rules.Tags
	if len(tags) == 0 {
		tags = []string{rules.TagRecommended}
	}

	var base m.RuleSet

	for _, tag := range tags {
		tagged := rules.Tagged(tag)
		if len(tagged) == 0 {
			slog.Warn("Unknown rule tag", "tag", tag, "config", loaded.Path)
		}

		base = appendUnique(base, rules.Codes(tagged)...)
	}

	return refine(base, loaded.Rules.Exclude, loaded.Rules.Include)
}

func refine(base m.RuleSet, exclude, include []string) m.RuleSet {
	excluded := make(map[string]bool, len(exclude))
	for _, code := range exclude {
		excluded[code] = true
	}

	out := make(m.RuleSet, 0, len(base)+len(include))

	for _, code := range base {
		if !excluded[code] {
			out = appendUnique(out, code)
		}
	}

	for _, code := range include {
		if _, ok := rules.Lookup(code); !ok {
			slog.Warn("Unknown rule", "code", code)
			continue
		}

		out = appendUnique(out, code)
	}

	return out
}

func appendUnique(set m.RuleSet, codes ...string) m.RuleSet {
	for _, code := range codes {
		if !set.Contains(code) {
			set = append(set, code)
		}
	}

	return set
}
