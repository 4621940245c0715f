package fingerprint

// Config describes which signals a collection run should gather.
//
// Signals takes precedence over Preset when non-nil: the explicit list is
// used verbatim, minus duplicates (first occurrence wins) and minus names
// the registry does not know. Filtering unknown names at resolve time keeps
// them from becoming silent no-ops during collection. A non-nil empty list
// deliberately enables nothing.
//
// When Signals is nil, Preset selects one of the built-in presets by name
// (case-insensitive). An empty or unrecognized preset name falls back to
// DEFAULT.
//
// Exclude removes names from the chosen base set, preserving the relative
// order of the remainder.
type Config struct {
	Preset  string
	Signals []string
	Exclude []string
}

// ResolveSignals computes the ordered enabled signal set for cfg against the
// given registry. It is called once at Generator construction; the result is
// immutable for the lifetime of the Generator.
func ResolveSignals[S any](cfg Config, reg *Registry[S]) []string {
	var base []string
	switch {
	case cfg.Signals != nil:
		seen := make(map[string]struct{}, len(cfg.Signals))
		for _, name := range cfg.Signals {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if reg != nil && !reg.Has(name) {
				continue
			}
			base = append(base, name)
		}
	default:
		list, ok := PresetSignals(cfg.Preset)
		if !ok {
			list = DefaultPreset()
		}
		base = list
	}

	if len(cfg.Exclude) == 0 {
		return base
	}

	excluded := make(map[string]struct{}, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		excluded[name] = struct{}{}
	}

	out := base[:0:0]
	for _, name := range base {
		if _, skip := excluded[name]; skip {
			continue
		}
		out = append(out, name)
	}
	return out
}
