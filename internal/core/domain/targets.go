package domain

// Targets is the validated set of positional tokens from one invocation.
type Targets struct {
	// All indicates the "all" pseudo-target was named.
	All bool
	// Clean indicates the "clean" pseudo-target was named.
	Clean bool
	// Uninstall indicates the "uninstall" pseudo-target was named.
	Uninstall bool
	// Steps are the explicitly named build and test steps, deduplicated.
	Steps []StepName
}

// Explicit reports whether at least one positional target was supplied.
func (t Targets) Explicit() bool {
	return t.All || t.Clean || t.Uninstall || len(t.Steps) > 0
}

// ParseTargets validates every token against the fixed allow-list. The
// first unrecognized token fails the whole invocation before any action
// runs; the error carries the offending token as metadata.
func ParseTargets(tokens []string) (Targets, error) {
	var t Targets
	seen := make(map[StepName]bool, len(tokens))

	for _, tok := range tokens {
		name := StepName(tok)
		switch name {
		case TargetAll:
			t.All = true
		case StepClean:
			t.Clean = true
		case StepUninstall:
			t.Uninstall = true
		case StepLibcugraph, StepLibcugraphETL, StepCPPMGTests, StepCPPMTMGTests,
			StepPylibcugraph, StepCugraph, StepCugraphService, StepDocs:
			if !seen[name] {
				seen[name] = true
				t.Steps = append(t.Steps, name)
			}
		default:
			return Targets{}, zerrWithToken(tok)
		}
	}

	return t, nil
}
