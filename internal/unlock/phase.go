package unlock

// Phase is the session-level phase projection. Gating state is tracked per
// artifact; the phase is a convenience view re-evaluated against whichever
// artifact is active.
type Phase string

const (
	// PhaseInitial is a fresh session with no plan and no artifacts.
	PhaseInitial Phase = "initial"

	// PhasePlanning is entered when the session requests a plan before any
	// code exists. Upstream policy decides this, not the gating engine.
	PhasePlanning Phase = "planning"

	// PhaseCoding is entered the instant any artifact is extracted.
	PhaseCoding Phase = "coding"

	// PhaseUnlocking means the active artifact has a quiz and is still gated.
	PhaseUnlocking Phase = "unlocking"

	// PhaseUnlocked means the active artifact has passed all its gates.
	// Terminal for that artifact; switching artifacts re-projects.
	PhaseUnlocked Phase = "unlocked"
)

// ProjectPhase computes the phase for the active artifact's progress.
// planning reports whether upstream asked for a plan before code appeared;
// hasArtifacts is whether any artifact exists in the session.
func ProjectPhase(planning, hasArtifacts bool, active *Progress) Phase {
	if !hasArtifacts {
		if planning {
			return PhasePlanning
		}
		return PhaseInitial
	}
	if active == nil {
		return PhaseCoding
	}
	if active.IsUnlocked() {
		return PhaseUnlocked
	}
	if active.CurrentQuiz != nil {
		return PhaseUnlocking
	}
	return PhaseCoding
}

// DefaultGateThreshold is the line count below which an artifact gets a
// single gate instead of the full count.
const DefaultGateThreshold = 8

// DefaultGates is the standard gate count for a non-trivial artifact.
const DefaultGates = 3

// GateCount decides how many gates an artifact needs. Pre-unlocked sessions
// (operator skip policy) get zero; tiny artifacts get one; everything else
// gets the default.
func GateCount(lineCount int, preUnlocked bool) int {
	switch {
	case preUnlocked:
		return 0
	case lineCount < DefaultGateThreshold:
		return 1
	default:
		return DefaultGates
	}
}
