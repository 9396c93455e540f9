package convo

import (
	"encoding/json"
	"fmt"

	"github.com/dkasab/unveil/internal/artifact"
	"github.com/dkasab/unveil/internal/unlock"
)

// stateVersion is bumped when the serialized shape changes incompatibly.
const stateVersion = 1

// State is the aggregate root for one conversation: every artifact slot,
// its gating progress, and the active pointer. It is owned exclusively by
// the Manager and serialized verbatim on every meaningful mutation.
type State struct {
	Version        int    `json:"version"`
	ConversationID string `json:"conversationId"`

	// Planning is set when upstream requested a plan before any code.
	Planning bool `json:"planning"`

	// SkipAllowed is operator policy: when true every new artifact starts
	// pre-unlocked and no quiz flow runs.
	SkipAllowed bool `json:"skipAllowed"`

	// Turn is the ordinal position in the conversation, advanced each time
	// a complete assistant message is ingested. Answer records anchor to it.
	Turn int `json:"turn"`

	// ActiveSlot is the slot key of the artifact the learner is looking at.
	ActiveSlot string `json:"activeArtifactId"`

	// Artifacts holds the latest version per logical slot.
	Artifacts map[string]*artifact.Artifact `json:"artifacts"`

	// Versions retains superseded artifact records per slot, oldest first.
	Versions map[string][]artifact.Artifact `json:"versions,omitempty"`

	// Progress holds gating state per slot. Progress survives version
	// bumps: gates are never re-locked by a content update.
	Progress map[string]*unlock.Progress `json:"progress"`
}

// RestoreError reports a persisted snapshot that failed shape validation.
// The session falls back to a fresh state rather than crashing: this is
// resumable learner progress, not critical data.
type RestoreError struct {
	Err error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore session state: %v", e.Err)
}

func (e *RestoreError) Unwrap() error { return e.Err }

// NewState creates an empty aggregate for the conversation.
func NewState(conversationID string, skipAllowed bool) *State {
	return &State{
		Version:        stateVersion,
		ConversationID: conversationID,
		SkipAllowed:    skipAllowed,
		Artifacts:      make(map[string]*artifact.Artifact),
		Versions:       make(map[string][]artifact.Artifact),
		Progress:       make(map[string]*unlock.Progress),
	}
}

// Phase projects the session phase from the active artifact's progress.
func (s *State) Phase() unlock.Phase {
	return unlock.ProjectPhase(s.Planning, len(s.Artifacts) > 0, s.Progress[s.ActiveSlot])
}

// Marshal serializes the state for persistence.
func (s *State) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session state: %w", err)
	}
	return data, nil
}

// UnmarshalState restores a serialized aggregate exactly as written;
// nothing observable is re-derived lazily. Shape violations return a
// RestoreError; structural invariant violations (corrupt progress, quiz
// that fails validation) are also RestoreErrors here because a restore
// discovering them cannot continue with partial state.
func UnmarshalState(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &RestoreError{Err: err}
	}
	if err := s.validate(); err != nil {
		return nil, &RestoreError{Err: err}
	}

	if s.Artifacts == nil {
		s.Artifacts = make(map[string]*artifact.Artifact)
	}
	if s.Versions == nil {
		s.Versions = make(map[string][]artifact.Artifact)
	}
	if s.Progress == nil {
		s.Progress = make(map[string]*unlock.Progress)
	}
	return &s, nil
}

func (s *State) validate() error {
	if s.Version != stateVersion {
		return fmt.Errorf("unsupported state version %d", s.Version)
	}
	if s.ConversationID == "" {
		return fmt.Errorf("missing conversation id")
	}
	for key, a := range s.Artifacts {
		if a == nil || a.ID == "" {
			return fmt.Errorf("slot %q: artifact without id", key)
		}
	}
	seenQuiz := make(map[string]string)
	for key, p := range s.Progress {
		if p == nil {
			return fmt.Errorf("slot %q: nil progress", key)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("slot %q: %w", key, err)
		}
		if p.CurrentQuiz != nil {
			if prev, dup := seenQuiz[p.CurrentQuiz.ID]; dup {
				return fmt.Errorf("quiz id %s attached to both %q and %q", p.CurrentQuiz.ID, prev, key)
			}
			seenQuiz[p.CurrentQuiz.ID] = key
		}
	}
	if s.ActiveSlot != "" {
		if _, ok := s.Artifacts[s.ActiveSlot]; !ok {
			return fmt.Errorf("active slot %q has no artifact", s.ActiveSlot)
		}
	}
	return nil
}

// findSlot resolves an artifact reference that may be a slot key or a
// version id.
func (s *State) findSlot(ref string) (string, bool) {
	if _, ok := s.Artifacts[ref]; ok {
		return ref, true
	}
	for key, a := range s.Artifacts {
		if a.ID == ref {
			return key, true
		}
	}
	return "", false
}
