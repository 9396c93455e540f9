package convo

import (
	"sort"

	"github.com/dkasab/unveil/internal/artifact"
	"github.com/dkasab/unveil/internal/classify"
	"github.com/dkasab/unveil/internal/quiz"
	"github.com/dkasab/unveil/internal/unlock"
	"github.com/dkasab/unveil/internal/visibility"
)

// ProgressInfo is the consumer-facing progress summary for one artifact.
type ProgressInfo struct {
	UnlockLevel int  `json:"unlockLevel"`
	TotalGates  int  `json:"totalGates"`
	Percent     int  `json:"percent"`
	Unlocked    bool `json:"unlocked"`
}

// ArtifactView bundles everything a renderer needs for one slot.
type ArtifactView struct {
	Slot     string
	Artifact artifact.Artifact
	Progress ProgressInfo
	Quiz     *quiz.Quiz
	Active   bool
}

// GetVisibleCode renders the artifact with locked lines redacted.
func (m *Manager) GetVisibleCode(ref string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.state.findSlot(ref)
	if !ok {
		return "", ErrUnknownArtifact
	}
	art := m.state.Artifacts[slot]
	p := m.state.Progress[slot]

	return visibility.Render(m.classifyLocked(art), p.UnlockLevel, p.TotalGates), nil
}

// GetProgress reports unlock progress for the artifact.
func (m *Manager) GetProgress(ref string) (ProgressInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.state.findSlot(ref)
	if !ok {
		return ProgressInfo{}, ErrUnknownArtifact
	}
	return progressInfo(m.state.Progress[slot]), nil
}

// CurrentQuiz returns a copy of the artifact's pending quiz, if any.
func (m *Manager) CurrentQuiz(ref string) (*quiz.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.state.findSlot(ref)
	if !ok {
		return nil, ErrUnknownArtifact
	}
	q := m.state.Progress[slot].CurrentQuiz
	if q == nil {
		return nil, nil
	}
	copied := *q
	return &copied, nil
}

// History returns a copy of the artifact's answer history.
func (m *Manager) History(ref string) ([]unlock.AnswerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.state.findSlot(ref)
	if !ok {
		return nil, ErrUnknownArtifact
	}
	history := m.state.Progress[slot].History
	out := make([]unlock.AnswerRecord, len(history))
	copy(out, history)
	return out, nil
}

// Artifacts lists every tracked slot, sorted by slot key for stable
// display, with the active slot flagged.
func (m *Manager) Artifacts() []ArtifactView {
	m.mu.Lock()
	defer m.mu.Unlock()

	views := make([]ArtifactView, 0, len(m.state.Artifacts))
	for slot, art := range m.state.Artifacts {
		p := m.state.Progress[slot]
		v := ArtifactView{
			Slot:     slot,
			Artifact: *art,
			Progress: progressInfo(p),
			Active:   slot == m.state.ActiveSlot,
		}
		if p.CurrentQuiz != nil {
			copied := *p.CurrentQuiz
			v.Quiz = &copied
		}
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Slot < views[j].Slot })
	return views
}

// ActiveArtifact returns the view for the active slot, or nil when the
// session has no artifacts yet.
func (m *Manager) ActiveArtifact() *ArtifactView {
	for _, v := range m.Artifacts() {
		if v.Active {
			return &v
		}
	}
	return nil
}

// classifyLocked memoizes classification per artifact version id; content
// is immutable per version so the cache never goes stale.
func (m *Manager) classifyLocked(art *artifact.Artifact) []classify.Line {
	if lines, ok := m.classified[art.ID]; ok {
		return lines
	}
	lines := classify.Classify(art.Content)
	m.classified[art.ID] = lines
	return lines
}

func progressInfo(p *unlock.Progress) ProgressInfo {
	return ProgressInfo{
		UnlockLevel: p.UnlockLevel,
		TotalGates:  p.TotalGates,
		Percent:     visibility.Percent(p.UnlockLevel, p.TotalGates),
		Unlocked:    p.IsUnlocked(),
	}
}
