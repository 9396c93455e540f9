package convo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkasab/unveil/internal/artifact"
	"github.com/dkasab/unveil/internal/classify"
	"github.com/dkasab/unveil/internal/quiz"
	"github.com/dkasab/unveil/internal/store"
	"github.com/dkasab/unveil/internal/unlock"
)

// Change describes a state mutation for observers.
type Change struct {
	Reason string // "artifact", "quiz", "progress", "phase", "active"
	Slot   string
}

// Options configures a Manager.
type Options struct {
	// ConversationID identifies the owning conversation. A fresh UUID is
	// assigned when empty.
	ConversationID string

	// SkipAllowed is the operator policy: new artifacts start pre-unlocked.
	SkipAllowed bool

	// Quizzes is the oracle adapter. Nil disables quiz generation (every
	// gated artifact waits forever, so only useful in pure-extraction runs).
	Quizzes *quiz.Service

	// Persister receives debounced snapshots. Nil disables persistence.
	Persister Persister

	// Events receives append-only domain events. Nil disables event logging.
	Events store.EventRepo

	// FlushDelay is the debounce window for snapshot writes. Default 2s.
	FlushDelay time.Duration

	// Sentinel overrides the extractor's length-limit marker.
	Sentinel string
}

// Manager owns one conversation's SessionState. Every mutation goes
// through its entry points under a single lock, so no two mutations
// interleave even though callers are event-driven. External oracle calls
// are the only suspension points; their completion handlers re-enter
// through locked methods and re-check preconditions before applying
// anything, because the session may have moved on in between.
type Manager struct {
	mu    sync.Mutex
	state *State

	extractor artifact.Extractor
	quizzes   *quiz.Service
	events    store.EventRepo

	// genDone marks slots whose automatic generation finished (with or
	// without usable quizzes), so the answer path knows whether a missing
	// next quiz means "still in flight" or "fall back".
	genDone map[string]bool

	// classified memoizes line classification per artifact version id.
	classified map[string][]classify.Line

	observers []func(Change)

	persist persistState

	closed bool
}

// New creates a Manager with a fresh empty state.
func New(opts Options) *Manager {
	id := opts.ConversationID
	if id == "" {
		id = uuid.NewString()
	}
	m := &Manager{
		state:      NewState(id, opts.SkipAllowed),
		extractor:  artifact.Extractor{Sentinel: opts.Sentinel},
		quizzes:    opts.Quizzes,
		events:     opts.Events,
		genDone:    make(map[string]bool),
		classified: make(map[string][]classify.Line),
	}
	m.persist.init(opts.Persister, opts.FlushDelay, m.snapshotLocked, m.timerFlush)
	return m
}

// LoadOrNew restores the conversation from its latest snapshot, falling
// back to a fresh state when none exists or the snapshot fails validation.
// A RestoreError is returned alongside the fresh manager so callers can
// log the loss; the manager itself is always usable.
func LoadOrNew(ctx context.Context, opts Options) (*Manager, error) {
	m := New(opts)
	if opts.Persister == nil || opts.ConversationID == "" {
		return m, nil
	}

	data, err := opts.Persister.Load(ctx, opts.ConversationID)
	if err != nil || data == nil {
		return m, err
	}

	state, rerr := UnmarshalState(data)
	if rerr != nil {
		return m, rerr
	}
	m.mu.Lock()
	m.state = state
	m.resumeQuizzesLocked()
	m.mu.Unlock()
	return m, nil
}

// ConversationID returns the owning conversation's id.
func (m *Manager) ConversationID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.ConversationID
}

// Phase returns the current session phase projection.
func (m *Manager) Phase() unlock.Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Phase()
}

// BeginPlanning marks that upstream requested a plan before any code.
func (m *Manager) BeginPlanning() {
	m.mu.Lock()
	m.state.Planning = true
	m.persist.markDirty()
	m.mu.Unlock()
	m.notify(Change{Reason: "phase"})
}

// Subscribe registers an observer invoked after every state change, outside
// the manager's lock.
func (m *Manager) Subscribe(fn func(Change)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// IngestAssistantText feeds a (possibly partial) assistant message into the
// engine. Safe to call repeatedly with growing prefixes: already-known
// artifact versions are not re-emitted. The call with isFinal=true detects
// truncation and triggers quiz generation, which is deferred until then so
// questions are never generated about an incomplete body.
//
// Malformed marker pairs are skipped and reported through the returned
// error (joined); the rest of the text is still processed.
func (m *Manager) IngestAssistantText(text string, isFinal bool) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}

	blocks, errs := m.extractor.Extract(text, isFinal)

	var changes []Change
	for _, block := range blocks {
		if c := m.applyBlockLocked(block); c != nil {
			changes = append(changes, *c)
		}
	}

	if isFinal {
		m.state.Turn++
		changes = append(changes, m.triggerGenerationLocked()...)
	}

	if len(changes) > 0 {
		m.persist.markDirty()
	}
	m.mu.Unlock()

	m.notify(changes...)
	return errors.Join(errs...)
}

// applyBlockLocked merges one extracted block into the aggregate. Returns
// nil when the block is already known with identical content.
func (m *Manager) applyBlockLocked(block artifact.Artifact) *Change {
	key := artifact.KeyFor(block.Title, block.Language, block.Ordinal).String()

	current, known := m.state.Artifacts[key]
	if known {
		if current.Content == block.Content {
			// Re-extraction of a known version; only the truncation flag
			// may have been refined by the final pass.
			if current.Truncated != block.Truncated {
				current.Truncated = block.Truncated
				return &Change{Reason: "artifact", Slot: key}
			}
			return nil
		}
		block.Version = current.Version + 1
		m.state.Versions[key] = append(m.state.Versions[key], *current)
	}

	stored := block
	m.state.Artifacts[key] = &stored
	delete(m.classified, stored.ID)

	if _, ok := m.state.Progress[key]; !ok {
		gates := unlock.GateCount(stored.LineCount(), m.state.SkipAllowed)
		m.state.Progress[key] = unlock.NewProgress(gates)
	}

	if m.state.ActiveSlot == "" {
		m.state.ActiveSlot = key
	}

	if m.events != nil {
		_ = m.events.AppendArtifact(context.Background(), store.ArtifactEventData{
			ConversationID: m.state.ConversationID,
			ArtifactID:     stored.ID,
			SlotKey:        key,
			Title:          stored.Title,
			Language:       stored.Language,
			Version:        stored.Version,
			LineCount:      stored.LineCount(),
			Truncated:      stored.Truncated,
		})
	}

	return &Change{Reason: "artifact", Slot: key}
}

// triggerGenerationLocked starts quiz generation for every gated slot that
// doesn't have one yet. The adapter's attempted marker makes this safe to
// re-enter on duplicate stream-completion signals.
func (m *Manager) triggerGenerationLocked() []Change {
	if m.quizzes == nil {
		return nil
	}

	var changes []Change
	for key, p := range m.state.Progress {
		if p.IsUnlocked() {
			continue
		}
		art := m.state.Artifacts[key]
		if art == nil {
			continue
		}
		slot := key
		started := m.quizzes.RequestGeneration(context.Background(), slot, art, p.TotalGates, false,
			func([]quiz.Quiz, error) { m.onGenerationDone(slot) })
		if started {
			changes = append(changes, Change{Reason: "quiz", Slot: key})
		}
	}
	return changes
}

// resumeQuizzesLocked re-establishes the quiz pipeline after the state was
// replaced wholesale. A snapshot taken while generation was in flight holds
// gated slots with no CurrentQuiz, and nothing else ever revisits them, so
// each such slot either re-requests generation or, when a generation already
// concluded in this process, attaches straight from the adapter's cache.
func (m *Manager) resumeQuizzesLocked() []Change {
	if m.quizzes == nil {
		return nil
	}
	changes := m.triggerGenerationLocked()
	for slot := range m.state.Progress {
		if m.quizzes.Concluded(slot) {
			m.genDone[slot] = true
		}
		if c := m.attachQuizLocked(slot); c != nil {
			changes = append(changes, *c)
		}
	}
	return changes
}

// onGenerationDone is the completion handler for an in-flight generation
// call. The session may have been closed, the artifact replaced, or the
// gate already passed while the call was pending, so every precondition is
// re-checked before a quiz is attached.
func (m *Manager) onGenerationDone(slot string) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.genDone[slot] = true
	change := m.attachQuizLocked(slot)
	if change != nil {
		m.persist.markDirty()
	}
	m.mu.Unlock()

	if change != nil {
		m.notify(*change)
	}
}

// attachQuizLocked attaches the quiz for the slot's current gate level if
// the slot is still gated, quizless, and its generation has concluded.
// Falls back to a synthesized quiz when generation yielded nothing.
func (m *Manager) attachQuizLocked(slot string) *Change {
	p := m.state.Progress[slot]
	art := m.state.Artifacts[slot]
	if p == nil || art == nil || p.IsUnlocked() || p.CurrentQuiz != nil {
		return nil
	}
	if m.quizzes == nil {
		return nil
	}
	if !m.quizzes.HasQuiz(slot, p.UnlockLevel) && !m.genDone[slot] {
		// Generation still in flight; its handler will attach.
		return nil
	}

	q := m.quizzes.QuizFor(slot, art, p.UnlockLevel)
	if !p.AttachQuiz(q) {
		return nil
	}
	return &Change{Reason: "quiz", Slot: slot}
}

// AnswerQuiz grades the learner's answer to the artifact's current quiz.
//
// Multiple-choice quizzes grade locally; freeform quizzes suspend on the
// grading oracle with the lock released, then re-verify the quiz is still
// current before recording anything. A grading failure propagates as an
// OracleError with no state change, so the caller can retry.
func (m *Manager) AnswerQuiz(ctx context.Context, ref, quizID, userAnswer string) (*quiz.GradeResult, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}

	slot, ok := m.state.findSlot(ref)
	if !ok {
		m.mu.Unlock()
		return nil, ErrUnknownArtifact
	}
	p := m.state.Progress[slot]
	if err := p.CurrentQuizMatches(quizID); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	current := *p.CurrentQuiz

	var result quiz.GradeResult
	if len(current.Options) > 0 {
		result.IsCorrect = quiz.CheckAnswer(&current, userAnswer)
	} else {
		// Freeform: release the lock around the oracle call, then re-check
		// the quiz is still current before applying the grade.
		m.mu.Unlock()

		if m.quizzes == nil {
			return nil, &OracleError{Op: "grade", Err: errors.New("no oracle configured")}
		}
		graded, err := m.quizzes.Grade(ctx, current.Question, userAnswer, current.CodeSnippet)
		if err != nil {
			return nil, &OracleError{Op: "grade", Err: err}
		}
		result = *graded

		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			return nil, ErrClosed
		}
		// The state may have been restored or mutated while the grading
		// call was in flight; resolve everything again.
		slot, ok = m.state.findSlot(ref)
		if !ok {
			m.mu.Unlock()
			return nil, ErrUnknownArtifact
		}
		p = m.state.Progress[slot]
		if err := p.CurrentQuizMatches(quizID); err != nil {
			m.mu.Unlock()
			return nil, err
		}
	}

	p.RecordAnswer(userAnswer, result.IsCorrect, m.state.Turn)

	if m.events != nil {
		_ = m.events.AppendQuizAnswer(ctx, store.QuizAnswerEventData{
			ConversationID: m.state.ConversationID,
			ArtifactID:     current.ArtifactID,
			QuizID:         current.ID,
			Question:       current.Question,
			UserAnswer:     userAnswer,
			Correct:        result.IsCorrect,
			GateLevel:      current.GateLevel,
			Turn:           m.state.Turn,
			Fallback:       current.Fallback,
		})
	}

	changes := []Change{{Reason: "progress", Slot: slot}}
	unlocked := p.IsUnlocked()
	if result.IsCorrect && !unlocked {
		if c := m.attachQuizLocked(slot); c != nil {
			changes = append(changes, *c)
		}
	}

	m.persist.markDirty()
	if unlocked {
		changes = append(changes, Change{Reason: "phase", Slot: slot})
		// Entering unlocked is a critical transition: flush synchronously.
		m.persist.flushNowLocked(ctx)
	}
	m.mu.Unlock()

	m.notify(changes...)
	return &result, nil
}

// Skip jumps the artifact straight to fully unlocked. Only permitted when
// the session policy allows it; skipped gates leave no history.
func (m *Manager) Skip(ctx context.Context, ref string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if !m.state.SkipAllowed {
		m.mu.Unlock()
		return ErrSkipNotAllowed
	}
	slot, ok := m.state.findSlot(ref)
	if !ok {
		m.mu.Unlock()
		return ErrUnknownArtifact
	}

	m.state.Progress[slot].Skip()
	m.persist.markDirty()
	m.persist.flushNowLocked(ctx)
	m.mu.Unlock()

	m.notify(Change{Reason: "progress", Slot: slot}, Change{Reason: "phase", Slot: slot})
	return nil
}

// SetActiveArtifact moves the active pointer. Pure pointer change: no
// progress is mutated, and phase is re-projected against the new target.
func (m *Manager) SetActiveArtifact(ref string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	slot, ok := m.state.findSlot(ref)
	if !ok {
		m.mu.Unlock()
		return ErrUnknownArtifact
	}
	m.state.ActiveSlot = slot
	m.persist.markDirty()
	m.mu.Unlock()

	m.notify(Change{Reason: "active", Slot: slot})
	return nil
}

// RegenerateQuizzes bypasses the at-most-once marker and asks the oracle
// for a fresh quiz set for the slot.
func (m *Manager) RegenerateQuizzes(ctx context.Context, ref string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	slot, ok := m.state.findSlot(ref)
	if !ok {
		m.mu.Unlock()
		return ErrUnknownArtifact
	}
	if m.quizzes == nil {
		m.mu.Unlock()
		return &OracleError{Op: "generate", Err: errors.New("no oracle configured")}
	}

	art := m.state.Artifacts[slot]
	p := m.state.Progress[slot]
	p.CurrentQuiz = nil
	delete(m.genDone, slot)
	m.quizzes.Reset(slot)
	m.quizzes.RequestGeneration(ctx, slot, art, p.TotalGates, true,
		func([]quiz.Quiz, error) { m.onGenerationDone(slot) })
	m.mu.Unlock()

	m.notify(Change{Reason: "quiz", Slot: slot})
	return nil
}

// Snapshot serializes the current state.
func (m *Manager) Snapshot() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Marshal()
}

// Restore replaces the aggregate with a previously serialized state. The
// restored state is marked dirty so it reaches the persister even if no
// further mutation follows, and gated quizless slots resume generation.
func (m *Manager) Restore(data []byte) error {
	state, err := UnmarshalState(data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.state = state
	m.genDone = make(map[string]bool)
	m.classified = make(map[string][]classify.Line)
	changes := m.resumeQuizzesLocked()
	m.persist.markDirty()
	m.mu.Unlock()

	m.notify(append(changes, Change{Reason: "phase"})...)
	return nil
}

// Flush writes the snapshot now if the state is dirty.
func (m *Manager) Flush(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persist.flushNowLocked(ctx)
}

// Close stops the flush timer and writes any dirty state synchronously.
// In-flight oracle completions after Close become no-ops.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	return m.persist.closeLocked(ctx)
}

// snapshotLocked is the flush hook; callers hold mu.
func (m *Manager) snapshotLocked() (string, []byte, error) {
	data, err := m.state.Marshal()
	return m.state.ConversationID, data, err
}

// timerFlush is the debounce timer callback. It takes the manager lock so
// the flush sees a consistent state.
func (m *Manager) timerFlush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persist.timer = nil
	if m.closed {
		return
	}
	// On failure the dirty flag stays set, so the next mutation or the
	// final close retries the write.
	_ = m.persist.flushNowLocked(context.Background())
}

func (m *Manager) notify(changes ...Change) {
	if len(changes) == 0 {
		return
	}
	m.mu.Lock()
	observers := make([]func(Change), len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	for _, fn := range observers {
		for _, c := range changes {
			fn(c)
		}
	}
}
