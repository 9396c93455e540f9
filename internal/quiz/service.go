package quiz

import (
	"context"
	"sync"

	"github.com/dkasab/unveil/internal/artifact"
)

// Service is the oracle adapter proper: it forwards to the Oracle while
// enforcing at-most-once automatic generation per artifact slot, caching
// results, and synthesizing a local fallback when the oracle yields nothing.
//
// Generation runs on a goroutine; the completion callback fires when it
// finishes. Callers re-check their own preconditions inside the callback,
// since the session may have moved on while the call was in flight.
type Service struct {
	oracle Oracle

	mu     sync.Mutex
	states map[string]*genState
}

type genState struct {
	attempted    bool
	concluded    bool
	fallbackUsed bool
	epoch        int
	quizzes      map[int]Quiz
	fallbacks    map[int]Quiz
}

// NewService creates a Service wrapping the given oracle.
func NewService(oracle Oracle) *Service {
	return &Service{
		oracle: oracle,
		states: make(map[string]*genState),
	}
}

// RequestGeneration starts async quiz generation for the artifact slot.
// Returns false without calling the oracle when generation was already
// attempted for this slot; force bypasses the marker (manual regenerate).
//
// The attempted marker is set before this method returns, so repeated
// triggering events (duplicate stream-completion signals) cannot start a
// second automatic generation while the first is still in flight.
func (s *Service) RequestGeneration(ctx context.Context, slotKey string, art *artifact.Artifact, gateCount int, force bool, done func(quizzes []Quiz, err error)) bool {
	s.mu.Lock()
	st := s.state(slotKey)
	if st.attempted && !force {
		s.mu.Unlock()
		return false
	}
	st.attempted = true
	st.concluded = false
	epoch := st.epoch
	s.mu.Unlock()

	content, language, artID := art.Content, art.Language, art.ID

	go func() {
		quizzes, err := s.oracle.GenerateQuizzes(ctx, content, language, gateCount)

		s.mu.Lock()
		st := s.state(slotKey)
		if st.epoch != epoch {
			// The slot was reset while this call was in flight. Its
			// results describe content the session has moved past, so
			// drop them without invoking the callback.
			s.mu.Unlock()
			return
		}
		st.concluded = true
		if err == nil {
			for _, q := range quizzes {
				q.ArtifactID = artID
				st.quizzes[q.GateLevel] = q
			}
		}
		s.mu.Unlock()

		if done != nil {
			done(quizzes, err)
		}
	}()
	return true
}

// QuizFor returns the quiz for the given gate level. When generation
// produced nothing for that level, a fallback is synthesized once per slot
// and level, under the lock, and reused afterwards, so a slow or failing
// oracle cannot race a second fallback into existence.
func (s *Service) QuizFor(slotKey string, art *artifact.Artifact, gateLevel int) Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(slotKey)
	if q, ok := st.quizzes[gateLevel]; ok {
		return q
	}
	if q, ok := st.fallbacks[gateLevel]; ok {
		return q
	}

	st.fallbackUsed = true
	q := SynthesizeFallback(art.ID, art.Title, art.Language, art.LineCount(), gateLevel)
	st.fallbacks[gateLevel] = q
	return q
}

// HasQuiz reports whether an oracle-generated quiz exists for the level.
func (s *Service) HasQuiz(slotKey string, gateLevel int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state(slotKey).quizzes[gateLevel]
	return ok
}

// Attempted reports whether automatic generation already ran for the slot.
func (s *Service) Attempted(slotKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(slotKey).attempted
}

// Concluded reports whether the slot's most recent generation ran to
// completion, successfully or not. False while a call is in flight and
// after a Reset, until the next generation finishes.
func (s *Service) Concluded(slotKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(slotKey).concluded
}

// FallbackUsed reports whether the slot ever needed a synthesized quiz.
func (s *Service) FallbackUsed(slotKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(slotKey).fallbackUsed
}

// Reset clears the slot's generation state. Used when a new artifact
// version should be quizzed from scratch via manual regenerate. Bumping
// the epoch invalidates any generation still in flight for the slot, so
// a stale completion can never repopulate the cleared cache.
func (s *Service) Reset(slotKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(slotKey)
	st.epoch++
	st.attempted = false
	st.concluded = false
	st.fallbackUsed = false
	st.quizzes = make(map[int]Quiz)
	st.fallbacks = make(map[int]Quiz)
}

// Grade forwards a free-form answer to the oracle.
func (s *Service) Grade(ctx context.Context, question, userAnswer, codeContext string) (*GradeResult, error) {
	return s.oracle.GradeFreeform(ctx, question, userAnswer, codeContext)
}

// state returns the per-slot record, creating it if needed. Callers hold mu.
func (s *Service) state(slotKey string) *genState {
	st, ok := s.states[slotKey]
	if !ok {
		st = &genState{
			quizzes:   make(map[int]Quiz),
			fallbacks: make(map[int]Quiz),
		}
		s.states[slotKey] = st
	}
	return st
}
