package reveal

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/dkasab/unveil/internal/convo"
	"github.com/dkasab/unveil/internal/quiz"
	"github.com/dkasab/unveil/internal/screen"
	"github.com/dkasab/unveil/internal/ui/components"
	"github.com/dkasab/unveil/internal/ui/layout"
)

// RevealScreen implements screen.Screen for the unlock session: the redacted
// code pane for the active artifact plus its current comprehension question.
type RevealScreen struct {
	mgr *convo.Manager

	views    []convo.ArtifactView
	selected int
	code     string

	currentQuiz *quiz.Quiz
	mc          components.MultiChoice
	input       components.TextInput

	showHint        bool
	showingFeedback bool
	feedback        string
	feedbackGood    bool
	answering       bool
	errMsg          string
}

var _ screen.Screen = (*RevealScreen)(nil)
var _ screen.KeyHintProvider = (*RevealScreen)(nil)

// New creates the unlock screen bound to a session manager.
func New(mgr *convo.Manager) *RevealScreen {
	s := &RevealScreen{
		mgr:   mgr,
		input: components.NewTextInput("Type your answer...", 200),
	}
	s.refresh()
	return s
}

func (s *RevealScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *RevealScreen) Title() string {
	if v := s.activeView(); v != nil && v.Artifact.Title != "" {
		return v.Artifact.Title
	}
	return "Session"
}

func (s *RevealScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	hints := []layout.KeyHint{}
	if len(s.views) > 1 {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next artifact"})
	}
	if s.currentQuiz != nil {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Submit"},
			layout.KeyHint{Key: "H", Description: "Hint"},
		)
	}
	hints = append(hints,
		layout.KeyHint{Key: "S", Description: "Skip"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (s *RevealScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case StateChangedMsg:
		s.refresh()
		return s, nil

	case gradeResultMsg:
		return s.handleGradeResult(msg)

	case skipDoneMsg:
		s.answering = false
		if msg.Err != nil {
			if errors.Is(msg.Err, convo.ErrSkipNotAllowed) {
				s.errMsg = "Skipping is disabled for this session."
			} else {
				s.errMsg = msg.Err.Error()
			}
		}
		s.refresh()
		return s, nil

	case regenerateDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.refresh()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.currentQuiz != nil && len(s.currentQuiz.Options) == 0 {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RevealScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.showingFeedback {
		s.showingFeedback = false
		s.showHint = false
		s.refresh()
		return s, nil
	}
	if s.answering {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		return s.cycleArtifact(1)
	case "shift+tab":
		return s.cycleArtifact(-1)
	}

	freeform := s.currentQuiz != nil && len(s.currentQuiz.Options) == 0

	switch msg.String() {
	case "enter":
		return s.submitAnswer()
	case "h", "H":
		if !freeform && s.currentQuiz != nil && s.currentQuiz.Hint != "" {
			s.showHint = !s.showHint
		}
	case "s", "S":
		if !freeform {
			return s.skipActive()
		}
	case "r", "R":
		if !freeform && s.currentQuiz != nil {
			return s.regenerate()
		}
	}

	if s.currentQuiz != nil {
		var cmd tea.Cmd
		if freeform {
			s.input, cmd = s.input.Update(msg)
		} else {
			s.mc, cmd = s.mc.Update(msg)
		}
		return s, cmd
	}
	return s, nil
}

func (s *RevealScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	view := s.activeView()
	if view == nil || s.currentQuiz == nil {
		return s, nil
	}

	var answer string
	if len(s.currentQuiz.Options) == 0 {
		answer = s.input.Value()
		if answer == "" {
			return s, nil
		}
	} else {
		s.mc.Submitted = true
		s.mc.ChosenIndex = s.mc.Selected
		answer = s.currentQuiz.Options[s.mc.Selected].Label
	}

	s.answering = true
	s.errMsg = ""
	slot, quizID := view.Slot, s.currentQuiz.ID
	mgr := s.mgr
	return s, func() tea.Msg {
		result, err := mgr.AnswerQuiz(context.Background(), slot, quizID, answer)
		return gradeResultMsg{Result: result, Err: err}
	}
}

func (s *RevealScreen) handleGradeResult(msg gradeResultMsg) (screen.Screen, tea.Cmd) {
	s.answering = false
	if msg.Err != nil {
		var oerr *convo.OracleError
		if errors.As(msg.Err, &oerr) {
			s.errMsg = "Grading is unavailable right now; your answer was not recorded. Try again."
		} else {
			s.errMsg = msg.Err.Error()
		}
		s.mc.Submitted = false
		return s, nil
	}

	s.showingFeedback = true
	s.feedbackGood = msg.Result.IsCorrect
	switch {
	case msg.Result.Feedback != "":
		s.feedback = msg.Result.Feedback
	case msg.Result.IsCorrect:
		s.feedback = "Correct! More of the code is now visible."
	default:
		s.feedback = "Not quite. Read the visible lines again and retry."
	}
	return s, nil
}

func (s *RevealScreen) skipActive() (screen.Screen, tea.Cmd) {
	view := s.activeView()
	if view == nil || view.Progress.Unlocked {
		return s, nil
	}
	s.answering = true
	slot := view.Slot
	mgr := s.mgr
	return s, func() tea.Msg {
		return skipDoneMsg{Err: mgr.Skip(context.Background(), slot)}
	}
}

func (s *RevealScreen) regenerate() (screen.Screen, tea.Cmd) {
	view := s.activeView()
	if view == nil {
		return s, nil
	}
	slot := view.Slot
	mgr := s.mgr
	return s, func() tea.Msg {
		return regenerateDoneMsg{Err: mgr.RegenerateQuizzes(context.Background(), slot)}
	}
}

func (s *RevealScreen) cycleArtifact(dir int) (screen.Screen, tea.Cmd) {
	if len(s.views) < 2 {
		return s, nil
	}
	s.selected = (s.selected + dir + len(s.views)) % len(s.views)
	slot := s.views[s.selected].Slot
	if err := s.mgr.SetActiveArtifact(slot); err != nil {
		s.errMsg = err.Error()
	}
	s.refresh()
	return s, nil
}

// refresh re-reads the manager's read model. The quiz component is rebuilt
// only when the attached quiz actually changed, so selection state survives
// unrelated updates.
func (s *RevealScreen) refresh() {
	s.views = s.mgr.Artifacts()
	if len(s.views) == 0 {
		s.code = ""
		s.currentQuiz = nil
		return
	}
	if s.selected >= len(s.views) {
		s.selected = len(s.views) - 1
	}

	view := s.views[s.selected]
	code, err := s.mgr.GetVisibleCode(view.Slot)
	if err == nil {
		s.code = code
	}

	prevID := ""
	if s.currentQuiz != nil {
		prevID = s.currentQuiz.ID
	}
	s.currentQuiz = view.Quiz
	if s.currentQuiz != nil && s.currentQuiz.ID != prevID {
		s.showHint = false
		if len(s.currentQuiz.Options) > 0 {
			options := make([]string, len(s.currentQuiz.Options))
			correct := 0
			for i, o := range s.currentQuiz.Options {
				options[i] = o.Text
				if o.Label == s.currentQuiz.CorrectLabel {
					correct = i
				}
			}
			s.mc = components.NewMultiChoice(s.currentQuiz.Question, options, correct)
		} else {
			s.input = components.NewTextInput("Type your answer...", 200)
		}
	}
}

func (s *RevealScreen) activeView() *convo.ArtifactView {
	if s.selected < 0 || s.selected >= len(s.views) {
		return nil
	}
	return &s.views[s.selected]
}
