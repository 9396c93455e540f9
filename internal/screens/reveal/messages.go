package reveal

import "github.com/dkasab/unveil/internal/quiz"

// StateChangedMsg is sent by the app whenever the session manager reports a
// state change, so the screen re-reads the read model.
type StateChangedMsg struct{}

// gradeResultMsg is sent when an answer submission completes.
type gradeResultMsg struct {
	Result *quiz.GradeResult
	Err    error
}

// skipDoneMsg is sent when a skip request completes.
type skipDoneMsg struct {
	Err error
}

// regenerateDoneMsg is sent when a quiz regeneration request was accepted.
type regenerateDoneMsg struct {
	Err error
}
