package form

import (
	"context"
	"errors"
)

// ErrScriptExhausted is returned by Scripted when it runs out of answers.
var ErrScriptExhausted = errors.New("no scripted answer left")

// Cancel is the scripted answer that cancels a prompt.
const Cancel = "\x00cancel"

// Scripted is a Prompter that replays fixed answers. An empty answer
// accepts the field default. It records every field and confirmation it
// was asked.
type Scripted struct {
	Answers  []string
	Confirms []bool

	Asked     []Field
	Confirmed []string
}

func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

// WithConfirms appends yes/no answers.
func (s *Scripted) WithConfirms(answers ...bool) *Scripted {
	s.Confirms = append(s.Confirms, answers...)
	return s
}

func (s *Scripted) Prompt(_ context.Context, f Field) (string, bool, error) {
	s.Asked = append(s.Asked, f)
	if len(s.Answers) == 0 {
		return "", false, ErrScriptExhausted
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]

	switch a {
	case Cancel:
		return "", false, nil
	case "":
		return f.Default, true, nil
	}
	return a, true, nil
}

func (s *Scripted) Confirm(_ context.Context, message string) (bool, error) {
	s.Confirmed = append(s.Confirmed, message)
	if len(s.Confirms) == 0 {
		return false, ErrScriptExhausted
	}
	c := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return c, nil
}
