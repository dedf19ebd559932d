// Package form collects multi-field input from a Prompter.
//
// A form either completes with every field filled or ends as Partial. An
// empty or cancelled answer to any field ends the whole form, so a field can
// never be cleared to an empty value through a form.
package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

// Field is one prompt. Default is offered as the pre-filled answer.
type Field struct {
	Key     string
	Label   string
	Default string
	Secret  bool
}

// Prompter asks the user for input.
//
// Prompt returns ok=false when the user cancels. Confirm returns the yes/no
// answer. Both block until the user answers.
type Prompter interface {
	Prompt(ctx context.Context, f Field) (value string, ok bool, err error)
	Confirm(ctx context.Context, message string) (bool, error)
}

type Outcome int

const (
	Complete Outcome = iota
	Partial
)

func (o Outcome) String() string {
	if o == Partial {
		return "partial"
	}
	return "complete"
}

// Values maps Field.Key to the answer.
type Values map[string]string

func (v Values) Get(key string) string {
	return v[key]
}

// Int64 parses the answer for key as a decimal integer.
func (v Values) Int64(key string) (int64, error) {
	s := strings.TrimSpace(v[key])
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number: %q", common.ErrValidation, key, s)
	}
	return n, nil
}

type Result struct {
	Outcome Outcome
	Values  Values
	// Missing is the key of the field that ended a Partial form.
	Missing string
}

// Err is common.ErrPartialInput for a Partial result and nil otherwise.
func (r Result) Err() error {
	if r.Outcome == Partial {
		return fmt.Errorf("%w: %s", common.ErrPartialInput, r.Missing)
	}
	return nil
}

// Collect prompts for fields in order and stops at the first empty or
// cancelled answer. An error is returned only when the Prompter fails.
func Collect(ctx context.Context, p Prompter, fields ...Field) (Result, error) {
	values := make(Values, len(fields))
	for _, f := range fields {
		v, ok, err := p.Prompt(ctx, f)
		if err != nil {
			return Result{}, fmt.Errorf("prompt %s: %w", f.Key, err)
		}
		if !ok || v == "" {
			return Result{Outcome: Partial, Values: values, Missing: f.Key}, nil
		}
		values[f.Key] = v
	}
	return Result{Outcome: Complete, Values: values}, nil
}

// Submit collects fields and hands a complete set of values to onSubmit.
// A Partial form returns common.ErrPartialInput and never calls onSubmit.
func Submit(ctx context.Context, p Prompter, fields []Field, onSubmit func(ctx context.Context, v Values) error) error {
	res, err := Collect(ctx, p, fields...)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	return onSubmit(ctx, res.Values)
}
