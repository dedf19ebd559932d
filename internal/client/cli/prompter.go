package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

// cancelInput typed alone on a line cancels the current form.
const cancelInput = "."

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// terminalPrompter answers form prompts from the terminal. An empty line
// takes the default shown in brackets.
type terminalPrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func newTerminalPrompter(reader *bufio.Reader, w io.Writer) *terminalPrompter {
	return &terminalPrompter{reader: reader, w: w}
}

func (p *terminalPrompter) Prompt(_ context.Context, f form.Field) (string, bool, error) {
	label := f.Label
	if f.Default != "" && !f.Secret {
		label = fmt.Sprintf("%s [%s]", label, f.Default)
	}

	var value string
	if f.Secret {
		pw, err := getPassword(p.reader, label, p.w)
		if err != nil {
			return cancelled(err)
		}
		value = string(pw)
		common.WipeByteArray(pw)
	} else {
		s, err := getSimpleText(p.reader, label, p.w)
		if err != nil {
			return cancelled(err)
		}
		value = s
	}

	switch value {
	case cancelInput:
		return "", false, nil
	case "":
		return f.Default, true, nil
	}
	return value, true, nil
}

// cancelled treats end of input as a cancelled prompt.
func cancelled(err error) (string, bool, error) {
	if errors.Is(err, io.EOF) {
		return "", false, nil
	}
	return "", false, err
}

func (p *terminalPrompter) Confirm(_ context.Context, message string) (bool, error) {
	s, err := getSimpleText(p.reader, message+" [y/N]", p.w)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
