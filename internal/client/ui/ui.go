// Package ui defines what the application needs from whatever displays it:
// pages that can be switched on and off, view models to draw, and short
// notices for the user.
package ui

// NoticeKind classifies a Notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

type Notice struct {
	Kind    NoticeKind
	Message string
}

func Info(msg string) Notice    { return Notice{Kind: NoticeInfo, Message: msg} }
func Success(msg string) Notice { return Notice{Kind: NoticeSuccess, Message: msg} }
func Error(msg string) Notice   { return Notice{Kind: NoticeError, Message: msg} }

// Notifier shows a Notice to the user.
type Notifier interface {
	Notify(n Notice)
}

// Surface is the display. Page names are the slugs used in fragments.
type Surface interface {
	Notifier

	// DeactivateAll hides every page.
	DeactivateAll()
	// Activate shows a single page.
	Activate(page string)
	// Render draws the view model for page.
	Render(page string, model any)
}
