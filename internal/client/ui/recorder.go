package ui

// Recorder is a Surface that keeps everything it is asked to display.
// It backs tests and headless runs.
type Recorder struct {
	Active   string
	Notices  []Notice
	Rendered map[string]any
	Renders  []string
}

func NewRecorder() *Recorder {
	return &Recorder{Rendered: make(map[string]any)}
}

func (r *Recorder) DeactivateAll() { r.Active = "" }

func (r *Recorder) Activate(page string) { r.Active = page }

func (r *Recorder) Render(page string, model any) {
	r.Rendered[page] = model
	r.Renders = append(r.Renders, page)
}

func (r *Recorder) Notify(n Notice) { r.Notices = append(r.Notices, n) }

// LastNotice returns the most recent notice, or a zero Notice.
func (r *Recorder) LastNotice() Notice {
	if len(r.Notices) == 0 {
		return Notice{}
	}
	return r.Notices[len(r.Notices)-1]
}

// Reset forgets recorded notices and renders but keeps the active page.
func (r *Recorder) Reset() {
	r.Notices = nil
	r.Renders = nil
	r.Rendered = make(map[string]any)
}
