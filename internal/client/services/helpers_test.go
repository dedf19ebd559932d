package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/client/session"
	"github.com/dmitrijs2005/staffkeeper/internal/client/storage"
	"github.com/dmitrijs2005/staffkeeper/internal/client/store"
	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fake navigator ----

type fakeNavigator struct {
	navigated []string
	refreshed []router.Page
}

func (f *fakeNavigator) Navigate(fragment string) { f.navigated = append(f.navigated, fragment) }

func (f *fakeNavigator) Refresh(_ context.Context, page router.Page) {
	f.refreshed = append(f.refreshed, page)
}

func (f *fakeNavigator) last() string {
	if len(f.navigated) == 0 {
		return ""
	}
	return f.navigated[len(f.navigated)-1]
}

// ---- harness ----

type harness struct {
	deps     *Deps
	storage  *storage.MemoryStorage
	store    *store.Store
	session  *session.Session
	nav      *fakeNavigator
	surface  *ui.Recorder
	prompter *form.Scripted
}

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newHarness(t *testing.T) *harness {
	t.Helper()
	mem := storage.NewMemoryStorage(0)
	st := store.New(mem, logging.Discard(), store.WithClock(func() time.Time { return testNow }))
	require.NoError(t, st.Load(context.Background()))

	h := &harness{
		storage:  mem,
		store:    st,
		session:  session.New(),
		nav:      &fakeNavigator{},
		surface:  ui.NewRecorder(),
		prompter: form.NewScripted(),
	}
	h.deps = &Deps{
		Store:    st,
		Session:  h.session,
		Router:   h.nav,
		Notifier: h.surface,
		Prompter: h.prompter,
		Logger:   logging.Discard(),
	}
	return h
}

// script replaces the prompter answers.
func (h *harness) script(answers ...string) *form.Scripted {
	h.prompter.Answers = answers
	return h.prompter
}

func (h *harness) signInAdmin() models.Account {
	acc, _ := h.store.AccountByID(1).Get()
	h.session.SetAuthState(true, &acc)
	return acc
}

func (h *harness) stored(t *testing.T, key string) (string, bool) {
	t.Helper()
	v, ok, err := h.storage.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

// breakStorage makes every later Save fail on quota.
func (h *harness) breakStorage() {
	*h.storage = *storage.NewMemoryStorage(1)
}
