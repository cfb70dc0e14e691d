package manager

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"recommender/internal/wizard"
)

func bg() context.Context { return context.Background() }

func TestSubmitSuccessHidesForm(t *testing.T) {
	gen := &fakeGenerator{out: "A\nB\nC\nD\nE"}
	m, pub, _ := newTestManager(t, gen)
	id := m.Ensure("").ID
	walkToLastStep(t, m, id)
	snap, err := m.Submit(bg(), id, "Excited")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !snap.State.FormSubmitted || snap.State.IsLoading {
		t.Fatalf("state=%+v", snap.State)
	}
	if snap.State.Listing != "A\nB\nC\nD\nE" {
		t.Fatalf("listing=%q", snap.State.Listing)
	}
	if snap.CanSubmit {
		t.Fatalf("submitted session must not be submittable")
	}
	want := "Suggest me a list of 5 Movies and my favorite ones are Inception If i prefer the genre Sci-Fi. I am in a Excited mood. Give me only the name in a list. Only 5 names in a list"
	if gen.calls() != 1 || gen.prompts[0] != want {
		t.Fatalf("prompts=%q", gen.prompts)
	}
	names := strings.Join(pub.Names(), ",")
	if !strings.HasSuffix(names, "submit_start,submit_ok") {
		t.Fatalf("events=%s", names)
	}
}

func TestSubmitFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	gen := &fakeGenerator{err: errRejected}
	m := NewWithConfig(ManagerConfig{Generator: gen, Logger: &log})
	id := m.Ensure("").ID
	walkToLastStep(t, m, id)
	snap, err := m.Submit(bg(), id, "Happy")
	if err != nil {
		t.Fatalf("failure must be swallowed, got %v", err)
	}
	if snap.State.IsLoading || snap.State.FormSubmitted || snap.State.Listing != "" {
		t.Fatalf("state=%+v", snap.State)
	}
	if !snap.CanSubmit {
		t.Fatalf("form should stay submittable after failure")
	}
	if !strings.Contains(buf.String(), "ValidationException") {
		t.Fatalf("error not logged: %s", buf.String())
	}
	st := m.Status()
	if st.SubmissionsFailed != 1 || st.LastError == "" {
		t.Fatalf("status=%+v", st)
	}

	// retry succeeds once the model recovers
	gen.err, gen.out = nil, "X"
	snap, err = m.Submit(bg(), id, "")
	if err != nil || !snap.State.FormSubmitted || snap.State.Listing != "X" {
		t.Fatalf("retry snap=%+v err=%v", snap.State, err)
	}
}

func TestSubmitPanicIsRecovered(t *testing.T) {
	gen := &fakeGenerator{panicV: "boom"}
	m, pub, _ := newTestManager(t, gen)
	id := m.Ensure("").ID
	walkToLastStep(t, m, id)
	snap, err := m.Submit(bg(), id, "Sad")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.State.IsLoading || snap.State.FormSubmitted {
		t.Fatalf("state=%+v", snap.State)
	}
	ev := pub.Events()
	last := ev[len(ev)-1]
	if last.Name != "submit_failed" || !strings.Contains(last.Fields["error"].(string), "boom") {
		t.Fatalf("last event=%+v", last)
	}
}

func TestSubmitRejectsSecondWhileInFlight(t *testing.T) {
	gen := &fakeGenerator{out: "A", release: make(chan struct{}), started: make(chan struct{}, 1)}
	m, _, _ := newTestManager(t, gen)
	id := m.Ensure("").ID
	walkToLastStep(t, m, id)
	done := make(chan error, 1)
	go func() {
		_, err := m.Submit(bg(), id, "Relaxed")
		done <- err
	}()
	<-gen.started
	snap, err := m.Get(id)
	if err != nil || !snap.State.IsLoading || snap.CanSubmit {
		t.Fatalf("expected loading snapshot, got %+v err=%v", snap, err)
	}
	if m.Status().Inflight != 1 {
		t.Fatalf("inflight=%d", m.Status().Inflight)
	}
	rejected := testutil.ToFloat64(submitRejections.WithLabelValues("in_flight"))
	if _, err := m.Submit(bg(), id, ""); !IsSubmitInFlight(err) {
		t.Fatalf("second submit err=%v", err)
	}
	if got := testutil.ToFloat64(submitRejections.WithLabelValues("in_flight")); got != rejected+1 {
		t.Fatalf("in_flight rejections=%v, want %v", got, rejected+1)
	}
	if _, err := m.Back(id); !IsSubmitInFlight(err) {
		t.Fatalf("back while loading err=%v", err)
	}
	if _, err := m.Advance(id, "Happy"); !IsSubmitInFlight(err) {
		t.Fatalf("advance while loading err=%v", err)
	}
	close(gen.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if gen.calls() != 1 {
		t.Fatalf("calls=%d", gen.calls())
	}
}

func TestSubmitPreconditions(t *testing.T) {
	gen := &fakeGenerator{out: "A"}
	m, _, _ := newTestManager(t, gen)
	id := m.Ensure("").ID
	if _, err := m.Submit(bg(), id, "Happy"); !errors.Is(err, errNotAtLastStep) {
		t.Fatalf("early submit err=%v", err)
	}
	walkToLastStep(t, m, id)
	if _, err := m.Submit(bg(), id, ""); !wizard.IsIncomplete(err) {
		t.Fatalf("missing mood err=%v", err)
	}
	snap, err := m.Submit(bg(), id, "Grumpy")
	if !IsInvalidOption(err) || !IsValidation(err) {
		t.Fatalf("bad mood err=%v", err)
	}
	if snap.State.Mood != "" {
		t.Fatalf("rejected mood stored: %q", snap.State.Mood)
	}
	if _, err := m.Submit(bg(), id, "Happy"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := m.Submit(bg(), id, "Happy"); !errors.Is(err, wizard.ErrFormSubmitted) {
		t.Fatalf("double submit err=%v", err)
	}
	if gen.calls() != 1 {
		t.Fatalf("calls=%d", gen.calls())
	}
}

func TestSubmitWithoutGenerator(t *testing.T) {
	m, _, _ := newTestManager(t, nil)
	id := m.Ensure("").ID
	walkToLastStep(t, m, id)
	snap, err := m.Submit(bg(), id, "Happy")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.State.FormSubmitted || snap.State.IsLoading {
		t.Fatalf("state=%+v", snap.State)
	}
	if m.Status().SubmissionsFailed != 1 {
		t.Fatalf("failure not counted")
	}
}

func TestAdvanceAndBack(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeGenerator{})
	id := m.Ensure("").ID
	if _, err := m.Advance(id, ""); !wizard.IsIncomplete(err) {
		t.Fatalf("empty type err=%v", err)
	}
	if _, err := m.Advance(id, "Podcasts"); !IsInvalidOption(err) {
		t.Fatalf("unknown type err=%v", err)
	}
	snap, err := m.Advance(id, "Anime")
	if err != nil || snap.State.Step != 2 {
		t.Fatalf("snap=%+v err=%v", snap.State, err)
	}
	// favorite is free text
	snap, err = m.Advance(id, "Made in Abyss")
	if err != nil || snap.State.Step != 3 {
		t.Fatalf("snap=%+v err=%v", snap.State, err)
	}
	snap, _ = m.Back(id)
	snap, _ = m.Back(id)
	if snap.State.Step != 1 || snap.State.Favorite != "Made in Abyss" {
		t.Fatalf("back lost values: %+v", snap.State)
	}
	snap, _ = m.Back(id)
	if snap.State.Step != 1 {
		t.Fatalf("step=%d", snap.State.Step)
	}
}

func TestRecommend(t *testing.T) {
	gen := &fakeGenerator{out: "A\nB"}
	m, _, _ := newTestManager(t, gen)
	res, err := m.Recommend(bg(), wizard.Preferences{Type: "Books", Favorite: "Dune", Genre: "Sci-Fi", Mood: "Relaxed"})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if res.Listing != "A\nB" || !strings.HasPrefix(res.Prompt, "Suggest me a list of 5 Books") {
		t.Fatalf("res=%+v", res)
	}

	gen.err = errRejected
	if _, err := m.Recommend(bg(), wizard.Preferences{Type: "Books", Favorite: "Dune", Genre: "Sci-Fi", Mood: "Relaxed"}); !errors.Is(err, errRejected) {
		t.Fatalf("expected model error, got %v", err)
	}
	if _, err := m.Recommend(bg(), wizard.Preferences{Type: "Books", Genre: "Sci-Fi", Mood: "Relaxed"}); !wizard.IsIncomplete(err) {
		t.Fatalf("expected incomplete, got %v", err)
	}
	if _, err := m.Recommend(bg(), wizard.Preferences{Type: "Books", Favorite: "Dune", Genre: "Polka", Mood: "Relaxed"}); !IsInvalidOption(err) {
		t.Fatalf("expected invalid option, got %v", err)
	}
	if gen.calls() != 2 {
		t.Fatalf("calls=%d", gen.calls())
	}

	none, _, _ := newTestManager(t, nil)
	if _, err := none.Recommend(bg(), wizard.Preferences{Type: "Books", Favorite: "Dune", Genre: "Sci-Fi", Mood: "Relaxed"}); !IsGeneratorUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	m := NewWithConfig(ManagerConfig{Generator: &fakeGenerator{}, Logger: &log})
	m.SetPublisher(NewLogPublisher(m))
	m.Ensure("")
	if !strings.Contains(buf.String(), `"event":"session_created"`) {
		t.Fatalf("log=%s", buf.String())
	}
}
