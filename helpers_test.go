package diagram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func newTestEngine() (PaintEngine, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewTextPaintEngine(buf), buf
}

func newTestDiagramFactory(buf *bytes.Buffer) *DiagramFactory {
	contrastOut := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
	return NewDiagramFactory(
		NewTextPaintEngine(buf),
		NewRegularSubscriber(buf),
		NewContrastSubscriber(contrastOut),
	)
}

func lines(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

type recordingSubscriber struct {
	name     string
	messages *[]string
}

func (s recordingSubscriber) Notify(message string) {
	*s.messages = append(*s.messages, s.name+":"+message)
}

func newRecordingSubscribers(t *testing.T, names ...string) ([]Subscriber, *[]string) {
	t.Helper()
	messages := &[]string{}
	subs := make([]Subscriber, 0, len(names))
	for _, name := range names {
		subs = append(subs, recordingSubscriber{name, messages})
	}
	return subs, messages
}
