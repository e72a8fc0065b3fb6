package diagram

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Subscriber receives text notifications from elements.
type Subscriber interface {
	Notify(message string)
}

type regularSubscriber struct {
	w io.Writer
}

// NewRegularSubscriber creates a subscriber printing notifications to w.
func NewRegularSubscriber(w io.Writer) Subscriber {
	return &regularSubscriber{w}
}

func (s *regularSubscriber) Notify(message string) {
	fmt.Fprintf(s.w, "[Regular Subscriber] %s\n", message)
}

type contrastSubscriber struct {
	out *termenv.Output
}

// NewContrastSubscriber creates a subscriber printing notifications in
// reverse video. Terminals without color support get plain text.
func NewContrastSubscriber(out *termenv.Output) Subscriber {
	return &contrastSubscriber{out}
}

func (s *contrastSubscriber) Notify(message string) {
	line := s.out.String("[Contrast Image Subscriber] " + message).Reverse()
	fmt.Fprintln(s.out, line.String())
}

// Subscribers is an ordered list of subscribers.
// The zero value is an empty list ready to use.
type Subscribers struct {
	list []Subscriber
}

// Attach appends sub. The same subscriber may be attached more than once.
func (s *Subscribers) Attach(sub Subscriber) {
	s.list = append(s.list, sub)
}

// Notify delivers message to every subscriber in registration order.
func (s *Subscribers) Notify(message string) {
	for _, sub := range s.list {
		sub.Notify(message)
	}
}

// Len returns the number of attached subscribers.
func (s *Subscribers) Len() int {
	return len(s.list)
}
