// Package testbed provides small applications for exercising the testing
// framework.
package testbed

import (
	"fmt"

	"github.com/go-drift/vessel/pkg/app"
	"github.com/go-drift/vessel/pkg/view"
)

// MsgKind distinguishes testbed messages.
type MsgKind uint8

const (
	Increment MsgKind = iota
	Decrement
	Grow
	Grown
	Finished
	Rename
)

// Msg is the message type of every testbed application.
type Msg struct {
	Kind  MsgKind
	Value float64
	Text  string
}

// Counter displays a count with buttons to change it.
type Counter struct {
	Count   int
	Title   string
	Updates []Msg
}

func (c *Counter) View() view.View {
	title := c.Title
	if title == "" {
		title = "counter"
	}
	return view.DecoratedWindow(title, view.Column(
		view.Str(fmt.Sprintf("count %d", c.Count)),
		view.Row(
			view.Label(Msg{Kind: Decrement}, "-"),
			view.Label(Msg{Kind: Increment}, "+"),
		),
	))
}

func (c *Counter) Update(msg Msg) []app.Effect {
	c.Updates = append(c.Updates, msg)
	switch msg.Kind {
	case Increment:
		c.Count++
	case Decrement:
		c.Count--
	case Rename:
		c.Title = msg.Text
	}
	return nil
}
