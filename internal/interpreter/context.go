package interpreter

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Context stores the fleet, where reports go and the logger

type Context struct {
	Fleet  *Fleet
	Out    io.Writer
	Logger *logrus.Entry
}

func NewContext(out io.Writer, logger *logrus.Logger) *Context {
	ctx := &Context{Fleet: NewFleet(), Out: out}
	if logger != nil {
		ctx.Logger = logrus.NewEntry(logger)
	}
	return ctx
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return io.Discard
	}
	return c.Out
}

func (c *Context) logger() *logrus.Entry {
	if c.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		c.Logger = logrus.NewEntry(l)
	}
	return c.Logger
}
