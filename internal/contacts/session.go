package contacts

import (
	"bufio"
	"fmt"
	"io"
)

// Session is one synchronous request/response loop over a contact book.
// Each session owns a fresh Book; nothing survives past Run returning.
type Session struct {
	in     io.Reader
	out    io.Writer
	router *Router
}

// NewSession creates a session reading commands from in and writing
// responses to out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		in:     in,
		out:    out,
		router: NewRouter(NewBook()),
	}
}

// Run drives the loop until a close/exit command or end of input.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Welcome to the assistant bot!")

	sc := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "Enter a command: ")
		if !sc.Scan() {
			break
		}

		reply, done := s.router.Handle(sc.Text())
		fmt.Fprintln(s.out, reply)
		if done {
			return nil
		}
	}
	return sc.Err()
}
