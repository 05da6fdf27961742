package contacts

import (
	"fmt"
	"strings"
)

// Router dispatches one tokenized input line to an operation on its Book.
// The command word is matched case-insensitively; arguments are taken
// verbatim, so contact names are case-sensitive.
type Router struct {
	book *Book
}

// NewRouter returns a Router operating on the given book.
func NewRouter(book *Book) *Router {
	return &Router{book: book}
}

// Handle processes a single input line. It returns the response to print
// and whether the session should terminate.
func (r *Router) Handle(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "Please enter a command.", false
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "close", "exit":
		return "Good bye!", true
	case "hello":
		return "How can I help you?", false
	case "add":
		return r.add(args), false
	case "change":
		return r.change(args), false
	case "phone":
		return r.phone(args), false
	case "all":
		return r.all(), false
	default:
		return "Invalid command.", false
	}
}

func (r *Router) add(args []string) string {
	if len(args) != 2 {
		return "Invalid command format. Use: add [name] [phone]"
	}
	r.book.Add(args[0], args[1])
	return "Contact added."
}

func (r *Router) change(args []string) string {
	if len(args) != 2 {
		return "Invalid command format. Use: change [name] [new phone]"
	}
	if !r.book.Change(args[0], args[1]) {
		return fmt.Sprintf("Contact '%s' not found.", args[0])
	}
	return "Contact updated."
}

func (r *Router) phone(args []string) string {
	if len(args) != 1 {
		return "Invalid command format. Use: phone [name]"
	}
	phone, ok := r.book.Phone(args[0])
	if !ok {
		return fmt.Sprintf("Contact '%s' not found.", args[0])
	}
	return phone
}

func (r *Router) all() string {
	contacts := r.book.All()
	if len(contacts) == 0 {
		return "No contacts found."
	}
	lines := []string{"Contacts list:"}
	for _, c := range contacts {
		lines = append(lines, fmt.Sprintf("%s: %s", c.Name, c.Phone))
	}
	return strings.Join(lines, "\n")
}
