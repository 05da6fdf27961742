package contacts

// Contact is one name/phone pair.
type Contact struct {
	Name  string
	Phone string
}

// Book holds the contacts for a single session. There is no persistence:
// the book lives and dies with the interactive loop that owns it.
// Insertion order is preserved so listings are deterministic.
type Book struct {
	phones map[string]string
	order  []string
}

// NewBook returns an empty contact book.
func NewBook() *Book {
	return &Book{phones: make(map[string]string)}
}

// Add stores a contact, overwriting the phone if the name already exists.
func (b *Book) Add(name, phone string) {
	if _, ok := b.phones[name]; !ok {
		b.order = append(b.order, name)
	}
	b.phones[name] = phone
}

// Change updates an existing contact's phone. It reports false when the
// name is unknown.
func (b *Book) Change(name, phone string) bool {
	if _, ok := b.phones[name]; !ok {
		return false
	}
	b.phones[name] = phone
	return true
}

// Phone looks up a contact's phone by name.
func (b *Book) Phone(name string) (string, bool) {
	phone, ok := b.phones[name]
	return phone, ok
}

// All returns every contact in insertion order.
func (b *Book) All() []Contact {
	all := make([]Contact, 0, len(b.order))
	for _, name := range b.order {
		all = append(all, Contact{Name: name, Phone: b.phones[name]})
	}
	return all
}
