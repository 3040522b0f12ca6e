// Package contacts provides the in-memory name-to-email lookup used when
// resolving attendee and recipient references like "send it to Sarah".
package contacts

import "strings"

// Contact is a display-name/email pair.
type Contact struct {
	Name  string `json:"name" koanf:"name"`
	Email string `json:"email" koanf:"email"`
}

// Book is an append-only, process-lifetime contact list. Lookup is a
// case-insensitive substring match over display names; the first match in
// insertion order wins, with no disambiguation of ambiguous fragments.
//
// The list is populated once at startup and treated as read-mostly; Add is
// not safe for concurrent use with Resolve.
type Book struct {
	contacts []Contact
}

// NewBook returns a Book seeded with the given contacts, in order.
func NewBook(seed []Contact) *Book {
	b := &Book{}
	for _, c := range seed {
		b.Add(c.Name, c.Email)
	}
	return b
}

// Add appends a contact. Duplicate names are allowed.
func (b *Book) Add(name, email string) {
	b.contacts = append(b.contacts, Contact{Name: name, Email: email})
}

// Resolve returns the email of the first contact whose display name
// contains fragment, case-insensitively.
func (b *Book) Resolve(fragment string) (string, bool) {
	needle := strings.ToLower(fragment)
	for _, c := range b.contacts {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c.Email, true
		}
	}
	return "", false
}

// All returns the stored contacts in insertion order.
func (b *Book) All() []Contact {
	return b.contacts
}
