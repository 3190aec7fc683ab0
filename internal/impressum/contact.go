package impressum

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Contact holds the trimmed contact details shown on the page.
type Contact struct {
	Email string
	Phone string
	Name  string
}

// ContactFiles names the files each contact field is read from.
type ContactFiles struct {
	Email string
	Phone string
	Name  string
}

// LoadContact reads and validates all three contact fields.
func LoadContact(files ContactFiles) (*Contact, error) {
	email, err := readField("email", files.Email)
	if err != nil {
		return nil, err
	}
	phone, err := readField("phone", files.Phone)
	if err != nil {
		return nil, err
	}
	name, err := readField("name", files.Name)
	if err != nil {
		return nil, err
	}

	return &Contact{Email: email, Phone: phone, Name: name}, nil
}

// readField returns the trimmed content of path. An unreadable file is an
// input error; an empty result is a validation error.
func readField(field, path string) (string, error) {
	content, err := readText("read "+field, path)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", Wrap(KindValidation, "read "+field, path, ErrEmptyField)
	}
	return trimmed, nil
}

// readText reads path fully and requires it to be UTF-8.
func readText(op, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Wrap(KindInput, op, path, err)
	}
	if !utf8.Valid(data) {
		return "", Wrap(KindInput, op, path, ErrInvalidUTF8)
	}
	return string(data), nil
}

// SplitEmail splits email at its first '@'.
func SplitEmail(email string) (user, domain string, err error) {
	user, domain, found := strings.Cut(email, "@")
	if !found {
		return "", "", Wrap(KindValidation, "split email", "", ErrMissingAt)
	}
	return user, domain, nil
}

// Reverse returns s with its characters in reverse order.
// It reverses runes, not bytes, so multi-byte text stays intact.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
