package impressum

import "strings"

// Template placeholders.
const (
	TokenEmailUserRev   = "__EMAIL_USER_REV__"
	TokenEmailDomainRev = "__EMAIL_DOMAIN_REV__"
	TokenEmailNoscript  = "__EMAIL_NOSCRIPT__"
	TokenPhoneRev       = "__PHONE_REV__"
	TokenPhoneNoscript  = "__PHONE_NOSCRIPT__"
	TokenNameRev        = "__NAME_REV__"
	TokenNameNoscript   = "__NAME_NOSCRIPT__"
)

// Tokens lists every recognized placeholder in substitution order.
var Tokens = []string{
	TokenEmailUserRev,
	TokenEmailDomainRev,
	TokenEmailNoscript,
	TokenPhoneRev,
	TokenPhoneNoscript,
	TokenNameRev,
	TokenNameNoscript,
}

// Replacement pairs a placeholder with its value.
type Replacement struct {
	Token string
	Value string
}

// Replacements derives the value of every placeholder from c.
// The template is expected to display the reversed forms in reading order
// with CSS (direction: rtl; unicode-bidi: bidi-override).
func (c *Contact) Replacements() ([]Replacement, error) {
	user, domain, err := SplitEmail(c.Email)
	if err != nil {
		return nil, err
	}

	return []Replacement{
		{TokenEmailUserRev, Reverse(user)},
		{TokenEmailDomainRev, Reverse(domain)},
		{TokenEmailNoscript, c.Email},
		{TokenPhoneRev, Reverse(c.Phone)},
		{TokenPhoneNoscript, c.Phone},
		{TokenNameRev, Reverse(c.Name)},
		{TokenNameNoscript, c.Name},
	}, nil
}

// MissingTokens returns the recognized placeholders absent from tmpl.
func MissingTokens(tmpl string) []string {
	var missing []string
	for _, token := range Tokens {
		if !strings.Contains(tmpl, token) {
			missing = append(missing, token)
		}
	}
	return missing
}

// Render substitutes every occurrence of each token in a single pass.
// Substituted values are never rescanned, so a value that happens to
// contain a token is emitted verbatim.
func Render(tmpl string, reps []Replacement) string {
	oldnew := make([]string, 0, len(reps)*2)
	for _, r := range reps {
		oldnew = append(oldnew, r.Token, r.Value)
	}
	return strings.NewReplacer(oldnew...).Replace(tmpl)
}
