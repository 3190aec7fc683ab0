package impressum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullTemplate = `<section class="impressum">
<p><span class="rev">__NAME_REV__</span><noscript>__NAME_NOSCRIPT__</noscript></p>
<p><span class="rev">__EMAIL_DOMAIN_REV__</span><span class="rev">@</span><span class="rev">__EMAIL_USER_REV__</span>
<noscript>__EMAIL_NOSCRIPT__</noscript></p>
<p><span class="rev">__PHONE_REV__</span><noscript>__PHONE_NOSCRIPT__</noscript></p>
</section>
`

func janeDoe() *Contact {
	return &Contact{
		Email: "jane.doe@example.com",
		Phone: "+1 555 123 4567",
		Name:  "Jane Doe",
	}
}

func TestReplacements(t *testing.T) {
	t.Parallel()

	reps, err := janeDoe().Replacements()
	require.NoError(t, err)

	want := []Replacement{
		{TokenEmailUserRev, "eod.enaj"},
		{TokenEmailDomainRev, "moc.elpmaxe"},
		{TokenEmailNoscript, "jane.doe@example.com"},
		{TokenPhoneRev, "7654 321 555 1+"},
		{TokenPhoneNoscript, "+1 555 123 4567"},
		{TokenNameRev, "eoD enaJ"},
		{TokenNameNoscript, "Jane Doe"},
	}
	assert.Equal(t, want, reps)
}

func TestReplacements_MissingAt(t *testing.T) {
	t.Parallel()

	c := janeDoe()
	c.Email = "jane.doe"

	_, err := c.Replacements()
	assert.ErrorIs(t, err, ErrMissingAt)
}

func TestMissingTokens(t *testing.T) {
	t.Parallel()

	assert.Empty(t, MissingTokens(fullTemplate))
	assert.Equal(t, Tokens, MissingTokens("<p>nothing here</p>"))

	partial := strings.ReplaceAll(fullTemplate, TokenPhoneNoscript, "")
	assert.Equal(t, []string{TokenPhoneNoscript}, MissingTokens(partial))
}

func TestRender_JaneDoe(t *testing.T) {
	t.Parallel()

	reps, err := janeDoe().Replacements()
	require.NoError(t, err)

	got := Render(fullTemplate, reps)

	want := `<section class="impressum">
<p><span class="rev">eoD enaJ</span><noscript>Jane Doe</noscript></p>
<p><span class="rev">moc.elpmaxe</span><span class="rev">@</span><span class="rev">eod.enaj</span>
<noscript>jane.doe@example.com</noscript></p>
<p><span class="rev">7654 321 555 1+</span><noscript>+1 555 123 4567</noscript></p>
</section>
`
	assert.Equal(t, want, got)
	for _, token := range Tokens {
		assert.NotContains(t, got, token)
	}
}

func TestRender_AllOccurrences(t *testing.T) {
	t.Parallel()

	reps, err := janeDoe().Replacements()
	require.NoError(t, err)

	got := Render("__NAME_NOSCRIPT__ / __NAME_NOSCRIPT__ / __NAME_NOSCRIPT__", reps)
	assert.Equal(t, "Jane Doe / Jane Doe / Jane Doe", got)
}

func TestRender_SinglePass(t *testing.T) {
	t.Parallel()

	// A value containing another token must not be substituted again.
	c := &Contact{
		Email: "x@y",
		Phone: "__NAME_REV__",
		Name:  "Bob",
	}
	reps, err := c.Replacements()
	require.NoError(t, err)

	got := Render("[__PHONE_NOSCRIPT__][__NAME_REV__]", reps)
	assert.Equal(t, "[__NAME_REV__][boB]", got)
}

func TestRender_PassesThroughOtherText(t *testing.T) {
	t.Parallel()

	reps, err := janeDoe().Replacements()
	require.NoError(t, err)

	tmpl := "<p>__UNKNOWN__ __EMAIL_ and _NAME_REV__</p>"
	assert.Equal(t, tmpl, Render(tmpl, reps))
}
