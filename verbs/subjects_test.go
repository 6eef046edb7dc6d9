package verbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectMatchesAcceptedAndErroneous(t *testing.T) {
	tbl := Default()

	assert.True(t, tbl.SubjectMatches("hlakka", "nf"))
	assert.True(t, tbl.SubjectMatches("hlakka", "þf"))
	assert.True(t, tbl.SubjectMatches("hlakka", "þgf"))
	assert.False(t, tbl.SubjectMatches("hlakka", "ef"))

	assert.True(t, tbl.SubjectMatches("langa", "þf"))
	assert.True(t, tbl.SubjectMatches("langa", "þgf"))
	assert.False(t, tbl.SubjectMatches("langa", "nf"))

	// unknown verbs match nothing
	assert.False(t, tbl.SubjectMatches("borða", "nf"))
}

func TestIsErrorSubject(t *testing.T) {
	tbl := Default()

	assert.True(t, tbl.IsErrorSubject("hlakka", "þgf"))
	assert.True(t, tbl.IsErrorSubject("daga", "nf"))
	assert.False(t, tbl.IsErrorSubject("hlakka", "nf"))
	assert.False(t, tbl.IsErrorSubject("líða", "þgf"))
}

func TestAcceptedSubjectsSorted(t *testing.T) {
	tbl := NewTable()
	tbl.AddSubject("x", "þf")
	tbl.AddSubject("x", "nf")
	tbl.AddSubject("x", "ef")

	require.Equal(t, []string{"ef", "nf", "þf"}, tbl.AcceptedSubjects("x"))
	assert.Empty(t, tbl.AcceptedSubjects("y"))
}

func TestStrictlyImpersonal(t *testing.T) {
	tbl := Default()

	// non-impersonal forms are never excluded
	assert.False(t, tbl.StrictlyImpersonal("hlakka", "GM-FH-NT-ET-1P"))

	// registered strictly impersonal verbs match normal terminals so
	// the nominative misuse is flagged downstream
	assert.False(t, tbl.StrictlyImpersonal("langa", "GM-FH-NT-ET-3P-OP"))
	assert.False(t, tbl.StrictlyImpersonal("vanta", "GM-FH-NT-ET-3P-OP"))

	// daga has a registered erroneous nominative, same outcome
	assert.False(t, tbl.StrictlyImpersonal("daga", "GM-FH-ÞT-ET-3P-OP"))

	// unregistered impersonal forms are excluded outright
	assert.True(t, tbl.StrictlyImpersonal("rigna", "GM-FH-NT-ET-3P-OP"))
}

func TestCannotBeImpersonal(t *testing.T) {
	assert.True(t, CannotBeImpersonal("koma", "GM-BH-ET-2P"))
	assert.True(t, CannotBeImpersonal("hlaupa", "GM-NH"))
	assert.True(t, CannotBeImpersonal("hlakka", "GM-FH-NT-FT-1P"))
	assert.True(t, CannotBeImpersonal("koma", "GM-BH-FT-2P"))
	assert.False(t, CannotBeImpersonal("hlakka", "GM-FH-NT-ET-3P"))
	assert.False(t, CannotBeImpersonal("langa", "GM-FH-NT-ET-3P-OP"))
}
