package verbs

import (
	"sort"
	"strings"
)

// RestrictiveVariants are the morphological variants that must be present
// in the verb form whenever they are present in the terminal. They
// override the relaxed matching otherwise applied to impersonal verbs.
var RestrictiveVariants = []string{"sagnb", "lhþt", "bh"}

// Table maps verb lemmas to their subject-case behavior. The accepted set
// holds the subject cases a verb takes in correct usage; the erroneous set
// holds cases that are known wrong but common enough that we accept the
// match and flag it downstream instead of rejecting the parse outright.
type Table struct {
	accepted map[string]map[string]bool
	errors   map[string]map[string]bool

	// strictly impersonal verbs never take a nominative subject
	strict map[string]bool
}

// NewTable returns an empty subject-case table.
func NewTable() *Table {
	return &Table{
		accepted: make(map[string]map[string]bool),
		errors:   make(map[string]map[string]bool),
		strict:   make(map[string]bool),
	}
}

// AddSubject registers an accepted subject case for a verb.
func (t *Table) AddSubject(verb, subjCase string) {
	if t.accepted[verb] == nil {
		t.accepted[verb] = make(map[string]bool)
	}
	t.accepted[verb][subjCase] = true
}

// AddErrorSubject registers a known-erroneous subject case for a verb.
func (t *Table) AddErrorSubject(verb, subjCase string) {
	if t.errors[verb] == nil {
		t.errors[verb] = make(map[string]bool)
	}
	t.errors[verb][subjCase] = true
}

// SetStrictlyImpersonal marks a verb as strictly impersonal.
func (t *Table) SetStrictlyImpersonal(verb string) {
	t.strict[verb] = true
}

// IsStrictlyImpersonal reports whether the verb is registered as
// strictly impersonal.
func (t *Table) IsStrictlyImpersonal(verb string) bool {
	return t.strict[verb]
}

// HasErrorSubject reports whether any erroneous subject case is
// registered for the verb.
func (t *Table) HasErrorSubject(verb string) bool {
	return len(t.errors[verb]) > 0
}

// IsErrorSubject reports whether the given subject case is registered as
// erroneous for the verb.
func (t *Table) IsErrorSubject(verb, subjCase string) bool {
	return t.errors[verb][subjCase]
}

// AcceptedSubjects returns the accepted subject cases for the verb,
// sorted.
func (t *Table) AcceptedSubjects(verb string) []string {
	cases := make([]string, 0, len(t.accepted[verb]))
	for c := range t.accepted[verb] {
		cases = append(cases, c)
	}
	sort.Strings(cases)
	return cases
}

// SubjectMatches reports whether the subject case is allowed for the verb
// or is a known-erroneous case that can be flagged downstream. No
// normalization is applied to either argument.
func (t *Table) SubjectMatches(verb, subjCase string) bool {
	return t.accepted[verb][subjCase] || t.errors[verb][subjCase]
}

// StrictlyImpersonal reports whether the verb form must not match a
// normal (non-impersonal) terminal. Forms carrying the impersonal marker
// are excluded, except when the verb is registered strictly impersonal
// or carries an erroneous-subject registration: those matches proceed so
// that the nominative misuse can be flagged instead of blocked.
func (t *Table) StrictlyImpersonal(verb, form string) bool {
	if !strings.Contains(form, "OP") {
		return false
	}
	if t.IsStrictlyImpersonal(verb) {
		return false
	}
	return !t.HasErrorSubject(verb)
}

// CannotBeImpersonal reports whether the verb form is excluded from
// impersonal-error detection. Imperative, infinitive and plural forms are
// linguistically implausible as impersonal errors.
func CannotBeImpersonal(verb, form string) bool {
	for _, f := range []string{"BH", "NH", "FT"} {
		if strings.Contains(form, f) {
			return true
		}
	}
	return false
}
