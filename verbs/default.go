package verbs

// Default returns the built-in subject-case table. The accepted sets come
// from standard usage; the erroneous sets list widespread case errors we
// want to accept during matching and flag as E003.
func Default() *Table {
	t := NewTable()

	// hlakka takes a nominative subject ("ég hlakka til"); dative and
	// accusative subjects are common errors.
	t.AddSubject("hlakka", "nf")
	t.AddErrorSubject("hlakka", "þf")
	t.AddErrorSubject("hlakka", "þgf")

	// kvíða takes a nominative subject; dative is a common error.
	t.AddSubject("kvíða", "nf")
	t.AddErrorSubject("kvíða", "þgf")

	// langa is strictly impersonal with an accusative subject
	// ("mig langar"); dative ("mér langar") is a common error.
	t.AddSubject("langa", "þf")
	t.AddErrorSubject("langa", "þgf")
	t.SetStrictlyImpersonal("langa")

	// vanta behaves like langa.
	t.AddSubject("vanta", "þf")
	t.AddErrorSubject("vanta", "þgf")
	t.SetStrictlyImpersonal("vanta")

	// dreyma is strictly impersonal with an accusative subject.
	t.AddSubject("dreyma", "þf")
	t.AddErrorSubject("dreyma", "þgf")
	t.SetStrictlyImpersonal("dreyma")

	// daga ("dagaði uppi") is impersonal with an accusative subject;
	// nominative is registered as a correctable error.
	t.AddSubject("daga", "þf")
	t.AddErrorSubject("daga", "nf")

	// líða takes a dative subject ("mér líður vel").
	t.AddSubject("líða", "þgf")
	t.SetStrictlyImpersonal("líða")

	// finnast takes a dative subject.
	t.AddSubject("finnast", "þgf")

	return t
}
