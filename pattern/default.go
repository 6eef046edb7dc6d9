package pattern

// Default returns the built-in pattern rules for questionable but
// parseable constructions.
func Default() *Matcher {
	return NewMatcher([]Rule{
		{
			Code: "P001",
			Text: "Óþarft framvinduhorf ('vera að' + nafnháttur)",
			Expr: Expr{
				{Lemma: "vera"},
				{Near: 2, Cat: "so", Tag: "NH"},
			},
		},
		{
			Code: "P002",
			Text: "Óþörf notkun 'fara að' + nafnháttur",
			Expr: Expr{
				{Lemma: "fara"},
				{Near: 2, Cat: "so", Tag: "NH"},
			},
		},
	})
}
