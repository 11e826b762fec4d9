package population

import "workforce-engine/internal/model"

// LexiconSize is the number of names and of surnames kept per gender.
const LexiconSize = 10

// Lexicon holds the names available to one gender. Arrays keep the tables
// read-only for callers: a returned Lexicon is a copy.
type Lexicon struct {
	Names    [LexiconSize]string
	Surnames [LexiconSize]string
}

// Female surnames are separate entries, not suffixed male ones
// (Outrata -> Outratová, Pokorný -> Pokorná).
var lexicons = map[model.Gender]Lexicon{
	model.GenderMale: {
		Names: [LexiconSize]string{
			"Jan", "Petr", "Lukáš", "Tomáš", "Jiří", "Martin", "Karel", "Ondřej", "Václav", "Marek",
		},
		Surnames: [LexiconSize]string{
			"Novák", "Svoboda", "Dvořák", "Černý", "Procházka", "Kučera", "Outrata", "Pokorný", "Král", "Sedláček",
		},
	},
	model.GenderFemale: {
		Names: [LexiconSize]string{
			"Jana", "Petra", "Lucie", "Tereza", "Eva", "Marie", "Hana", "Alena", "Veronika", "Kateřina",
		},
		Surnames: [LexiconSize]string{
			"Nováková", "Svobodová", "Dvořáková", "Černá", "Procházková", "Kučerová", "Outratová", "Pokorná", "Králová", "Sedláčková",
		},
	},
}

// LexiconFor returns the name tables for g. The second result is false for
// a gender outside the enum.
func LexiconFor(g model.Gender) (Lexicon, bool) {
	l, ok := lexicons[g]
	return l, ok
}
