package slownie

// Form is the grammatical number a scale word takes after a count.
type Form int

// Forms in the order the scale word triples store them.
const (
	FormOne  Form = iota // tysiąc
	FormFew              // tysiące
	FormMany             // tysięcy
)

// String returns the CLDR plural category name for the form.
func (f Form) String() string {
	switch f {
	case FormOne:
		return "one"
	case FormFew:
		return "few"
	case FormMany:
		return "many"
	default:
		return "unknown"
	}
}

// FormFor selects the scale word form for count.
//
// A count of exactly 1 is singular. Counts ending in 2, 3 or 4 take the paucal
// form unless their last two digits are 12, 13 or 14. Everything else, including
// 0 and the whole 11-19 band, takes the genitive plural.
func FormFor(count uint64) Form {
	if count == 1 {
		return FormOne
	}
	lastTwo := count % 100
	if lastTwo >= 12 && lastTwo <= 14 {
		return FormMany
	}
	if last := count % 10; last >= 2 && last <= 4 {
		return FormFew
	}
	return FormMany
}
