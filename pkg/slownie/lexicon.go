package slownie

const (
	zeroWord  = "zero"
	minusWord = "minus"
)

var units = [20]string{
	"zero", "jeden", "dwa", "trzy", "cztery",
	"pięć", "sześć", "siedem", "osiem", "dziewięć",
	"dziesięć", "jedenaście", "dwanaście", "trzynaście", "czternaście",
	"piętnaście", "szesnaście", "siedemnaście", "osiemnaście", "dziewiętnaście",
}

// tens[1] is never read: 10-19 come from units.
var tens = [10]string{
	"", "dziesięć", "dwadzieścia", "trzydzieści", "czterdzieści",
	"pięćdziesiąt", "sześćdziesiąt", "siedemdziesiąt", "osiemdziesiąt", "dziewięćdziesiąt",
}

var hundreds = [10]string{
	"", "sto", "dwieście", "trzysta", "czterysta",
	"pięćset", "sześćset", "siedemset", "osiemset", "dziewięćset",
}

// Scale words indexed by Form.
var (
	thousandForms = [3]string{"tysiąc", "tysiące", "tysięcy"}
	millionForms  = [3]string{"milion", "miliony", "milionów"}
	miliardForms  = [3]string{"miliard", "miliardy", "miliardów"}
	bilionForms   = [3]string{"bilion", "biliony", "bilionów"}
	biliardForms  = [3]string{"biliard", "biliardy", "biliardów"}
	trylionForms  = [3]string{"trylion", "tryliony", "trylionów"}
)

// scale is one step of the descending decomposition. The unit scale has no forms.
type scale struct {
	divisor uint64
	forms   *[3]string
}

// scales is ordered from the largest divisor down to 1. The top scale keeps every
// per-scale count of a uint64 magnitude at or below 18, so counts always fit under 1000.
var scales = []scale{
	{divisor: 1_000_000_000_000_000_000, forms: &trylionForms},
	{divisor: 1_000_000_000_000_000, forms: &biliardForms},
	{divisor: 1_000_000_000_000, forms: &bilionForms},
	{divisor: 1_000_000_000, forms: &miliardForms},
	{divisor: 1_000_000, forms: &millionForms},
	{divisor: 1_000, forms: &thousandForms},
	{divisor: 1},
}
