package generator

// SampleNames lists the display names records are drawn from.
var SampleNames = []string{
	"Dianne Hall",
	"Harvey Douglas",
	"Elena Waters",
	"Gilbert Morris",
	"Callum Warburton",
	"Sheila Ware",
	"Ethel Chaplin",
	"Godfrey Prescott",
	"Faisal Morris",
	"George Percival",
}

// MaxAge is the exclusive upper bound of generated ages.
const MaxAge = 100
