package core

import "strconv"

// All water quantities are integer centi-pints: 100 centi-pints = 1 pint.
// Fixed-point arithmetic keeps decay and leak computation bit-exact.
const CentiPerPint int64 = 100

// MaxCapacity is the saturating sentinel used for the "max" spelling of
// bucket capacity and fill volume, in centi-pints.
const MaxCapacity int64 = 1<<32 - 1

// PintsToCenti converts whole pints to centi-pints.
func PintsToCenti(pints int64) int64 {
	return pints * CentiPerPint
}

// FormatPints renders a centi-pint amount as pints for output: whole
// amounts print without a fractional part ("10"), others with one ("10.5").
func FormatPints(centi int64) string {
	if centi%CentiPerPint == 0 {
		return strconv.FormatInt(centi/CentiPerPint, 10)
	}
	return strconv.FormatFloat(float64(centi)/float64(CentiPerPint), 'f', -1, 64)
}
