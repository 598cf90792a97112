package etdoc

// NumberMode dictates how fractional numbers are decoded.
type NumberMode int

const (
	NumberFloat64 NumberMode = iota // float64 (with potential precision loss).
	NumberDecimal                   // *apd.Decimal, exact.
)

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Numbers NumberMode
}

func lastDecodeOpt(opts []DecodeOpt) DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
