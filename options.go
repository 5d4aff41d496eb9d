package tint

import (
	"github.com/gogpu/tint/codec"
	"github.com/gogpu/tint/pymath"
)

// NumericPolicy defines channel-level division, modulo, power and rounding
// for list arithmetic. [pymath.Python] is the default; [pymath.IEEE] trades
// the errors for plain float results.
//
// The policy belongs to a List. Operations on a single Color, including
// Color.Hash, always use Python semantics.
type NumericPolicy interface {
	Round(v float64, digits int) float64
	TrueDiv(a, b float64) (float64, error)
	Mod(a, b float64) (float64, error)
	Pow(a, b float64) (float64, error)
}

// ColorCodec converts normalized colors to and from text and packed hex
// integers. [codec.Names] is the default.
type ColorCodec interface {
	Decode(text string) ([3]float64, error)
	Encode(c [3]float64) string
	FromHex(hex uint32) [3]float64
	ToHex(c [3]float64) uint32
}

// Option configures a List during creation.
//
// Example:
//
//	// Python semantics (default)
//	l := tint.New[tint.Unit]()
//
//	// IEEE float semantics: dividing by zero yields +Inf instead of an error
//	l := tint.New[tint.Unit](tint.WithNumericPolicy(pymath.IEEE{}))
type Option func(*options)

// options holds optional configuration for a List.
type options struct {
	policy NumericPolicy
	codec  ColorCodec
}

// defaultOptions returns the default list options.
func defaultOptions() options {
	return options{
		policy: pymath.Python{},
		codec:  codec.Names{},
	}
}

// buildOptions applies opts over the defaults. A nil policy or codec falls
// back to the default.
func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := defaultOptions()
	if o.policy == nil {
		o.policy = d.policy
	}
	if o.codec == nil {
		o.codec = d.codec
	}
	return o
}

// WithNumericPolicy sets the policy used for division, modulo, power,
// rounding and hashing.
func WithNumericPolicy(p NumericPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithCodec sets the codec used to decode strings and hex integers when
// converting loose values, and to format the list as a string.
func WithCodec(c ColorCodec) Option {
	return func(o *options) {
		o.codec = c
	}
}
