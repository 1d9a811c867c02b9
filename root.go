package coopbus

import "github.com/coopbus/coopbus/convert"

// theConversions is the process-wide conversion table every call to
// the package-level Convert/TryConvert/RegisterConversion uses.
// Callers that want an isolated registry -- tests, or a subsystem that
// shouldn't see the rest of the process's rules -- can still construct
// their own with convert.NewTable and call convert.Register/Convert on
// it directly.
var theConversions = convert.NewTable()

// RegisterConversion installs fn as a conversion rule on the
// process-wide conversion table, returning the handle the caller must
// keep alive to keep the rule registered.
func RegisterConversion[From, To any](fn func(From) To) *convert.Rule {
	return convert.Register(theConversions, fn)
}

// Convert applies the process-wide conversion table to from, failing
// with *convert.NoConversionRuleError if no rule matches.
func Convert[To any](from any) (To, error) {
	return convert.Convert[To](theConversions, from)
}

// TryConvert is Convert with a fallback instead of an error return.
func TryConvert[To any](from any, fallback To) To {
	return convert.TryConvert(theConversions, from, fallback)
}
