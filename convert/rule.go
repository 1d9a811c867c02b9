// Package convert implements the bus's opt-in conversion registry,
// mirroring pleb's conversion.hpp. A Rule converts a value of one Go
// type to another; a Table looks rules up by (to, from) type pair and
// forgets a rule automatically once its registrant drops the last
// strong reference to it.
package convert

import "reflect"

// Rule converts values from one concrete type to another.
type Rule struct {
	to, from reflect.Type
	convert  func(any) (any, error)
}

func (r *Rule) To() reflect.Type   { return r.to }
func (r *Rule) From() reflect.Type { return r.from }

// Convert applies the rule to v, which must be assignable to r.From().
func (r *Rule) Convert(v any) (any, error) { return r.convert(v) }

// IncompatibleTypeError is returned when a value handed to a rule, or
// produced by one, doesn't match the type the rule was registered
// with.
type IncompatibleTypeError struct {
	Want, Got reflect.Type
}

func (e *IncompatibleTypeError) Error() string {
	return "convert: incompatible type: want " + e.Want.String() + ", got " + e.Got.String()
}

// NoConversionRuleError is returned when a Table has no rule, live or
// otherwise, for the requested (to, from) pair.
type NoConversionRuleError struct {
	To, From reflect.Type
}

func (e *NoConversionRuleError) Error() string {
	return "convert: no conversion rule from " + e.From.String() + " to " + e.To.String()
}
