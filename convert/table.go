package convert

import (
	"reflect"

	"github.com/coopbus/coopbus/internal/coop"
)

type pairKey struct{ to, from reflect.Type }

// Table is a weak-keyed registry of conversion Rules. A rule is
// reachable by Find/Convert for exactly as long as whoever registered
// it keeps its returned *Rule alive; dropping that reference lets the
// rule disappear from the table on its own, the same cooperative
// ownership every other part of the bus uses for receivers.
type Table struct {
	rules *coop.Table[pairKey, Rule]
}

// NewTable returns an empty conversion table.
func NewTable() *Table {
	return &Table{rules: coop.NewTable[pairKey, Rule]()}
}

// Register installs a rule converting From to To using fn, returning
// the *Rule the caller must keep alive to keep the rule registered.
// From and To are ordinarily inferred from fn's signature, the Go
// equivalent of pleb's functor-parameter auto-detection.
func Register[From, To any](t *Table, fn func(From) To) *Rule {
	from := reflect.TypeOf((*From)(nil)).Elem()
	to := reflect.TypeOf((*To)(nil)).Elem()

	rule := &Rule{
		to:   to,
		from: from,
		convert: func(v any) (any, error) {
			in, ok := v.(From)
			if !ok {
				return nil, &IncompatibleTypeError{Want: from, Got: reflect.TypeOf(v)}
			}
			return fn(in), nil
		},
	}
	t.rules.Set(pairKey{to: to, from: from}, rule)
	return rule
}

// Find returns the live rule converting from "from" to "to", or nil.
func (t *Table) Find(to, from reflect.Type) *Rule {
	return t.rules.Find(pairKey{to: to, from: from})
}

// Convert looks up a rule converting from's dynamic type to To and
// applies it.
func Convert[To any](t *Table, from any) (To, error) {
	var zero To
	toType := reflect.TypeOf((*To)(nil)).Elem()
	fromType := reflect.TypeOf(from)

	rule := t.Find(toType, fromType)
	if rule == nil {
		return zero, &NoConversionRuleError{To: toType, From: fromType}
	}
	out, err := rule.Convert(from)
	if err != nil {
		return zero, err
	}
	result, ok := out.(To)
	if !ok {
		return zero, &IncompatibleTypeError{Want: toType, Got: reflect.TypeOf(out)}
	}
	return result, nil
}

// TryConvert is Convert with a fallback instead of an error return.
func TryConvert[To any](t *Table, from any, fallback To) To {
	result, err := Convert[To](t, from)
	if err != nil {
		return fallback
	}
	return result
}
