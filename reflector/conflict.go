package reflector

import (
	"strings"

	"beanpath/errors"
	"beanpath/property"
)

// Candidate is one accessor competing for a property.
type Candidate[P any] struct {
	// Method is the accessor name, such as "GetAge" or "IsAge".
	Method string
	// Type is the getter result type or the setter parameter type.
	Type TypeRef
	// Ambiguous marks a method promoted from two embedded fields at the same
	// depth, which Go itself cannot select.
	Ambiguous bool
	Payload   P
}

// ResolveGetter picks the getter of a property among candidates, in order:
//   - identical types must be boolean, and then the "Is" getter wins;
//   - otherwise the candidate with the more specific type wins;
//   - unrelated types are an ErrAmbiguousAccessor.
func ResolveGetter[P any](owner, prop string, candidates []Candidate[P]) (Candidate[P], error) {
	if len(candidates) == 0 {
		return Candidate[P]{}, errors.Wrapf(errors.ErrMissingAccessor, "no getter for property %q in %s", prop, owner)
	}

	if err := ambiguousPromotion(owner, prop, candidates); err != nil {
		return Candidate[P]{}, err
	}

	winner := candidates[0]

	for _, candidate := range candidates[1:] {
		switch {
		case candidate.Type.Identical(winner.Type):
			if !candidate.Type.IsBool() {
				return Candidate[P]{}, ambiguousGetter(owner, prop, winner, candidate)
			}

			if strings.HasPrefix(candidate.Method, property.PrefixIs) {
				winner = candidate
			}
		case winner.Type.AssignableTo(candidate.Type):
			// winner is already the more specific one
		case candidate.Type.AssignableTo(winner.Type):
			winner = candidate
		default:
			return Candidate[P]{}, ambiguousGetter(owner, prop, winner, candidate)
		}
	}

	return winner, nil
}

// ResolveSetter picks the setter of a property among candidates. A setter whose
// parameter type is identical to the getter type wins outright; getter may be nil
// when the property has no getter. Otherwise the more specific parameter type wins.
// The first ambiguity is reported unless an exact match follows it.
func ResolveSetter[P any](owner, prop string, getter TypeRef, candidates []Candidate[P]) (Candidate[P], error) {
	var (
		match     *Candidate[P]
		ambiguity error
	)

	if err := ambiguousPromotion(owner, prop, candidates); err != nil {
		return Candidate[P]{}, err
	}

	for i := range candidates {
		candidate := &candidates[i]

		if getter != nil && candidate.Type.Identical(getter) {
			match = candidate
			break
		}

		if ambiguity != nil {
			continue
		}

		better, err := betterSetter(owner, prop, match, candidate)
		if err != nil {
			match, ambiguity = nil, err
			continue
		}

		match = better
	}

	if match == nil {
		if ambiguity == nil {
			ambiguity = errors.Wrapf(errors.ErrMissingAccessor, "no setter for property %q in %s", prop, owner)
		}

		return Candidate[P]{}, ambiguity
	}

	return *match, nil
}

func betterSetter[P any](owner, prop string, current, candidate *Candidate[P]) (*Candidate[P], error) {
	if current == nil {
		return candidate, nil
	}

	switch {
	case candidate.Type.AssignableTo(current.Type):
		return candidate, nil
	case current.Type.AssignableTo(candidate.Type):
		return current, nil
	}

	return nil, errors.WithDetailf(
		errors.Wrapf(errors.ErrAmbiguousAccessor,
			"ambiguous setters for property %q in %s: %s(%s) and %s(%s)",
			prop, owner, current.Method, current.Type, candidate.Method, candidate.Type),
		"type: %s", owner)
}

func ambiguousGetter[P any](owner, prop string, a, b Candidate[P]) error {
	return errors.WithDetailf(
		errors.WithHint(
			errors.Wrapf(errors.ErrAmbiguousAccessor,
				"ambiguous getters for property %q in %s: %s() %s and %s() %s",
				prop, owner, a.Method, a.Type, b.Method, b.Type),
			"getters of one property must return related types; only bool allows both Get and Is"),
		"type: %s", owner)
}

func ambiguousPromotion[P any](owner, prop string, candidates []Candidate[P]) error {
	for _, c := range candidates {
		if !c.Ambiguous {
			continue
		}

		return errors.WithDetailf(
			errors.WithHint(
				errors.Wrapf(errors.ErrAmbiguousAccessor,
					"ambiguous accessor for property %q in %s: %s is promoted from two embedded fields at the same depth",
					prop, owner, c.Method),
				"declare the accessor on the outer type to select one"),
			"type: %s", owner)
	}

	return nil
}
