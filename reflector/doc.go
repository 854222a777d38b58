// Package reflector discovers the readable and writable properties of Go types.
//
// A property is bound either to an accessor method or to an exported field:
//
//	func (o *Order) GetTotal() float64      // getter for "total"
//	func (o *Order) IsPaid() bool           // getter for "paid"
//	func (o *Order) SetTotal(v float64)     // setter for "total"
//	Status string                           // getter and setter for "status"
//
// Methods of exported embedded fields take part in introspection the way an
// ancestor chain would, outermost first. When one property has several getters
// or setters the more specific type wins; unrelated types make the whole type
// unusable with errors.ErrAmbiguousAccessor.
//
// Key types:
//   - Reflector: the immutable introspection record of one type
//   - Factory / DefaultFactory: concurrent cache of Reflectors, keyed by type
//   - MetaClass: navigation of nested property paths over types alone
//   - Invoker: a bound accessor, either a field or a method
//
// ResolveGetter and ResolveSetter hold the conflict rules. They work over
// TypeRef so that the same rules can be applied to go/types during static analysis.
package reflector
