// Package navigator reads and writes values inside object graphs by property path.
//
//	order := &Order{Items: []Item{{Price: 9.99}}}
//	nav, _ := navigator.New(order, reflector.NewFactory())
//	_ = nav.SetValue("items[0].price", 12.5)
//	price, _ := nav.GetValue("items[0].price") // 12.5
//	_ = nav.SetValue("customer.name", "Ada")   // allocates order.Customer
//
// A Navigator wraps one value with a Wrapper chosen by its shape:
//   - a value that is itself a Wrapper is used as is;
//   - a WrapperFactory may provide a custom Wrapper;
//   - maps are keyed by the segment name or index;
//   - slices and arrays are indexed by integer;
//   - anything else is read and written through its reflector.Reflector.
//
// Writes need addressable values, so pass pointers. Missing intermediate values
// are created through the ObjectFactory, except when the written value is nil.
// Nothing is converted: a value must be assignable to the declared type.
package navigator
