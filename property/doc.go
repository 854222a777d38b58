// Package property provides the lexical side of property paths.
//
// Key types and functions:
//   - Tokenizer: splits "order.items[2].price" into a head segment and children
//   - MethodToProperty / FieldToProperty: accessor and field naming rules
//   - CopyProperties: shallow copy of exported fields between two values of one struct type
package property
