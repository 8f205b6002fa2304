// Package strong provides branded wrappers over primitive values.
//
// A strong type is a primitive (string, GUID, int32, int64, decimal, rune or
// time) tagged with a brand so that two values sharing a representation
// cannot be mixed up. The brand is a type parameter, usually an empty struct:
//
//	type userID struct{}
//	type orderID struct{}
//
//	type UserID = strong.GUID[userID]
//	type OrderID = strong.GUID[orderID]
//
// UserID and OrderID are distinct types; passing one where the other is
// expected does not compile. Every specialization exposes the same contract:
//
//   - Value returns the wrapped primitive
//   - Equal and Compare accept only the same brand
//   - EqualAny reports false for any other type, including another brand
//     over an identical value
//   - Hash is consistent with Equal
//   - New and Parse act as constructors on the zero value so generic code
//     can build a T it only knows as a type parameter
//
// Construction never validates. A brand may implement Validator to give its
// values a format check; Create, IsValidFormat and the decoding paths
// (JSON, text) consult it.
//
// From resolves a constructor for T once and caches it per type:
//
//	id := strong.From[UserID](uuid.New())
//	ids := strong.FromSlice[UserID](raw)
package strong
