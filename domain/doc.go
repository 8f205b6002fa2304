// Package domain provides a catalog of ready-made strong types for common
// value objects: identifiers, contact details, codes, names, amounts and
// dates.
//
// Every type is an alias of a strong specialization whose brand validates
// the value's format:
//
//	email, err := domain.NewEmail("Ada@Example.com") // normalized to lower case
//	id := domain.GenerateUserID()
//
// NewX constructors normalize and validate; MustX panics instead of
// returning an error. The zero value and values built with strong.From are
// not validated; call IsValidFormat or Validate on them when the source is
// untrusted.
//
// The catalog is also addressable by name, which lets tooling validate raw
// text against a kind chosen at run time:
//
//	k, ok := domain.Lookup("email")
//	canonical, err := k.Check(" someone@example.com ")
package domain
