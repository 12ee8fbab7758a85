// Package jj reads decoded JSON documents through path-tracked wrappers.
//
// A document decoded into any (objects as map[string]any, arrays as []any)
// is wrapped with New. Lookups never fail; each one returns a further Value
// whose path records how it was reached:
//
//	root := jj.New(doc)
//	name, err := root.At("user").At("name").GetString()
//	// err: jj.WrongType: can't convert nil at path '<root>.user.name' to type 'String'
//
// # Access disciplines
//
// Every scalar type has three accessors:
//
//   - AsT() (T, bool) reports the value and whether it had type T
//   - ToT(def T) T returns def on any mismatch
//   - GetT() (T, error) returns a *Error of type WrongType on mismatch
//
// ToFunc computes a default only when it is needed:
//
//	limit := jj.ToFunc(root.At("limit").AsInt, loadLimit)
//
// Supported types are Bool, Int, UInt, Number (decimal.Decimal), Float
// (float32), Double (float64), String, Date, URL and UUID. AsTimeZone
// resolves IANA zone names. Numeric accessors never convert between integers
// and floats, and never parse strings.
//
// # Paths
//
// The root path is "<root>". Object lookups append ".key" and array lookups
// append "[i]". Looking up through something that is not the expected
// container inserts "<nil>" before the step, so
//
//	root.At("nested").At("unknown").Index(0).Path()
//
// is "<root>.nested<nil>.unknown<nil>[0]" when "nested" is missing.
//
// # Null and absence
//
// A JSON null is a present value: Exists and IsNull are both true. A value
// that was not found is absent: Exists is false. Strict accessors report
// both as WrongType; use Required to get NotFound for absent values.
//
// # Numbers
//
// Decoders that produce json.Number (see encoding/json Decoder.UseNumber)
// keep integers and floats apart. Plain encoding/json decoding turns every
// number into float64, so Int accessors will not match them.
//
// # Archives
//
// Encoder and Decoder adapt a flat keyed store (Archive) to the same
// accessors, with the key as path.
package jj
