// Package kinds collects ready-made validator kinds built on the dependent package:
// digit strings, ordered ranges, UTC datetimes, non-empty string sets, uppercase
// strings, UUIDs and the Sign/Polarity tagged variants.
//
// Each kind is a marker type plus a package-level factory. Parameterized families
// (digit strings of length N, ranges [min, max]) also expose a Bind function so
// callers can declare their own members:
//
//	type Pin struct{}
//
//	var Pins = kinds.BindDigits[Pin](4)
package kinds
