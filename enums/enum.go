// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the interfaces and helper functions used by
// the enum types of this module. The per-type methods live in generated
// enumgen.go files and delegate to the functions in this package.
package enums

import "fmt"

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// Validator is implemented by enum types that can report
// whether their value is one of the declared constants.
type Validator interface {
	IsValid() bool
}

// IsValid returns whether the given value is valid for its enum type.
// Values that do not implement [Validator] are always considered valid.
func IsValid(e any) bool {
	v, ok := e.(Validator)
	if !ok {
		return true
	}
	return v.IsValid()
}
