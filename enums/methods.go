// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// String returns the string representation of the given
// enum value with the given map.
func String[T interface {
	comparable
	Enum
}](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. Matching falls back to a
// case-insensitive comparison when there is no exact match.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	for name, val := range valueMap {
		if strings.EqualFold(name, s) {
			*i = val
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value.
func Desc[T interface {
	comparable
	Enum
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given values as [Enum] values.
func Values[T Enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, val := range values {
		res[i] = val
	}
	return res
}

// UnmarshalText loads the enum from the given text.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		slog.Error("error unmarshaling enum value", "type", typeName, "err", err)
	}
	return nil
}
