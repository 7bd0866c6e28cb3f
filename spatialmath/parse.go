package spatialmath

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ParseQuaternion reads a quaternion written as four numbers in w, x, y, z order, separated by whitespace
// and/or commas, e.g. "1 2 3 4" or "1, 2, 3, 4". An optional surrounding pair of parentheses is ignored.
func ParseQuaternion(s string) (Quaternion, error) {
	values, err := delimitedStringToSlice(strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "("), ")"))
	if err != nil {
		return Quaternion{}, errors.Wrapf(err, "cannot parse quaternion %q", s)
	}
	if len(values) != 4 {
		return Quaternion{}, errors.Errorf("cannot parse quaternion %q: expected 4 components but got %d", s, len(values))
	}
	return NewQuaternion(values[0], values[1], values[2], values[3]), nil
}

// delimitedStringToSlice splits s on whitespace and commas and parses every field as a float64.
func delimitedStringToSlice(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	converted := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		converted = append(converted, value)
	}
	return converted, nil
}
