package spatialmath

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestParseQuaternion(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected Quaternion
	}{
		{"1 2 3 4", q1},
		{"1,2,3,4", q1},
		{" 1, 2,  3 ,4\n", q1},
		{"(5 6 7 8)", q2},
		{"-0.5 1e-3 +2 -4e2", NewQuaternion(-0.5, 0.001, 2, -400)},
	} {
		t.Run(tc.input, func(t *testing.T) {
			q, err := ParseQuaternion(tc.input)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, q, test.ShouldResemble, tc.expected)
		})
	}

	t.Run("wrong count", func(t *testing.T) {
		_, err := ParseQuaternion("1 2 3")
		test.That(t, err, test.ShouldBeError, errors.New(`cannot parse quaternion "1 2 3": expected 4 components but got 3`))
		_, err = ParseQuaternion("")
		test.That(t, err, test.ShouldNotBeNil)
		_, err = ParseQuaternion("1 2 3 4 5")
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := ParseQuaternion("1 2 three 4")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `cannot parse quaternion "1 2 three 4"`)
		var numErr *strconv.NumError
		test.That(t, errors.As(err, &numErr), test.ShouldBeTrue)
		test.That(t, numErr.Num, test.ShouldEqual, "three")
	})
}
