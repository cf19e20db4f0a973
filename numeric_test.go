package conslist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	testCases := []struct {
		Name string
		In   *List[int]
		Want int
	}{
		{
			Name: "sum of an empty list should be zero",
			In:   Empty[int](),
			Want: 0,
		},
		{
			Name: "sum of a one-element list should be the element",
			In:   Of(7),
			Want: 7,
		},
		{
			Name: "sum should add every element",
			In:   Of(1, 2, 3, 4, 5),
			Want: 15,
		},
		{
			Name: "negative elements should subtract",
			In:   Of(10, -4, -6),
			Want: 0,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			assert.Equal(t, testCase.Want, Sum(testCase.In))
		})
	}
}

func TestSumFloats(t *testing.T) {
	assert.InDelta(t, 6.0, Sum(Of(1.5, 2.5, 2.0)), 1e-9)
}

func TestProduct(t *testing.T) {
	testCases := []struct {
		Name string
		In   *List[float64]
		Want float64
	}{
		{
			Name: "product of an empty list should be one",
			In:   Empty[float64](),
			Want: 1.0,
		},
		{
			Name: "product should multiply every element",
			In:   Of(2.0, 3.0, 4.0),
			Want: 24.0,
		},
		{
			Name: "a zero element should force the result to exactly zero",
			In:   Of(1.0, 2.0, 0.0, 99999.0),
			Want: 0.0,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			assert.Equal(t, testCase.Want, Product(testCase.In))
		})
	}
}

func TestProductShortCircuitsAtZero(t *testing.T) {
	// If the elements after the zero were multiplied in, the NaN would make
	// the result NaN instead of zero.
	got := Product(Of(1.0, 0.0, math.NaN()))

	assert.Equal(t, 0.0, got)
}

func TestProductOfInts(t *testing.T) {
	assert.Equal(t, 120, Product(Of(1, 2, 3, 4, 5)))
	assert.Equal(t, 0, Product(Of(3, 0, 9)))
}

func TestAddCorresponding(t *testing.T) {
	t.Run("should add element by element", func(t *testing.T) {
		got := AddCorresponding(Of(1, 2, 3), Of(4, 5, 6))

		assert.True(t, Equal(Of(5, 7, 9), got))
	})

	t.Run("should stop at the shorter input", func(t *testing.T) {
		got := AddCorresponding(Of(1, 2, 3), Of(10, 20))

		assert.True(t, Equal(Of(11, 22), got))
	})
}
