package types

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEither_Creation(t *testing.T) {
	t.Run("Success creates successful either", func(t *testing.T) {
		e := Success[string](42)

		assert.True(t, e.IsSuccess())
		assert.False(t, e.IsFailure())
		value, ok := e.SuccessValue()
		assert.True(t, ok)
		assert.Equal(t, 42, value)
		_, ok = e.FailureValue()
		assert.False(t, ok)
	})

	t.Run("Failure creates failed either", func(t *testing.T) {
		e := Failure[string, int]("boom")

		assert.False(t, e.IsSuccess())
		assert.True(t, e.IsFailure())
		value, ok := e.FailureValue()
		assert.True(t, ok)
		assert.Equal(t, "boom", value)
	})

	t.Run("nil payloads panic", func(t *testing.T) {
		var nilErr error
		var nilPtr *int

		assert.PanicsWithValue(t, "types: failure payload must not be nil", func() {
			Failure[error, int](nilErr)
		})
		assert.PanicsWithValue(t, "types: success payload must not be nil", func() {
			Success[string](nilPtr)
		})
	})

	t.Run("zero values are valid payloads", func(t *testing.T) {
		assert.True(t, Success[string](0).IsSuccess())
		assert.True(t, Failure[string, int]("").IsFailure())
	})
}

func TestEither_Map(t *testing.T) {
	double := func(x int) int { return x * 2 }

	t.Run("maps success", func(t *testing.T) {
		assert.Equal(t, Success[string](10), Map(Success[string](5), double))
	})

	t.Run("leaves failure unchanged and never calls f", func(t *testing.T) {
		called := false
		mapped := Map(Failure[string, int]("boom"), func(x int) int {
			called = true
			return x
		})

		assert.False(t, called)
		assert.Equal(t, Failure[string, int]("boom"), mapped)
	})

	t.Run("MapFailure maps only failures", func(t *testing.T) {
		length := func(s string) int { return len(s) }

		assert.Equal(t, Failure[int, int](4), MapFailure(Failure[string, int]("boom"), length))
		assert.Equal(t, Success[int](1), MapFailure(Success[string](1), length))
	})
}

func TestEither_FlatMap(t *testing.T) {
	parse := func(s string) Either[string, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Failure[string, int]("not a number")
		}
		return Success[string](n)
	}

	tests := []struct {
		name     string
		input    Either[string, string]
		expected Either[string, int]
	}{
		{"success into success", Success[string]("12"), Success[string](12)},
		{"success into failure", Success[string]("x"), Failure[string, int]("not a number")},
		{"failure short-circuits", Failure[string, string]("first"), Failure[string, int]("first")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlatMap(tt.input, parse))
			assert.Equal(t, tt.expected, Chain(tt.input, parse))
		})
	}

	t.Run("FlatMapFailure recovers", func(t *testing.T) {
		recovered := FlatMapFailure(Failure[string, int]("boom"), func(string) Either[error, int] {
			return Success[error](0)
		})
		assert.Equal(t, Success[error](0), recovered)

		untouched := FlatMapFailure(Success[string](3), func(string) Either[error, int] {
			t.Fatal("must not be called on success")
			return Success[error](0)
		})
		assert.Equal(t, Success[error](3), untouched)
	})
}

func TestEither_Fold(t *testing.T) {
	describe := func(e Either[string, int]) string {
		return Fold(e,
			func(s string) string { return "failed: " + s },
			func(n int) string { return "got " + strconv.Itoa(n) })
	}

	assert.Equal(t, "got 3", describe(Success[string](3)))
	assert.Equal(t, "failed: boom", describe(Failure[string, int]("boom")))
}

func TestEither_Resolve(t *testing.T) {
	fallback := func(s string) int { return len(s) }

	assert.Equal(t, 7, Success[string](7).Resolve(fallback))
	assert.Equal(t, 4, Failure[string, int]("boom").Resolve(fallback))
}

func TestEither_Or(t *testing.T) {
	other := Success[string](99)

	assert.Equal(t, Success[string](1), Success[string](1).Or(other))
	assert.Equal(t, other, Failure[string, int]("boom").Or(other))
}

func TestEither_Swap(t *testing.T) {
	assert.Equal(t, Failure[int, string](1), Success[string](1).Swap())
	assert.Equal(t, Success[int]("boom"), Failure[string, int]("boom").Swap())
}

func TestEither_Match(t *testing.T) {
	t.Run("calls success handler", func(t *testing.T) {
		var got int
		Success[string](5).Match(
			func(string) { t.Fatal("failure handler called") },
			func(n int) { got = n },
		)
		assert.Equal(t, 5, got)
	})

	t.Run("calls failure handler", func(t *testing.T) {
		var got string
		Failure[string, int]("boom").Match(
			func(s string) { got = s },
			func(int) { t.Fatal("success handler called") },
		)
		assert.Equal(t, "boom", got)
	})
}

func TestEither_String(t *testing.T) {
	assert.Equal(t, "Success(5)", Success[string](5).String())
	assert.Equal(t, "Failure(boom)", Failure[string, int]("boom").String())
}

func TestEither_Zip(t *testing.T) {
	tests := []struct {
		name     string
		left     Either[string, int]
		right    Either[string, string]
		expected Either[string, Pair[int, string]]
	}{
		{"both succeed", Success[string](1), Success[string]("a"), Success[string](PairOf(1, "a"))},
		{"left fails", Failure[string, int]("l"), Success[string]("a"), Failure[string, Pair[int, string]]("l")},
		{"right fails", Success[string](1), Failure[string, string]("r"), Failure[string, Pair[int, string]]("r")},
		{"both fail keeps first", Failure[string, int]("l"), Failure[string, string]("r"), Failure[string, Pair[int, string]]("l")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Zip(tt.left, tt.right))
		})
	}

	t.Run("ZipFailure pairs failures", func(t *testing.T) {
		assert.Equal(t,
			Failure[Pair[string, int], bool](PairOf("l", 2)),
			ZipFailure(Failure[string, bool]("l"), Failure[int, bool](2)))
		assert.Equal(t,
			Success[Pair[string, int]](true),
			ZipFailure(Success[string](true), Failure[int, bool](2)))
		assert.Equal(t,
			Success[Pair[string, int]](false),
			ZipFailure(Failure[string, bool]("l"), Success[int](false)))
	})
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, Success[Unit](1), FromOk(v, ok))

	v, ok = m["b"]
	assert.Equal(t, Failure[Unit, int](UnitValue), FromOk(v, ok))
}

func TestFromError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, Success[error]("ok"), FromError("ok", nil))
	assert.Equal(t, Failure[error, string](err), FromError("", err))
}

func TestFromTry(t *testing.T) {
	t.Run("returned value is a success", func(t *testing.T) {
		e := FromTry(func() (int, error) { return 3, nil })
		assert.Equal(t, Success[error](3), e)
	})

	t.Run("returned error is a failure", func(t *testing.T) {
		err := errors.New("read failed")
		e := FromTry(func() (int, error) { return 0, err })

		got, ok := e.FailureValue()
		require.True(t, ok)
		assert.ErrorIs(t, got, err)
		assert.NotErrorIs(t, got, ErrPanic)
	})

	t.Run("panic with an error is a failure", func(t *testing.T) {
		cause := errors.New("malformed input")
		e := FromTry(func() (rune, error) { panic(cause) })

		got, ok := e.FailureValue()
		require.True(t, ok)
		assert.ErrorIs(t, got, ErrPanic)
		assert.ErrorIs(t, got, cause)
	})

	t.Run("panic with any value is a failure", func(t *testing.T) {
		e := FromTry(func() (string, error) { panic("index out of range") })

		got, ok := e.FailureValue()
		require.True(t, ok)
		assert.ErrorIs(t, got, ErrPanic)
		assert.Contains(t, got.Error(), "index out of range")
	})
}

func TestEither_Properties(t *testing.T) {
	t.Run("Map identity", func(t *testing.T) {
		for _, e := range []Either[string, int]{Success[string](1), Failure[string, int]("x")} {
			assert.Equal(t, e, Map(e, Identity[int]))
		}
	})

	t.Run("FlatMap associativity", func(t *testing.T) {
		m := Success[string](5)
		f := func(x int) Either[string, int] { return Success[string](x * 2) }
		g := func(x int) Either[string, int] {
			if x > 5 {
				return Failure[string, int]("too big")
			}
			return Success[string](x)
		}

		left := FlatMap(FlatMap(m, f), g)
		right := FlatMap(m, func(x int) Either[string, int] { return FlatMap(f(x), g) })

		assert.Equal(t, left, right)
	})
}

func BenchmarkEither_Map(b *testing.B) {
	e := Success[string](42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Map(e, func(x int) int { return x * 2 })
	}
}

func BenchmarkEither_FlatMap(b *testing.B) {
	e := Success[string](42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FlatMap(e, func(x int) Either[string, int] { return Success[string](x * 2) })
	}
}

func ExampleFlatMap() {
	half := func(n int) Either[string, int] {
		if n%2 != 0 {
			return Failure[string, int](fmt.Sprintf("%d is odd", n))
		}
		return Success[string](n / 2)
	}

	fmt.Println(FlatMap(Success[string](8), half))
	fmt.Println(FlatMap(FlatMap(Success[string](6), half), half))
	// Output:
	// Success(4)
	// Failure(3 is odd)
}

func ExampleFromTry() {
	risky := func() (int, error) { panic("boom") }

	e := FromTry(risky)
	fmt.Println(e.IsFailure())
	// Output: true
}
