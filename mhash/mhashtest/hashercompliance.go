package mhashtest

import (
	"testing"

	"github.com/Autoparallel/murky/mhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() mhash.Hasher

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		d1 := h.Sum([]byte("deterministic_data"))
		d2 := h.Sum([]byte("deterministic_data"))

		require.Equal(t, d1, d2)
	})

	t.Run("sum respects value", func(t *testing.T) {
		t.Parallel()

		h := f()

		d1 := h.Sum([]byte("fixed_datum_1"))
		d2 := h.Sum([]byte("fixed_datum_2"))

		require.NotEqual(t, d1, d2)
	})

	t.Run("sum is total on empty input", func(t *testing.T) {
		t.Parallel()

		h := f()

		d1 := h.Sum(nil)
		d2 := h.Sum([]byte{})

		require.Equal(t, d1, d2)
	})
}
