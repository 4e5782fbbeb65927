package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevelSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		spec      string
		numLevels int

		want    []uint
		wantErr string
	}{
		{name: "single index", spec: "0", numLevels: 4, want: []uint{0}},
		{name: "comma list", spec: "0,2", numLevels: 4, want: []uint{0, 2}},
		{name: "range", spec: "1-3", numLevels: 4, want: []uint{1, 2, 3}},
		{name: "list with range and spaces", spec: " 0, 2-3", numLevels: 4, want: []uint{0, 2, 3}},
		{name: "single index as range", spec: "2-2", numLevels: 4, want: []uint{2}},
		{name: "duplicate selection", spec: "1,1-2", numLevels: 4, want: []uint{1, 2}},

		{name: "not a number", spec: "x", numLevels: 4, wantErr: "not a level index"},
		{name: "empty spec", spec: "", numLevels: 4, wantErr: "not a level index"},
		{name: "trailing comma", spec: "0,", numLevels: 4, wantErr: "not a level index"},
		{name: "negative index", spec: "-1", numLevels: 4, wantErr: "not a level index"},
		{name: "reversed range", spec: "3-1", numLevels: 4, wantErr: "reversed"},
		{name: "index out of range", spec: "4", numLevels: 4, wantErr: "out of range"},
		{name: "range end out of range", spec: "2-9", numLevels: 4, wantErr: "out of range"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sel, err := parseLevelSpec(tc.spec, tc.numLevels)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			var got []uint
			for i := uint(0); i < uint(tc.numLevels); i++ {
				if sel.Test(i) {
					got = append(got, i)
				}
			}
			require.Equal(t, tc.want, got)
		})
	}
}
