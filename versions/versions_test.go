package versions_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpuzzle/versions"
)

func TestSort_Known(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "mixed depths",
			in:   []string{"1.11", "2.0.0", "1.2", "2", "0.1", "1.2.1", "1.1.1", "2.0"},
			want: []string{"0.1", "1.1.1", "1.2", "1.2.1", "1.11", "2", "2.0", "2.0.0"},
		},
		{
			name: "prefix ties",
			in:   []string{"1.0.0", "1.0", "1", "1.0.12", "1.0.2"},
			want: []string{"1", "1.0", "1.0.0", "1.0.2", "1.0.12"},
		},
		{
			name: "leading zeros keep their spelling",
			in:   []string{"1.01", "1.1", "1.0"},
			want: []string{"1.0", "1.01", "1.1"},
		},
		{
			name: "empty list",
			in:   []string{},
			want: []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := slices.Clone(tc.in)
			got, err := versions.Sort(in)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Sort mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.in, in, "input must be left untouched")
		})
	}
}

func TestCompare(t *testing.T) {
	p := versions.MustParse
	assert.Equal(t, -1, versions.Compare(p("1"), p("1.0")))
	assert.Equal(t, 1, versions.Compare(p("1.0.0"), p("1.0")))
	assert.Equal(t, 0, versions.Compare(p("3.4.5"), p("3.4.5")))
	assert.Equal(t, -1, versions.Compare(p("2.9"), p("10")))
	assert.Equal(t, 0, versions.Compare(p("1.01"), p("1.1")))
	assert.Equal(t, []int{1, 1}, p("1.01").Parts())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{"", versions.ErrEmpty},
		{"1.2.3.4", versions.ErrTooManyParts},
		{"1..2", versions.ErrBadComponent},
		{"1.a", versions.ErrBadComponent},
		{"-1", versions.ErrBadComponent},
		{"+1", versions.ErrBadComponent},
		{"1.", versions.ErrBadComponent},
		{"99999999999999999999", versions.ErrBadComponent},
	}
	for _, tc := range cases {
		_, err := versions.Parse(tc.in)
		assert.ErrorIs(t, err, tc.err, "Parse(%q)", tc.in)
	}

	_, err := versions.Sort([]string{"1", "x"})
	assert.ErrorIs(t, err, versions.ErrBadComponent)
}
