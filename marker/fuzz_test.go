package marker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzFindEquivalence checks that every strategy agrees with the
// exhaustive baseline on arbitrary input, after folding bytes into the
// lowercase alphabet the bitmask strategies are specified for.
func FuzzFindEquivalence(f *testing.F) {
	for _, v := range vectors {
		f.Add(v.data)
	}
	f.Add([]byte("abcdefghijklmn"))
	f.Add([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, raw []byte) {
		data := make([]byte, len(raw))
		for i, c := range raw {
			data[i] = 'a' + c%26
		}

		want, wantErr := FindSet(data)
		for _, kind := range Kinds()[1:] {
			pos, err := kind.Finder()(data)
			require.ErrorIs(t, err, wantErr, "%s disagrees on %q", kind, data)
			require.Equal(t, want, pos, "%s disagrees on %q", kind, data)
		}
	})
}
