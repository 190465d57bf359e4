package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/somscan/marker"
)

func TestSamples(t *testing.T) {
	samples := Samples()
	require.Len(t, samples, 3)

	for _, s := range samples {
		pos, err := marker.FindSet(s.Data)
		require.NoError(t, err, "sample %s", s.Name)
		require.Equal(t, s.Marker, pos, "sample %s", s.Name)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("det", 4096)
	b := Generate("det", 4096)
	c := Generate("other", 4096)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c, "different names must yield different bodies")
}

func TestGenerate_MarkerAtFinalByte(t *testing.T) {
	for _, size := range []int{marker.Len, 100, 4096, 65536} {
		data := Generate("final-byte", size)
		require.Len(t, data, size)

		pos, err := marker.FindSet(data)
		require.NoError(t, err)
		require.Equal(t, size, pos, "size %d", size)
	}
}

func TestGenerate_ClampsShortSizes(t *testing.T) {
	data := Generate("short", 3)
	require.Len(t, data, marker.Len)

	pos, err := marker.FindSet(data)
	require.NoError(t, err)
	require.Equal(t, marker.Len, pos)
}

func TestReadInput_Raw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	want := Samples()[0].Data
	require.NoError(t, os.WriteFile(path, want, 0o644))

	got, err := ReadInput(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadInput_Zstd(t *testing.T) {
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	want := Generate("roundtrip-zstd", 8192)
	compressed := encoder.EncodeAll(want, nil)
	require.NoError(t, encoder.Close())

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.zst")
	require.NoError(t, os.WriteFile(path, compressed, 0o644))

	got, err := ReadInput(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadInput_S2(t *testing.T) {
	want := Generate("roundtrip-s2", 8192)

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.s2")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := s2.NewWriter(f)
	_, err = w.Write(want)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	got, err := ReadInput(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadInput_LZ4(t *testing.T) {
	want := Generate("roundtrip-lz4", 8192)

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.lz4")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := lz4.NewWriter(f)
	_, err = w.Write(want)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	got, err := ReadInput(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadInput_Missing(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestReadInput_CorruptZstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.zst")
	require.NoError(t, os.WriteFile(path, []byte("not zstd at all"), 0o644))

	_, err := ReadInput(path)
	require.Error(t, err)
}
