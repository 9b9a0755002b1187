package planarity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImage(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		im, err := DecodeImage(b64("\x89PNG\r\n\x1a\nrest"))
		require.NoError(t, err)
		assert.Equal(t, FormatPNG, im.Format)
		assert.Equal(t, ".png", im.Ext())
		assert.Equal(t, "image/png", im.MIMEType())
	})

	t.Run("svg with xml prolog", func(t *testing.T) {
		im, err := DecodeImage(b64(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`))
		require.NoError(t, err)
		assert.Equal(t, FormatSVG, im.Format)
		assert.Equal(t, ".svg", im.Ext())
	})

	t.Run("svg without prolog, leading whitespace", func(t *testing.T) {
		im, err := DecodeImage(b64("\n  <svg/>"))
		require.NoError(t, err)
		assert.Equal(t, FormatSVG, im.Format)
		assert.Equal(t, "image/svg+xml", im.MIMEType())
	})

	t.Run("unknown bytes", func(t *testing.T) {
		im, err := DecodeImage(b64("GIF89a"))
		require.NoError(t, err)
		assert.Equal(t, FormatUnknown, im.Format)
		assert.Equal(t, ".bin", im.Ext())
	})

	t.Run("empty field is a valid empty image", func(t *testing.T) {
		im, err := DecodeImage("")
		require.NoError(t, err)
		assert.True(t, im.Empty())
		assert.Equal(t, FormatUnknown, im.Format)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := DecodeImage("not base64 at all!!!")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode image")
	})
}

func TestImageDataURI(t *testing.T) {
	im, err := DecodeImage(b64("<svg/>"))
	require.NoError(t, err)
	assert.Equal(t, "data:image/svg+xml;base64,"+b64("<svg/>"), im.DataURI())
}

func TestImageSave(t *testing.T) {
	im, err := DecodeImage(b64("<svg/>"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "original.svg")
	require.NoError(t, im.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), data)
}

func BenchmarkDecodeImage(b *testing.B) {
	payload := b64(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><circle r="4"/></svg>`)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeImage(payload); err != nil {
			b.Fatal(err)
		}
	}
}
