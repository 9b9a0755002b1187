package planarity

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
)

// Format identifies the encoding of a decoded image.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return "unknown"
	}
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Image is a decoded service image. The service has shipped both PNG and
// SVG payloads across versions, so the format is sniffed from the bytes
// rather than assumed.
type Image struct {
	Data   []byte
	Format Format
}

// DecodeImage decodes a base64 image field from a Result. An empty field
// decodes to a valid empty image.
func DecodeImage(b64 string) (Image, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %w", err)
	}
	return Image{Data: data, Format: sniffFormat(data)}, nil
}

func sniffFormat(data []byte) Format {
	if bytes.HasPrefix(data, pngMagic) {
		return FormatPNG
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<?xml")) || bytes.HasPrefix(trimmed, []byte("<svg")) {
		return FormatSVG
	}
	return FormatUnknown
}

// Empty reports whether the image holds no bytes.
func (im Image) Empty() bool { return len(im.Data) == 0 }

// Ext returns a file extension for the sniffed format.
func (im Image) Ext() string {
	switch im.Format {
	case FormatPNG:
		return ".png"
	case FormatSVG:
		return ".svg"
	default:
		return ".bin"
	}
}

// MIMEType returns the content type for the sniffed format.
func (im Image) MIMEType() string {
	switch im.Format {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// DataURI renders the image as a data: URI for inline embedding.
func (im Image) DataURI() string {
	return "data:" + im.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(im.Data)
}

// Save writes the image bytes to path.
func (im Image) Save(path string) error {
	return os.WriteFile(path, im.Data, 0644)
}
