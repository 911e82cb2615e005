package assets

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

// pngBytes encodes a solid-color PNG of the given size.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// wavBytes builds a minimal 16-bit mono PCM WAV of n silent samples.
func wavBytes(n int) []byte {
	dataSize := n * 2
	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+dataSize))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&b, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&b, binary.LittleEndian, uint32(44100))
	binary.Write(&b, binary.LittleEndian, uint32(44100*2))
	binary.Write(&b, binary.LittleEndian, uint16(2))
	binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(dataSize))
	b.Write(make([]byte, dataSize))
	return b.Bytes()
}

const testFontXML = `<?xml version="1.0"?>
<font>
  <info face="pixel" size="12"/>
  <common lineHeight="14" base="11"/>
  <pages><page id="0" file="font_0.png"/></pages>
  <chars count="1">
    <char id="65" x="0" y="0" width="6" height="10" xoffset="0" yoffset="1" xadvance="7"/>
  </chars>
</font>`

const testSheetJSON = `{
	"meta": {"image": "sheet_tex.png"},
	"frames": {
		"run0": {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}},
		"run1": {"frame": {"x": 8, "y": 0, "w": 8, "h": 8}}
	}
}`

// testRoot builds the canonical asset tree used across tests:
// an image, a sound, a bitmap font with its page, a spritesheet with
// its texture, and one unclassifiable file.
func testRoot(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"bunny.png":     {Data: pngBytes(t, 4, 4)},
		"click.wav":     {Data: wavBytes(64)},
		"font.fnt":      {Data: []byte(testFontXML)},
		"font_0.png":    {Data: pngBytes(t, 16, 16)},
		"sheet.json":    {Data: []byte(testSheetJSON)},
		"sheet_tex.png": {Data: pngBytes(t, 16, 8)},
		"notes.txt":     {Data: []byte("not an asset")},
	}
}
