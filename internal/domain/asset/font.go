package asset

import (
	"encoding/xml"
	"fmt"
	"image"
)

// fontDescriptor mirrors the BMFont XML layout. Both .fnt and .xml font
// descriptors carry the same XML document.
type fontDescriptor struct {
	XMLName xml.Name `xml:"font"`
	Info    struct {
		Face string `xml:"face,attr"`
		Size int    `xml:"size,attr"`
	} `xml:"info"`
	Common struct {
		LineHeight int `xml:"lineHeight,attr"`
		Base       int `xml:"base,attr"`
	} `xml:"common"`
	Pages struct {
		Page []struct {
			ID   int    `xml:"id,attr"`
			File string `xml:"file,attr"`
		} `xml:"page"`
	} `xml:"pages"`
	Chars struct {
		Char []struct {
			ID       int `xml:"id,attr"`
			X        int `xml:"x,attr"`
			Y        int `xml:"y,attr"`
			Width    int `xml:"width,attr"`
			Height   int `xml:"height,attr"`
			XOffset  int `xml:"xoffset,attr"`
			YOffset  int `xml:"yoffset,attr"`
			XAdvance int `xml:"xadvance,attr"`
		} `xml:"char"`
	} `xml:"chars"`
}

// Char is one glyph of a bitmap font: its source rectangle in the page
// texture, render offsets, and horizontal advance.
type Char struct {
	Rect     image.Rectangle
	XOffset  int
	YOffset  int
	XAdvance int
}

// BitmapFont is a parsed bitmap-font descriptor together with its
// decoded page texture.
type BitmapFont struct {
	Face       string
	Size       int
	LineHeight int
	Base       int
	PageFile   string
	Page       image.Image
	Chars      map[rune]Char
}

// ParseBitmapFont parses a BMFont XML descriptor. The page texture is
// not loaded here; PageFile names the texture the caller must resolve
// relative to the descriptor's location.
func ParseBitmapFont(data []byte) (*BitmapFont, error) {
	var desc fontDescriptor
	if err := xml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse font descriptor: %w", err)
	}
	if len(desc.Pages.Page) == 0 {
		return nil, fmt.Errorf("font descriptor has no pages")
	}
	if len(desc.Chars.Char) == 0 {
		return nil, fmt.Errorf("font descriptor has no chars")
	}

	f := &BitmapFont{
		Face:       desc.Info.Face,
		Size:       desc.Info.Size,
		LineHeight: desc.Common.LineHeight,
		Base:       desc.Common.Base,
		PageFile:   desc.Pages.Page[0].File,
		Chars:      make(map[rune]Char, len(desc.Chars.Char)),
	}
	for _, c := range desc.Chars.Char {
		f.Chars[rune(c.ID)] = Char{
			Rect:     image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height),
			XOffset:  c.XOffset,
			YOffset:  c.YOffset,
			XAdvance: c.XAdvance,
		}
	}
	return f, nil
}
