package asset

import (
	"encoding/json"
	"fmt"
	"image"
)

// SheetDescriptor is the JSON frame descriptor of a spritesheet. The
// descriptor references the backing texture by file name; frames are
// named sub-rectangles of that texture.
type SheetDescriptor struct {
	Meta   SheetMeta             `json:"meta"`
	Frames map[string]SheetFrame `json:"frames"`
}

// SheetMeta carries the descriptor-level fields.
type SheetMeta struct {
	Image string `json:"image"`
}

// SheetFrame is one named frame entry.
type SheetFrame struct {
	Frame FrameRect `json:"frame"`
}

// FrameRect is a frame rectangle in texture coordinates.
type FrameRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// ParseSheetDescriptor parses descriptor JSON. A descriptor without a
// meta.image reference or without frames is malformed.
func ParseSheetDescriptor(data []byte) (*SheetDescriptor, error) {
	var desc SheetDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse sheet descriptor: %w", err)
	}
	if desc.Meta.Image == "" {
		return nil, fmt.Errorf("sheet descriptor has no meta.image")
	}
	if len(desc.Frames) == 0 {
		return nil, fmt.Errorf("sheet descriptor has no frames")
	}
	return &desc, nil
}

// Spritesheet is a decoded texture plus its named frame rectangles.
type Spritesheet struct {
	Name   string
	Image  image.Image
	Frames map[string]image.Rectangle
}

// BuildSpritesheet resolves a parsed descriptor against its decoded
// texture. Frames that fall outside the texture bounds are rejected.
func BuildSpritesheet(name string, desc *SheetDescriptor, img image.Image) (*Spritesheet, error) {
	bounds := img.Bounds()
	frames := make(map[string]image.Rectangle, len(desc.Frames))
	for frameName, f := range desc.Frames {
		r := image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
		if !r.In(bounds) {
			return nil, fmt.Errorf("frame %q exceeds texture bounds %v", frameName, bounds)
		}
		frames[frameName] = r
	}
	return &Spritesheet{Name: name, Image: img, Frames: frames}, nil
}
