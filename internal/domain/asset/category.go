// Package asset defines the data model for discoverable game assets:
// categories, manifest entries, load requests and the parsed forms of
// spritesheet and bitmap-font descriptors.
package asset

import "strings"

// Category classifies an asset file by what kind of resource it decodes into.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryImage
	CategorySound
	CategoryFont
	CategorySpritesheet
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryImage:
		return "Image"
	case CategorySound:
		return "Sound"
	case CategoryFont:
		return "Font"
	case CategorySpritesheet:
		return "Spritesheet"
	default:
		return "Unknown"
	}
}

// extensionTable is the fixed extension → category mapping.
// Extensions not listed here classify as CategoryUnknown and are kept
// out of the typed category tables.
var extensionTable = map[string]Category{
	"jpg":  CategoryImage,
	"jpeg": CategoryImage,
	"png":  CategoryImage,
	"wav":  CategorySound,
	"ogg":  CategorySound,
	"m4a":  CategorySound,
	"mp3":  CategorySound,
	"xml":  CategoryFont,
	"fnt":  CategoryFont,
	"json": CategorySpritesheet,
}

// Classify maps a file extension to its category. The extension may be
// given with or without a leading dot and is matched case-insensitively.
// Classification is a pure function of the extension.
func Classify(ext string) Category {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return extensionTable[ext]
}
