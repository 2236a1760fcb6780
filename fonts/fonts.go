package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label  FontName = "label"
	Status FontName = "status"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in Go Regular faces.
func LoadDefaults() error {
	if err := LoadFontWithSize(Label, goregular.TTF, 18); err != nil {
		return err
	}
	return LoadFontWithSize(Status, goregular.TTF, 12)
}

// LoadFile replaces the label face with a TTF from disk. Scripts Go Regular
// lacks, such as Arabic or Hebrew, need one.
func LoadFile(name FontName, path string, size float64) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return LoadFontWithSize(name, ttf, size)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
