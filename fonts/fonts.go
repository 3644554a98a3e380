package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Large   FontName = "large"
	Small   FontName = "small"
	Mono    FontName = "mono" // debug overlay
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go fonts under every FontName.
func LoadDefaults() error {
	sizes := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, 12},
		{Large, goregular.TTF, 18},
		{Small, goregular.TTF, 9},
		{Mono, gomono.TTF, 9},
	}
	for _, s := range sizes {
		if err := LoadFontWithSize(s.name, s.ttf, s.size); err != nil {
			return err
		}
	}
	return nil
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
