package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

// TTFLargeFont is used for headlines drawn on the court
var TTFLargeFont font.Face

// TTFSmallFont is used for hints drawn on the court
var TTFSmallFont font.Face

// MPlusNormalFont is used for the controls bar
var MPlusNormalFont font.Face

const (
	LargeFontSize  = 24
	SmallFontSize  = 16
	NormalFontSize = 20
)

func loadFonts() error {
	const dpi = 72

	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	MPlusNormalFont, err = opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    NormalFontSize,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %v", err)
	}

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	TTFLargeFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    LargeFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	TTFSmallFont = truetype.NewFace(ttfFont, &truetype.Options{
		Size:    SmallFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	return nil
}
