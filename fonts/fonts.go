package fonts

import (
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/automoto/darkvania/logging"
)

type FontName string

const (
	Text  FontName = "text"
	Title FontName = "title"
	Small FontName = "small"
)

var faces = map[FontName]font.Face{}

func (f FontName) Get() font.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

// Load parses the game font from disk and registers the sized faces. A
// missing or unreadable font is not fatal; everything falls back to the
// bitmap face.
func Load(path string) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		logging.L().WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("font not loaded, using fallback")
		return
	}
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		logging.L().WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("font not parsed, using fallback")
		return
	}

	faces[Text] = truetype.NewFace(parsed, &truetype.Options{Size: 12})
	faces[Title] = truetype.NewFace(parsed, &truetype.Options{Size: 28})
	faces[Small] = truetype.NewFace(parsed, &truetype.Options{Size: 9})
}
