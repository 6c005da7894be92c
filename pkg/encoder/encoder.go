package encoder

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"

	cfg "github.com/1F47E/go-qrrr/pkg/config"
	"github.com/1F47E/go-qrrr/pkg/density"
	"github.com/1F47E/go-qrrr/pkg/logger"
)

var ErrChunkTooLarge = errors.New("chunk exceeds symbol capacity")

// 0 is the background, 1 the modules. Paletted frames go straight
// into the gif encoder without quantization.
var palette = color.Palette{
	color.RGBA{255, 255, 255, 255},
	color.RGBA{0, 0, 0, 255},
}

const (
	colorWhite = 0
	colorBlack = 1
)

// FrameEncoder renders one chunk of data into one animation frame:
// a QR code stacked on top of a progress bar.
// It keeps no state between frames, safe to share across workers.
type FrameEncoder struct {
	version   int
	level     density.Level
	boxSize   int
	border    int
	chunkSize int
}

func NewFrameEncoder(version int, level density.Level) (*FrameEncoder, error) {
	size, err := density.Capacity(level, version)
	if err != nil {
		return nil, err
	}
	return &FrameEncoder{
		version:   version,
		level:     level,
		boxSize:   cfg.SizeBox,
		border:    cfg.SizeBorder,
		chunkSize: size,
	}, nil
}

// ChunkSize is the max number of raw bytes one frame can carry.
func (e *FrameEncoder) ChunkSize() int {
	return e.chunkSize
}

// widthModules is the side of the QR code in modules, quiet zone included
func (e *FrameEncoder) widthModules() int {
	return 4*e.version + 2*e.border + 17
}

// barModules is the progress bar height in modules, bottom padding included.
// Scales with the version so the bar does not dwarf small codes.
func (e *FrameEncoder) barModules() int {
	h := 4 * e.version / 10
	if h < 2 {
		h = 2
	}
	return h + e.border
}

// EncodeFrame renders a single frame: the QR code holding data on top,
// the progress bar right below it, sharing the code's bottom border.
func (e *FrameEncoder) EncodeFrame(data []byte, progress float64) (*image.Paletted, error) {
	log := logger.Log.WithField("scope", "frame encoder")
	log.Debugf("Encoding frame, %d bytes, progress %.2f", len(data), progress)

	code, err := e.encodeSymbol(data)
	if err != nil {
		return nil, err
	}
	bar := e.encodeProgressBar(progress)

	w := code.Bounds().Dx()
	h := code.Bounds().Dy() + bar.Bounds().Dy()
	frame := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	draw.Draw(frame, code.Bounds(), code, image.Point{}, draw.Src)
	draw.Draw(frame, bar.Bounds().Add(image.Pt(0, code.Bounds().Dy())), bar, image.Point{}, draw.Src)

	log.Debug("Encoding frame done")
	return frame, nil
}

// encodeSymbol renders the QR code itself, quiet zone on all edges.
func (e *FrameEncoder) encodeSymbol(data []byte) (*image.Paletted, error) {
	if len(data) > e.chunkSize {
		return nil, fmt.Errorf("%d bytes, limit %d: %w", len(data), e.chunkSize, ErrChunkTooLarge)
	}

	side := e.boxSize * e.widthModules()
	if len(data) == 0 {
		// the qr lib refuses an empty payload, but an empty source file
		// still gets its single frame: a blank symbol of the usual size
		return image.NewPaletted(image.Rect(0, 0, side, side), palette), nil
	}

	qr, err := qrcode.NewWithForcedVersion(string(data), e.version, recovery(e.level))
	if err != nil {
		return nil, fmt.Errorf("qr encoding failed: %w", err)
	}
	// the lib border is fixed size, draw our own instead
	qr.DisableBorder = true
	modules := qr.Bitmap()

	img := image.NewPaletted(image.Rect(0, 0, side, side), palette)
	for y, row := range modules {
		for x, set := range row {
			if set {
				e.fillModules(img, x+e.border, y+e.border, 1, 1)
			}
		}
	}
	return img, nil
}

// encodeProgressBar renders the bar showing how far into the animation this
// frame is. Padding on the left, right and bottom edges only, the top edge
// shares the quiet zone of the QR code above it.
func (e *FrameEncoder) encodeProgressBar(progress float64) *image.Paletted {
	wm := e.widthModules()
	hm := e.barModules()

	// fill width is floored to whole modules
	fill := int(progress * float64(wm-2*e.border))
	height := hm - e.border

	img := image.NewPaletted(image.Rect(0, 0, e.boxSize*wm, e.boxSize*hm), palette)
	if fill > 0 {
		e.fillModules(img, e.border, 0, fill, height)
	}
	return img
}

// fillModules paints a w x h module rect at module coords (x, y) black
func (e *FrameEncoder) fillModules(img *image.Paletted, x, y, w, h int) {
	for py := y * e.boxSize; py < (y+h)*e.boxSize; py++ {
		for px := x * e.boxSize; px < (x+w)*e.boxSize; px++ {
			img.SetColorIndex(px, py, colorBlack)
		}
	}
}

func recovery(l density.Level) qrcode.RecoveryLevel {
	switch l {
	case density.LevelM:
		return qrcode.Medium
	case density.LevelQ:
		return qrcode.High
	case density.LevelH:
		return qrcode.Highest
	default:
		return qrcode.Low
	}
}
