package config

// NOTE: QR geometry is measured in modules (the dark/light squares),
// raster sizes in pixels
const (
	MaxFPS         = 20
	DefaultFPS     = 5
	DefaultVersion = 3
	DefaultECC     = "L"

	// raster scale
	SizeBox    = 10 // pixels per module
	SizeBorder = 4  // quiet zone, modules on each edge

	OutputSuffix = ".qrrr.gif"
)
