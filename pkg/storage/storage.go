package storage

import (
	"image"
	"image/gif"
	"os"

	"github.com/1F47E/go-qrrr/pkg/logger"
)

var log = logger.Log

// SaveAnimation writes the frames as a single looping GIF.
// The gif format stores delays in 10ms units, delayMS gets rounded down.
func SaveAnimation(path string, frames []*image.Paletted, delayMS int) error {
	g := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: 0, // loop forever
	}
	for i := range g.Delay {
		g.Delay[i] = delayMS / 10
	}

	log.Debugf("Saving %d frames to %s, delay %dms\n", len(frames), path, delayMS)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, g)
}
