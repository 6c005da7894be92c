package core

import (
	"fmt"

	cfg "github.com/1F47E/go-qrrr/pkg/config"
	"github.com/1F47E/go-qrrr/pkg/density"
	"github.com/1F47E/go-qrrr/pkg/encoder"
	"github.com/1F47E/go-qrrr/pkg/logger"
)

var log = logger.Log

// Core drives the whole pipeline: split a file into chunks sized to the
// QR code capacity, render a frame per chunk, save the frames as a gif.
type Core struct {
	delayMS int
	encoder *encoder.FrameEncoder
}

func NewCore(version int, level density.Level, fps int) (*Core, error) {
	if fps < 1 || fps > cfg.MaxFPS {
		return nil, fmt.Errorf("fps %d out of range, supported 1..%d", fps, cfg.MaxFPS)
	}
	enc, err := encoder.NewFrameEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return &Core{
		delayMS: 1000 / fps,
		encoder: enc,
	}, nil
}
