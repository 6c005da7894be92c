package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	cfg "github.com/1F47E/go-qrrr/pkg/config"
	"github.com/1F47E/go-qrrr/pkg/core"
	"github.com/1F47E/go-qrrr/pkg/density"
	"github.com/1F47E/go-qrrr/pkg/logger"
)

var app = cli.NewApp()
var log = logger.Log

func init() {
	app.Name = "qrrr"
	app.Usage = "A file to animated QR code converter"
	app.UsageText = "qrrr [options] filename"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "ecc",
			Value: cfg.DefaultECC,
			Usage: "QR code error correction level {L,M,Q,H}",
		},
		cli.IntFlag{
			Name:  "fps",
			Value: cfg.DefaultFPS,
			Usage: fmt.Sprintf("FPS for the generated QRRR code (GIF) {1..%d}", cfg.MaxFPS),
		},
		cli.IntFlag{
			Name:  "version",
			Value: cfg.DefaultVersion,
			Usage: fmt.Sprintf("QR code version to use {1..%d}", density.MaxVersion),
		},
	}
	app.Action = func(c *cli.Context) error {
		filename := c.Args().Get(0)
		if filename == "" {
			return fmt.Errorf("Filename is required")
		}
		level, err := density.ParseLevel(c.String("ecc"))
		if err != nil {
			return err
		}
		qrrr, err := core.NewCore(c.Int("version"), level, c.Int("fps"))
		if err != nil {
			return err
		}
		generated, err := qrrr.Encode(filename)
		if err != nil {
			return err
		}
		fmt.Printf("Generated QRRR code:\t%s\n", generated)
		return nil
	}
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
