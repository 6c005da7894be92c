package workers

import (
	"fmt"
	"image"
	"time"

	"github.com/1F47E/go-qrrr/pkg/encoder"
	"github.com/1F47E/go-qrrr/pkg/job"
	"github.com/1F47E/go-qrrr/pkg/logger"
)

var log = logger.Log

type Worker struct {
	encoder *encoder.FrameEncoder
}

func NewWorker(enc *encoder.FrameEncoder) *Worker {
	return &Worker{encoder: enc}
}

// WorkerEncode drains the jobs channel and renders frames into the shared
// slices by frame number. Every job targets a distinct index, so no locking.
// The frames slice keeps chunk order no matter which worker finishes first.
func (w *Worker) WorkerEncode(id int, jobs <-chan job.JobEnc, frames []*image.Paletted, errs []error) {
	name := fmt.Sprintf("WorkerEncode #%d", id)
	log.Debugf("%s started\n", name)
	defer log.Debugf("%s finished\n", name)

	for j := range jobs {
		log.Debugf("%s got job %s\n", name, j.Print())

		now := time.Now()
		img, err := w.encoder.EncodeFrame(j.Chunk, j.Progress)
		if err != nil {
			log.Debugf("%s Frame %d failed: %v\n", name, j.FrameNum, err)
			errs[j.FrameNum] = err
			continue
		}
		frames[j.FrameNum] = img
		log.Debugf("%s Frame %d done. Took time: %s\n", name, j.FrameNum, time.Since(now))
	}
}
