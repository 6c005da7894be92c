package core

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	cfg "github.com/1F47E/go-qrrr/pkg/config"
	p "github.com/1F47E/go-qrrr/pkg/core/progress"
	"github.com/1F47E/go-qrrr/pkg/job"
	"github.com/1F47E/go-qrrr/pkg/storage"
	"github.com/1F47E/go-qrrr/pkg/workers"
)

// Encode converts the file at path into an animated QR gif written to the
// current dir and returns the absolute path of the generated file.
// Whole file and all frames are held in memory, fine for the small files
// this is meant for.
func (c *Core) Encode(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("Could not find source file '%s'", path)
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("Source '%s' is not a regular file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Println("Error reading file:", err)
		return "", err
	}

	chunks := c.chunks(data)
	log.Debugf("File %s: %d bytes, %d chunks of max %d bytes\n",
		path, len(data), len(chunks), c.encoder.ChunkSize())

	p.ProgressReset(len(chunks), "Encoding... ")
	frames, err := c.encodeFrames(chunks)
	if err != nil {
		return "", err
	}

	// ====== GIF ENCODING

	// setup progress bar async, otherwise it wont animate
	p.ProgressSpinner("Saving gif... ")
	done := make(chan bool)
	go func(done <-chan bool) {
		ticker := time.NewTicker(time.Millisecond * 300)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Add(1) // spin
			case <-done:
				return
			}
		}
	}(done)

	out := outputName(path)
	err = storage.SaveAnimation(out, frames, c.delayMS)
	done <- true
	p.Finish()
	if err != nil {
		return "", fmt.Errorf("Error saving gif: %w", err)
	}
	log.Debug("\nGif encoded")

	return filepath.Abs(out)
}

// chunks splits data into slices of exactly chunkSize bytes, the last one
// holds the remainder. Concatenated back in order they are the input,
// byte for byte. Empty input still yields one empty chunk so the
// animation has at least one frame.
func (c *Core) chunks(data []byte) [][]byte {
	size := c.encoder.ChunkSize()
	n := (len(data) + size - 1) / size
	if n == 0 {
		n = 1
	}
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		end := (i + 1) * size
		if end > len(data) {
			end = len(data)
		}
		out = append(out, data[i*size:end])
	}
	return out
}

// progress of frame i out of n, 0.0 for the first and 1.0 for the last.
// A single frame carries the whole payload, so its progress is 1.0.
func (c *Core) progress(i, n int) float64 {
	if n <= 1 {
		return 1.0
	}
	return float64(i) / float64(n-1)
}

// encodeFrames renders one frame per chunk on a pool of workers.
// Frames land in the result slice by chunk index, so the output order
// is the chunk order no matter how the pool schedules them.
func (c *Core) encodeFrames(chunks [][]byte) ([]*image.Paletted, error) {
	frames := make([]*image.Paletted, len(chunks))
	errs := make([]error, len(chunks))

	// ===== START WORKERS

	jobs := make(chan job.JobEnc)
	numCpu := runtime.NumCPU()

	w := workers.NewWorker(c.encoder)
	wg := sync.WaitGroup{}
	for i := 0; i < numCpu; i++ {
		wg.Add(1)
		i := i
		go func() {
			w.WorkerEncode(i, jobs, frames, errs)
			wg.Done()
		}()
	}

	for i, chunk := range chunks {
		j := job.New(chunk, c.progress(i, len(chunks)), i)
		log.Debugf("Sending job for frame %d: %s\n", i, j.Print())
		// this will block untill available worker pick it up
		jobs <- j
		p.Add(1)
	}

	// expected all the workers to finish and exit
	close(jobs)
	wg.Wait()
	log.Debug("All workers done")

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("Error encoding frame: %w", err)
		}
	}
	return frames, nil
}

// outputName strips the dir and extension from the source path and
// appends the qrrr suffix. The gif lands in the current working dir.
func outputName(src string) string {
	name := filepath.Base(src)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return name + cfg.OutputSuffix
}
