package job

import "fmt"

// job for the frame rendering worker
type JobEnc struct {
	Chunk    []byte
	Progress float64
	FrameNum int
}

func New(chunk []byte, progress float64, frameNum int) JobEnc {
	return JobEnc{
		Chunk:    chunk,
		Progress: progress,
		FrameNum: frameNum,
	}
}

func (j *JobEnc) Print() string {
	return fmt.Sprintf("Job: FrameNum: %d, Progress: %.2f, Chunk len: %d", j.FrameNum, j.Progress, len(j.Chunk))
}
