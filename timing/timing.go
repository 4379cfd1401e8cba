package timing

import "time"

var (
	dt          float32 = 0.01
	lastElapsed float32

	startTime      time.Time
	frameStartTime time.Time
	frameCount     uint64
)

func Init() {
	startTime = time.Now()
	frameStartTime = startTime
	frameCount = 0
}

func FrameStarted() {
	frameStartTime = time.Now()
}

func FrameEnded() {

	elapsed := ElapsedTime()
	dt = elapsed - lastElapsed
	lastElapsed = elapsed
	frameCount++
}

// DT returns the duration of the previous frame in seconds
func DT() float32 {
	return dt
}

// ElapsedTime returns seconds since Init
func ElapsedTime() float32 {
	return float32(time.Since(startTime).Seconds())
}

func FrameCount() uint64 {
	return frameCount
}

// FrameTime returns how long the current frame has been running for
func FrameTime() time.Duration {
	return time.Since(frameStartTime)
}
