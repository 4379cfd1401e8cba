package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrames(t *testing.T) {

	Init()
	lastElapsed = 0
	assert.Equal(t, uint64(0), FrameCount())

	FrameStarted()
	time.Sleep(5 * time.Millisecond)
	FrameEnded()

	assert.Equal(t, uint64(1), FrameCount())
	assert.GreaterOrEqual(t, DT(), float32(0.004))
	assert.GreaterOrEqual(t, ElapsedTime(), DT())
}
