package pipeline

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressReportsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(&buf, 10, 5)
	p.Start()

	p.Update(3)
	assert.Empty(t, buf.String())

	p.Update(5)
	assert.Contains(t, buf.String(), "5/10 (50.0%)")

	p.Finish()
	assert.Contains(t, buf.String(), "10/10 (100.0%)")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestProgressCapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(&buf, 3, 1)
	p.Start()

	p.Update(7)
	assert.Contains(t, buf.String(), "3/3 (100.0%)")
}

func TestProgressIgnoredBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(&buf, 3, 1)

	p.Update(1)
	p.Finish()
	assert.Empty(t, buf.String())
	assert.Zero(t, p.Elapsed())
}

func TestProgressElapsed(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(&buf, 3, 1)
	p.Start()
	assert.GreaterOrEqual(t, p.Elapsed(), time.Duration(0))
}
