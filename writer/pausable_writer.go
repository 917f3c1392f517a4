package writer

import (
	"bytes"
	"io"
	"sync"
)

// PausableWriter buffers writes while paused and flushes them on
// resume. The CLI pauses the log writers while it prompts the operator
// so log lines do not interleave with the question.
type PausableWriter struct {
	mutex  sync.Mutex
	out    io.Writer
	paused bool
	buffer bytes.Buffer
}

func NewPausableWriter(out io.Writer) *PausableWriter {
	return &PausableWriter{out: out}
}

func (w *PausableWriter) Write(p []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.paused {
		return w.buffer.Write(p)
	}
	return w.out.Write(p)
}

func (w *PausableWriter) Pause() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.paused = true
}

func (w *PausableWriter) Resume() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.paused = false
	_, err := io.Copy(w.out, &w.buffer)
	w.buffer.Reset()
	return err
}
