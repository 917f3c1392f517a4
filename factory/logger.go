package factory

import (
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/gitship/gitship/writer"
)

// The application log writers are pausable so interactive prompts can
// temporarily silence log output.
var ApplicationLoggerStdout = writer.NewPausableWriter(os.Stdout)
var ApplicationLoggerStderr = writer.NewPausableWriter(os.Stderr)

func BuildLogger(debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, ApplicationLoggerStdout)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, ApplicationLoggerStdout)
}
