package executor

// Executor runs batches of executables. Executables within a batch are
// independent of each other; batches run in order.
type Executor interface {
	Run([][]Executable) []error
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_executable.go . Executable
type Executable interface {
	Execute() error
}
