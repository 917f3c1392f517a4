package deployer

import (
	"github.com/gitship/gitship/config"
	"github.com/gitship/gitship/orchestrator"
)

// Task is a composite operation (setup, deploy, rollback) bound to a
// Deployer.
type Task func(conf config.Config) orchestrator.Error

// HostExecutable runs one task against one host. Hosts share no state,
// so executables for different hosts may run in parallel.
type HostExecutable struct {
	host   string
	conf   config.Config
	task   Task
	logger orchestrator.Logger
}

func NewHostExecutable(host string, conf config.Config, task Task, logger orchestrator.Logger) HostExecutable {
	return HostExecutable{
		host:   host,
		conf:   conf,
		task:   task,
		logger: logger,
	}
}

func (e HostExecutable) Execute() error {
	e.logger.Info("gitship", "Running on host %s", e.host)

	errs := e.task(e.conf)
	if errs.IsNil() {
		return nil
	}

	e.logger.Error("gitship", "Host %s failed: %s", e.host, errs)
	return errs
}
