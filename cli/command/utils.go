package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mgutz/ansi"
	"github.com/urfave/cli"

	"github.com/gitship/gitship/cli/flags"
	"github.com/gitship/gitship/config"
	"github.com/gitship/gitship/deployer"
	"github.com/gitship/gitship/executor"
	"github.com/gitship/gitship/factory"
	"github.com/gitship/gitship/orchestrator"
)

func requireConfigFlag(c *cli.Context) error {
	return flags.Validate([]string{"config"}, c)
}

func loadConfig(c *cli.Context) (config.Config, error) {
	conf, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return config.Config{}, err
	}

	if hosts := c.GlobalStringSlice("host"); len(hosts) > 0 {
		conf.Hosts = hosts
	}

	return conf, nil
}

func runOnAllHosts(c *cli.Context, taskFor func(deployer.Deployer) deployer.Task) error {
	conf, err := loadConfig(c)
	if err != nil {
		return redCliError(err)
	}

	logger := factory.BuildLogger(c.GlobalBool("debug"))

	executables, err := factory.BuildHostExecutables(conf, taskFor, logger)
	if err != nil {
		return processError(orchestrator.NewError(err))
	}

	return processError(flattenErrors(buildExecutor(c).Run([][]executor.Executable{executables})))
}

func buildExecutor(c *cli.Context) executor.Executor {
	if c.GlobalBool("parallel") {
		return executor.NewParallelExecutor()
	}
	return executor.NewSerialExecutor()
}

// flattenErrors merges per-host aggregated errors into a single list so
// the exit code reflects every failure kind across hosts.
func flattenErrors(errs []error) orchestrator.Error {
	var all orchestrator.Error
	for _, err := range errs {
		if hostErrs, ok := err.(orchestrator.Error); ok {
			all = append(all, hostErrs...)
			continue
		}
		all = append(all, err)
	}
	return all
}

func processError(errs orchestrator.Error) error {
	if errs.IsNil() {
		return nil
	}

	exitCode, errorMessage, errorWithStackTrace := orchestrator.ProcessError(errs)
	if err := writeStackTrace(errorWithStackTrace); err != nil {
		errorMessage = errorMessage + "\n" + err.Error()
	}

	return cli.NewExitError(errorMessage, exitCode)
}

func writeStackTrace(errorWithStackTrace string) error {
	if errorWithStackTrace != "" {
		return os.WriteFile(fmt.Sprintf("gitship-%s.err.log", time.Now().UTC().Format(time.RFC3339)), []byte(errorWithStackTrace), 0644)
	}
	return nil
}

// confirm pauses the log writers, asks the operator a yes/no question
// and resumes them afterwards.
func confirm(question string) bool {
	factory.ApplicationLoggerStdout.Pause()
	factory.ApplicationLoggerStderr.Pause()
	defer factory.ApplicationLoggerStdout.Resume()
	defer factory.ApplicationLoggerStderr.Resume()

	fmt.Fprintf(os.Stdout, "%s (yes/no): ", question)
	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(input)) == "yes"
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
