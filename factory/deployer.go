package factory

import (
	"os"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/pkg/errors"
	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/gitship/gitship/config"
	"github.com/gitship/gitship/deployer"
	"github.com/gitship/gitship/executor"
	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/ssh"
)

// BuildDeployer wires the object graph for one host: SSH connection,
// remote repository gateway, deployer.
func BuildDeployer(host string, conf config.Config, logger boshlog.Logger) (deployer.Deployer, error) {
	privateKey, err := os.ReadFile(conf.PrivateKeyPath)
	if err != nil {
		return deployer.Deployer{}, errors.Wrapf(err, "reading private key '%s'", conf.PrivateKeyPath)
	}

	hostKeyCallback, err := buildHostKeyCallback(conf, logger)
	if err != nil {
		return deployer.Deployer{}, err
	}

	connection, err := ssh.NewConnection(host, conf.Username, string(privateKey), hostKeyCallback, logger)
	if err != nil {
		return deployer.Deployer{}, err
	}

	repository := ssh.NewGitRemoteRepository(connection, logger)
	return deployer.NewDeployer(repository, logger, time.Now), nil
}

// BuildHostExecutables validates the configuration and builds one
// executable per configured host. Validation happens before any
// connection is dialled, so a bad config issues zero remote operations.
func BuildHostExecutables(conf config.Config, taskFor func(deployer.Deployer) deployer.Task, logger boshlog.Logger) ([]executor.Executable, error) {
	if err := conf.Validate(); err != nil {
		return nil, orchestrator.NewConfigError(err.Error())
	}
	if len(conf.Hosts) == 0 {
		return nil, orchestrator.NewConfigError("no hosts configured")
	}

	var executables []executor.Executable
	for _, host := range conf.Hosts {
		d, err := BuildDeployer(host, conf, logger)
		if err != nil {
			return nil, err
		}
		executables = append(executables, deployer.NewHostExecutable(host, conf, taskFor(d), logger))
	}
	return executables, nil
}

func buildHostKeyCallback(conf config.Config, logger boshlog.Logger) (gossh.HostKeyCallback, error) {
	if conf.KnownHostsPath == "" {
		logger.Warn("factory", "No known_hosts_path configured, skipping host key verification")
		return gossh.InsecureIgnoreHostKey(), nil
	}

	callback, err := knownhosts.New(conf.KnownHostsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "loading known hosts from '%s'", conf.KnownHostsPath)
	}
	return callback, nil
}
