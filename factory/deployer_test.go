package factory_test

import (
	"github.com/gitship/gitship/config"
	"github.com/gitship/gitship/deployer"
	"github.com/gitship/gitship/factory"
	"github.com/gitship/gitship/orchestrator"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildHostExecutables", func() {
	var logger boshlog.Logger

	noopTask := func(deployer.Deployer) deployer.Task {
		return func(config.Config) orchestrator.Error { return nil }
	}

	BeforeEach(func() {
		logger = boshlog.NewLogger(boshlog.LevelNone)
	})

	It("rejects a config without a repository url before building anything", func() {
		conf := config.Config{
			AppName: "widgets",
			Hosts:   []string{"widgets.example.com"},
		}

		_, err := factory.BuildHostExecutables(conf, noopTask, logger)

		Expect(err).To(BeAssignableToTypeOf(orchestrator.ConfigError{}))
		Expect(err).To(MatchError(ContainSubstring("repository_url")))
	})

	It("rejects a config without hosts", func() {
		conf := config.Config{
			AppName:       "widgets",
			RepositoryURL: "git@example.com:acme/widgets.git",
		}

		_, err := factory.BuildHostExecutables(conf, noopTask, logger)

		Expect(err).To(MatchError(ContainSubstring("no hosts configured")))
	})

	It("fails when the private key cannot be read", func() {
		conf := config.Config{
			AppName:        "widgets",
			RepositoryURL:  "git@example.com:acme/widgets.git",
			Hosts:          []string{"widgets.example.com"},
			PrivateKeyPath: "/nonexistent/id_rsa",
		}

		_, err := factory.BuildHostExecutables(conf, noopTask, logger)

		Expect(err).To(MatchError(ContainSubstring("reading private key")))
	})
})
