package config_test

import (
	"os"
	"path/filepath"

	"github.com/gitship/gitship/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("Load", func() {
		var configDir string

		BeforeEach(func() {
			configDir = GinkgoT().TempDir()
		})

		writeConfig := func(contents string) string {
			configPath := filepath.Join(configDir, "gitship.yml")
			Expect(os.WriteFile(configPath, []byte(contents), 0644)).To(Succeed())
			return configPath
		}

		It("parses a config file and applies defaults", func() {
			configPath := writeConfig(`
app_name: widgets
repository_url: git@example.com:acme/widgets.git
hosts:
  - widgets.example.com
username: deploy
`)

			conf, err := config.Load(configPath)

			Expect(err).NotTo(HaveOccurred())
			Expect(conf.AppName).To(Equal("widgets"))
			Expect(conf.RepositoryURL).To(Equal("git@example.com:acme/widgets.git"))
			Expect(conf.DeployTo).To(Equal("/var/www/widgets"))
			Expect(conf.Branch).To(Equal("master"))
			Expect(conf.Group).To(Equal("widgets"))
			Expect(conf.ReleaseMessage).To(Equal("deployed by gitship"))
			Expect(conf.Hosts).To(ConsistOf("widgets.example.com"))
		})

		It("keeps explicit values over defaults", func() {
			configPath := writeConfig(`
app_name: widgets
repository_url: git@example.com:acme/widgets.git
deploy_to: /srv/widgets
branch: production
group: www-data
`)

			conf, err := config.Load(configPath)

			Expect(err).NotTo(HaveOccurred())
			Expect(conf.DeployTo).To(Equal("/srv/widgets"))
			Expect(conf.Branch).To(Equal("production"))
			Expect(conf.Group).To(Equal("www-data"))
		})

		It("errors when the file does not exist", func() {
			_, err := config.Load(filepath.Join(configDir, "missing.yml"))
			Expect(err).To(MatchError(ContainSubstring("reading config file")))
		})

		It("errors when the file is not valid yaml", func() {
			configPath := writeConfig(`{app_name`)
			_, err := config.Load(configPath)
			Expect(err).To(MatchError(ContainSubstring("parsing config file")))
		})
	})

	Describe("Validate", func() {
		It("accepts a config with the required values", func() {
			conf := config.Config{
				AppName:       "widgets",
				RepositoryURL: "git@example.com:acme/widgets.git",
			}
			Expect(conf.Validate()).To(Succeed())
		})

		It("rejects a missing app name", func() {
			conf := config.Config{RepositoryURL: "git@example.com:acme/widgets.git"}
			Expect(conf.Validate()).To(MatchError(ContainSubstring("app_name")))
		})

		It("rejects a missing repository url", func() {
			conf := config.Config{AppName: "widgets"}
			Expect(conf.Validate()).To(MatchError(ContainSubstring("repository_url")))
		})
	})
})
