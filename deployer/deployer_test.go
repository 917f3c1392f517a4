package deployer_test

import (
	"time"

	"github.com/gitship/gitship/config"
	"github.com/gitship/gitship/deployer"
	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/orchestrator/fakes"
	sshfakes "github.com/gitship/gitship/ssh/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Deployer", func() {
	var (
		repository *sshfakes.FakeRemoteRepository
		logger     *fakes.FakeLogger
		d          deployer.Deployer
		conf       config.Config
		calls      []string
	)

	now := func() time.Time {
		return time.Date(2023, 8, 15, 9, 30, 0, 0, time.UTC)
	}

	record := func(name string, result error) func() error {
		return func() error {
			calls = append(calls, name)
			return result
		}
	}

	BeforeEach(func() {
		repository = new(sshfakes.FakeRemoteRepository)
		logger = new(fakes.FakeLogger)
		d = deployer.NewDeployer(repository, logger, now)
		calls = nil

		conf = config.Config{
			AppName:        "widgets",
			RepositoryURL:  "git@example.com:acme/widgets.git",
			DeployTo:       "/var/www/widgets",
			Branch:         "master",
			Group:          "widgets",
			ReleaseMessage: "deployed by gitship",
		}

		repository.CreateDirectoryCalls(func(string) error { return record("mkdir", nil)() })
		repository.CloneRepositoryCalls(func(string, string) error { return record("clone", nil)() })
		repository.FetchCalls(func(string) error { return record("fetch", nil)() })
		repository.HardResetToRevisionCalls(func(_, revision string) error {
			return record("reset "+revision, nil)()
		})
		repository.CreateTagCalls(func(_, tag, _ string) error { return record("tag "+tag, nil)() })
		repository.DeleteTagCalls(func(_, tag string) error { return record("untag "+tag, nil)() })
		repository.ChangeGroupOwnershipCalls(func(string, string) error { return record("chgrp", nil)() })
		repository.RunCommandCalls(func(cmd string) (string, error) { return "", record("run "+cmd, nil)() })
	})

	Describe("Setup", func() {
		It("clones the repository and then fixes ownership", func() {
			errs := d.Setup(conf)

			Expect(errs).To(BeNil())
			Expect(calls).To(Equal([]string{"mkdir", "clone", "chgrp"}))

			repoURL, path := repository.CloneRepositoryArgsForCall(0)
			Expect(repoURL).To(Equal("git@example.com:acme/widgets.git"))
			Expect(path).To(Equal("/var/www/widgets"))

			path, group := repository.ChangeGroupOwnershipArgsForCall(0)
			Expect(path).To(Equal("/var/www/widgets"))
			Expect(group).To(Equal("widgets"))
		})

		It("removes the deploy path when a later step fails", func() {
			repository.ChangeGroupOwnershipCalls(func(string, string) error {
				return record("chgrp", errors.New("chgrp failed"))()
			})
			repository.RemoveDirectoryCalls(func(string) error { return record("rm", nil)() })

			errs := d.Setup(conf)

			Expect(errs).To(HaveLen(1))
			Expect(errs[0]).To(MatchError(ContainSubstring("chgrp failed")))
			Expect(calls).To(Equal([]string{"mkdir", "clone", "chgrp", "rm"}))
		})

		It("refuses to run without a repository url", func() {
			conf.RepositoryURL = ""

			errs := d.Setup(conf)

			Expect(errs[0]).To(BeAssignableToTypeOf(orchestrator.ConfigError{}))
			Expect(repository.Invocations()).To(BeEmpty())
		})
	})

	Describe("Deploy", func() {
		BeforeEach(func() {
			conf.RestartCommand = "systemctl restart widgets"
			repository.ReleaseTagsReturns([]string{"20230601120000"}, nil)
		})

		It("updates the code, fixes ownership, tags the release and restarts", func() {
			errs := d.Deploy(conf)

			Expect(errs).To(BeNil())
			Expect(calls).To(Equal([]string{
				"fetch",
				"reset origin/master",
				"chgrp",
				"tag 20230815093000",
				"run systemctl restart widgets",
			}))

			path, tag, message := repository.CreateTagArgsForCall(0)
			Expect(path).To(Equal("/var/www/widgets"))
			Expect(tag).To(Equal("20230815093000"))
			Expect(message).To(Equal("deployed by gitship"))
		})

		It("skips the restart hook when none is configured", func() {
			conf.RestartCommand = ""

			Expect(d.Deploy(conf)).To(BeNil())
			Expect(repository.RunCommandCallCount()).To(BeZero())
		})

		Context("when the tag step fails", func() {
			BeforeEach(func() {
				repository.CreateTagCalls(func(_, tag, _ string) error {
					return record("tag "+tag, errors.New("tag exists"))()
				})
			})

			It("resets back to the previous release and never restarts", func() {
				errs := d.Deploy(conf)

				Expect(errs).To(HaveLen(1))
				Expect(errs[0]).To(MatchError(ContainSubstring("tag exists")))
				Expect(calls).To(Equal([]string{
					"fetch",
					"reset origin/master",
					"chgrp",
					"tag 20230815093000",
					"reset 20230601120000",
				}))
				Expect(repository.RunCommandCallCount()).To(BeZero())
			})

			It("skips the reset when no release existed before the deploy", func() {
				repository.ReleaseTagsReturns(nil, nil)

				errs := d.Deploy(conf)

				Expect(errs).To(HaveLen(1))
				Expect(calls).To(Equal([]string{
					"fetch",
					"reset origin/master",
					"chgrp",
					"tag 20230815093000",
				}))
			})
		})

		Context("when a compensator fails", func() {
			It("reports the compensation failure alongside the original one", func() {
				repository.CreateTagCalls(func(_, tag, _ string) error {
					return record("tag "+tag, errors.New("tag exists"))()
				})
				repository.HardResetToRevisionCalls(func(_, revision string) error {
					if revision == "20230601120000" {
						return record("reset "+revision, errors.New("reset failed"))()
					}
					return record("reset "+revision, nil)()
				})

				errs := d.Deploy(conf)

				Expect(errs).To(HaveLen(2))
				Expect(errs[0]).To(MatchError(ContainSubstring("tag exists")))
				Expect(errs[1]).To(BeAssignableToTypeOf(orchestrator.CompensationError{}))
				Expect(errs[1]).To(MatchError(ContainSubstring("reset failed")))
			})
		})

		It("fails before touching the host when tag listing fails", func() {
			repository.ReleaseTagsReturns(nil, errors.New("garbled listing"))

			errs := d.Deploy(conf)

			Expect(errs).To(HaveLen(1))
			Expect(errs[0]).To(BeAssignableToTypeOf(orchestrator.TagResolutionError{}))
			Expect(repository.FetchCallCount()).To(BeZero())
		})

		It("refuses to run without an app name", func() {
			conf.AppName = ""

			errs := d.Deploy(conf)

			Expect(errs[0]).To(BeAssignableToTypeOf(orchestrator.ConfigError{}))
			Expect(repository.Invocations()).To(BeEmpty())
		})
	})

	Describe("Rollback", func() {
		It("deletes the latest tag and resets to the previous release", func() {
			repository.ReleaseTagsReturns([]string{
				"20230101000000",
				"20230601120000",
				"20230815093000",
			}, nil)

			errs := d.Rollback(conf)

			Expect(errs).To(BeNil())
			Expect(calls).To(Equal([]string{
				"untag 20230815093000",
				"reset 20230601120000",
			}))
		})

		It("only deletes the tag when it was the last release", func() {
			repository.ReleaseTagsReturns([]string{"20230815093000"}, nil)

			errs := d.Rollback(conf)

			Expect(errs).To(BeNil())
			Expect(calls).To(Equal([]string{"untag 20230815093000"}))
		})

		It("is a no-op when there are no release tags", func() {
			repository.ReleaseTagsReturns(nil, nil)

			errs := d.Rollback(conf)

			Expect(errs).To(BeNil())
			Expect(repository.DeleteTagCallCount()).To(BeZero())
			Expect(repository.HardResetToRevisionCallCount()).To(BeZero())
		})

		It("supports rolling back twice after a single deploy", func() {
			repository.ReleaseTagsReturnsOnCall(0, []string{"20230601120000", "20230815093000"}, nil)
			repository.ReleaseTagsReturnsOnCall(1, []string{"20230601120000", "20230815093000"}, nil)
			repository.ReleaseTagsReturnsOnCall(2, []string{"20230601120000"}, nil)
			repository.ReleaseTagsReturnsOnCall(3, []string{"20230601120000"}, nil)

			Expect(d.Rollback(conf)).To(BeNil())
			Expect(calls).To(Equal([]string{
				"untag 20230815093000",
				"reset 20230601120000",
			}))

			calls = nil
			Expect(d.Rollback(conf)).To(BeNil())
			Expect(calls).To(Equal([]string{"untag 20230601120000"}))
		})
	})
})
