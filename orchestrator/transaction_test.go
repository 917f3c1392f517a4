package orchestrator_test

import (
	"github.com/gitship/gitship/config"
	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/orchestrator/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Transaction", func() {
	var (
		logger  *fakes.FakeLogger
		session *orchestrator.Session
		calls   []string
	)

	recordingStep := func(name string, err error) orchestrator.Step {
		return orchestrator.NewStep(name, func(*orchestrator.Session) error {
			calls = append(calls, name)
			return err
		})
	}

	recordingCompensator := func(name string, err error) orchestrator.Action {
		return func(*orchestrator.Session) error {
			calls = append(calls, "undo "+name)
			return err
		}
	}

	BeforeEach(func() {
		logger = new(fakes.FakeLogger)
		session = orchestrator.NewSession(config.Config{AppName: "widgets"})
		calls = nil
	})

	Context("when every step succeeds", func() {
		It("commits without running any compensator", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", nil).WithCompensator(recordingCompensator("one", nil)),
				recordingStep("two", nil).WithCompensator(recordingCompensator("two", nil)),
				recordingStep("three", nil),
			)

			errs := transaction.Run(session)

			Expect(errs).To(BeNil())
			Expect(calls).To(Equal([]string{"one", "two", "three"}))
			Expect(transaction.State()).To(Equal(orchestrator.StateCommitted))
		})
	})

	Context("when a step fails", func() {
		It("compensates every prior step in reverse order and skips later steps", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", nil).WithCompensator(recordingCompensator("one", nil)),
				recordingStep("two", nil).WithCompensator(recordingCompensator("two", nil)),
				recordingStep("three", errors.New("fetch failed")),
				recordingStep("four", nil).WithCompensator(recordingCompensator("four", nil)),
			)

			errs := transaction.Run(session)

			Expect(errs).To(ConsistOf(MatchError(ContainSubstring("fetch failed"))))
			Expect(calls).To(Equal([]string{"one", "two", "three", "undo two", "undo one"}))
			Expect(transaction.State()).To(Equal(orchestrator.StateRolledBack))
		})

		It("skips prior steps without a compensator", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", nil).WithCompensator(recordingCompensator("one", nil)),
				recordingStep("two", nil),
				recordingStep("three", errors.New("boom")),
			)

			transaction.Run(session)

			Expect(calls).To(Equal([]string{"one", "two", "three", "undo one"}))
		})

		It("performs no compensation calls when no step defines one", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", nil),
				recordingStep("two", errors.New("boom")),
			)

			errs := transaction.Run(session)

			Expect(errs).To(HaveLen(1))
			Expect(calls).To(Equal([]string{"one", "two"}))
		})

		It("wraps the failure as a RemoteCommandError", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", errors.New("boom")),
			)

			errs := transaction.Run(session)

			Expect(errs[0]).To(BeAssignableToTypeOf(orchestrator.RemoteCommandError{}))
		})

		It("preserves an already-typed tag resolution failure", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", orchestrator.NewTagResolutionError(errors.New("garbled listing"))),
			)

			errs := transaction.Run(session)

			Expect(errs[0]).To(BeAssignableToTypeOf(orchestrator.TagResolutionError{}))
		})
	})

	Context("when a compensator fails", func() {
		It("still runs the remaining compensators and records every failure", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", nil).WithCompensator(recordingCompensator("one", nil)),
				recordingStep("two", nil).WithCompensator(recordingCompensator("two", errors.New("undo two failed"))),
				recordingStep("three", errors.New("boom")),
			)

			errs := transaction.Run(session)

			Expect(calls).To(Equal([]string{"one", "two", "three", "undo two", "undo one"}))
			Expect(errs).To(HaveLen(2))
			Expect(errs[0]).To(MatchError(ContainSubstring("boom")))
			Expect(errs[1]).To(BeAssignableToTypeOf(orchestrator.CompensationError{}))
			Expect(errs[1]).To(MatchError(ContainSubstring("undo two failed")))
			Expect(errs.ContainsCompensationFailure()).To(BeTrue())
		})

		It("never reports the transaction as committed", func() {
			transaction := orchestrator.NewTransaction(logger,
				recordingStep("one", nil).WithCompensator(recordingCompensator("one", errors.New("undo failed"))),
				recordingStep("two", errors.New("boom")),
			)

			errs := transaction.Run(session)

			Expect(errs.IsNil()).To(BeFalse())
			Expect(transaction.State()).To(Equal(orchestrator.StateRolledBack))
		})
	})
})
