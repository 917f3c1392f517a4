package release_test

import (
	"time"

	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/release"
	"github.com/gitship/gitship/release/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("NewTimestampTag", func() {
	It("formats the time as a fixed-width UTC timestamp", func() {
		now := func() time.Time {
			return time.Date(2023, 8, 15, 9, 30, 0, 0, time.UTC)
		}
		Expect(release.NewTimestampTag(now)).To(Equal("20230815093000"))
	})

	It("converts local times to UTC", func() {
		now := func() time.Time {
			return time.Date(2023, 8, 15, 9, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
		}
		Expect(release.NewTimestampTag(now)).To(Equal("20230815073000"))
	})
})

var _ = Describe("Resolver", func() {
	var (
		tagLister *fakes.FakeTagLister
		resolver  release.Resolver
	)

	BeforeEach(func() {
		tagLister = new(fakes.FakeTagLister)
		resolver = release.NewResolver(tagLister)
	})

	Describe("Latest", func() {
		It("returns the chronologically newest release tag", func() {
			tagLister.ReleaseTagsReturns([]string{
				"20230101000000",
				"20230601120000",
				"20230815093000",
			}, nil)

			latest, found, err := resolver.Latest()

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(latest).To(Equal("20230815093000"))
		})

		It("ignores tags that do not follow the release naming convention", func() {
			tagLister.ReleaseTagsReturns([]string{
				"v1.2.3",
				"20230601120000",
				"release-candidate",
				"2023",
			}, nil)

			latest, found, err := resolver.Latest()

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(latest).To(Equal("20230601120000"))
		})

		It("reports no tag when the repository has none", func() {
			tagLister.ReleaseTagsReturns(nil, nil)

			_, found, err := resolver.Latest()

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("returns a tag resolution error when listing fails", func() {
			tagLister.ReleaseTagsReturns(nil, errors.New("connection reset"))

			_, _, err := resolver.Latest()

			Expect(err).To(BeAssignableToTypeOf(orchestrator.TagResolutionError{}))
			Expect(err).To(MatchError(ContainSubstring("connection reset")))
		})
	})

	Describe("LatestExcluding", func() {
		It("returns the newest tag after ignoring the excluded one", func() {
			tagLister.ReleaseTagsReturns([]string{
				"20230101000000",
				"20230601120000",
				"20230815093000",
			}, nil)

			previous, found, err := resolver.LatestExcluding("20230815093000")

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(previous).To(Equal("20230601120000"))
		})

		It("reports no tag when the excluded tag was the only one", func() {
			tagLister.ReleaseTagsReturns([]string{"20230815093000"}, nil)

			_, found, err := resolver.LatestExcluding("20230815093000")

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})
})
