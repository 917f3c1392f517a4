package release

import (
	"github.com/gitship/gitship/orchestrator"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_tag_lister.go . TagLister
type TagLister interface {
	ReleaseTags() ([]string, error)
}

// TagListerFunc adapts a listing function to the TagLister interface,
// binding a repository path captured by the caller.
type TagListerFunc func() ([]string, error)

func (f TagListerFunc) ReleaseTags() ([]string, error) {
	return f()
}

// Resolver computes the latest and previous release from the tags in
// the remote repository. Tag names that do not conform to the release
// naming convention are ignored.
type Resolver struct {
	tagLister TagLister
}

func NewResolver(tagLister TagLister) Resolver {
	return Resolver{tagLister: tagLister}
}

// Latest returns the most recent release tag, or found=false when the
// repository has no conforming tags.
func (resolver Resolver) Latest() (string, bool, error) {
	return resolver.LatestExcluding("")
}

// LatestExcluding returns the most recent release tag ignoring the
// given tag value. It is the rollback target lookup: after deleting the
// latest tag, the previous release is the latest excluding it.
func (resolver Resolver) LatestExcluding(excluded string) (string, bool, error) {
	tags, err := resolver.tagLister.ReleaseTags()
	if err != nil {
		return "", false, orchestrator.NewTagResolutionError(err)
	}

	latest := ""
	for _, tag := range tags {
		if !IsReleaseTag(tag) || tag == excluded {
			continue
		}
		if tag > latest {
			latest = tag
		}
	}

	return latest, latest != "", nil
}
