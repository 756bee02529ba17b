package connection

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	pb "ibc-lab/proto/connection"
)

// Default version negotiated when the initiator expresses no preference.
const (
	DefaultVersionIdentifier = "1"

	FeatureOrderOrdered   = "ORDER_ORDERED"
	FeatureOrderUnordered = "ORDER_UNORDERED"
)

// Version pairs a protocol version identifier with the channel ordering
// features it supports.
type Version struct {
	Identifier string
	Features   []string
}

// DefaultVersion returns the version proposed when none is requested.
func DefaultVersion() Version {
	return Version{
		Identifier: DefaultVersionIdentifier,
		Features:   []string{FeatureOrderOrdered, FeatureOrderUnordered},
	}
}

// DecodeVersion validates a wire version into its domain form.
// The identifier and every listed feature must be non-blank.
func DecodeVersion(raw *pb.RawVersion) (Version, error) {
	if strings.TrimSpace(raw.Identifier) == "" {
		return Version{}, ErrEmptyVersionIdentifier
	}
	for i, feature := range raw.Features {
		if strings.TrimSpace(feature) == "" {
			return Version{}, fmt.Errorf("%w: index %d", ErrEmptyVersionFeature, i)
		}
	}
	return Version{
		Identifier: raw.Identifier,
		Features:   append([]string(nil), raw.Features...),
	}, nil
}

// ToRaw renders the version back to wire form.
func (v Version) ToRaw() *pb.RawVersion {
	return &pb.RawVersion{
		Identifier: v.Identifier,
		Features:   append([]string(nil), v.Features...),
	}
}

// SupportsFeature reports whether the version lists the given feature.
func (v Version) SupportsFeature(feature string) bool {
	return lo.Contains(v.Features, feature)
}
