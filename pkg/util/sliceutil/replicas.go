package sliceutil

import (
	"math"

	"github.com/hueshift-cloud/hueshift/pkg/model"
)

// DeriveReplicaCountFromTraffic sizes a slice so it can absorb the requested
// share of the source's traffic, always rounding up and never below one.
func DeriveReplicaCountFromTraffic(maxReplicas int32, trafficPercentage uint32) int32 {
	percentReps := float32(maxReplicas) * (float32(trafficPercentage) / float32(model.TotalRoutingWeight))
	reps := int32(math.Ceil(float64(percentReps)))
	if reps < 1 {
		reps = 1
	}
	return reps
}
