package model

import (
	"github.com/hueshift-cloud/hueshift/core/kube/kconfig"
	appsv1 "k8s.io/api/apps/v1"
)

// TotalRoutingWeight is the denominator for slice traffic percentages.
const TotalRoutingWeight uint32 = 100

type Color string

const (
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
)

func (c Color) Valid() bool {
	return c == ColorBlue || c == ColorGreen
}

// Other returns the opposing color of a blue/green pair.
func (c Color) Other() Color {
	if c == ColorBlue {
		return ColorGreen
	}
	return ColorBlue
}

type SliceSpec struct {
	Opt kconfig.Opt

	// Name of the service the slice belongs to. The fronting Service and the
	// source Deployment are expected to carry this name.
	ServiceName string

	Color Color

	// Image repository without a tag. The slice color is the tag.
	ImageRepo string

	ContainerPort int32

	// Replicas takes precedence over TrafficPercentage when both are set.
	Replicas          int32
	TrafficPercentage uint32

	Resources ResourceBounds
}

// ResourceBounds carries the request/limit pair for the slice's container as
// unparsed quantity strings.
type ResourceBounds struct {
	RequestsCPU    string
	RequestsMemory string
	LimitsCPU      string
	LimitsMemory   string
}

type DeleteSliceSpec struct {
	Opt  kconfig.Opt
	Name string
}

type PromoteSliceSpec struct {
	Opt  kconfig.Opt
	Name string
}

type Slice struct {
	Name              string
	ServiceName       string
	Color             Color
	TrafficPercentage uint32
	Deploy            *appsv1.Deployment
}
