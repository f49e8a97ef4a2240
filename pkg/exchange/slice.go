package exchange

import (
	"github.com/hueshift-cloud/hueshift/core/except"
	"github.com/hueshift-cloud/hueshift/pkg/model"
)

type Slice struct {
	Name              string `json:"name"`
	Namespace         string `json:"namespace"`
	ServiceName       string `json:"service_name"`
	Color             string `json:"color"`
	TrafficPercentage uint32 `json:"traffic_percentage"`
	Replicas          int32  `json:"replicas"`
}

type CreateSliceRequest struct {
	Namespace         string `param:"namespace"`
	ServiceName       string `json:"service_name"`
	Color             string `json:"color"`
	ImageRepo         string `json:"image_repo"`
	ContainerPort     int32  `json:"container_port"`
	Replicas          int32  `json:"replicas"`
	TrafficPercentage uint32 `json:"traffic_percentage"`

	Resources ResourceBounds `json:"resources"`
}

type ResourceBounds struct {
	Requests ResourcePair `json:"requests"`
	Limits   ResourcePair `json:"limits"`
}

type ResourcePair struct {
	CPU    string `json:"cpu"`
	Memory string `json:"memory"`
}

func (c *CreateSliceRequest) Validate() error {
	if c.ServiceName == "" {
		return except.NewError("ServiceName field is required.", except.ErrInvalid)
	}
	if c.Namespace == "" {
		return except.NewError("Namespace field is required.", except.ErrInvalid)
	}
	if !model.Color(c.Color).Valid() {
		return except.NewError("%s is not a valid slice color. Valid colors are %s and %s.",
			except.ErrInvalid, c.Color, model.ColorBlue, model.ColorGreen)
	}
	if c.TrafficPercentage > model.TotalRoutingWeight {
		return except.NewError("The traffic percentage must not exceed %d.",
			except.ErrInvalid, model.TotalRoutingWeight)
	}
	if c.Replicas == 0 && c.TrafficPercentage == 0 {
		return except.NewError("Either the replicas or the traffic percentage must be set.", except.ErrInvalid)
	}
	return nil
}

type CreateSliceResponse struct {
	Data *Slice `json:"data"`
}

type DeleteSliceRequest struct {
	Name      string `param:"name"`
	Namespace string `param:"namespace"`
}

type PromoteSliceRequest struct {
	Name      string `param:"name"`
	Namespace string `param:"namespace"`
}

type PromoteSliceResponse struct {
	Data *Slice `json:"data"`
}

type GetManifestRequest struct {
	Name      string `param:"name"`
	Namespace string `param:"namespace"`
}
