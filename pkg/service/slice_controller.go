package service

import (
	"github.com/hueshift-cloud/hueshift/core/kube/kconfig"
	"github.com/hueshift-cloud/hueshift/pkg/exchange"
	"github.com/hueshift-cloud/hueshift/pkg/model"
)

const SliceControllerServiceKey = "SliceControllerService"

// SliceControllerService translates between the API exchange types and the
// slice domain model.
type SliceControllerService interface {
	Create(req *exchange.CreateSliceRequest) (*exchange.CreateSliceResponse, error)
	Delete(req *exchange.DeleteSliceRequest) error
	Promote(req *exchange.PromoteSliceRequest) (*exchange.PromoteSliceResponse, error)
	Manifest(req *exchange.GetManifestRequest) ([]byte, error)
}

type sliceControllerService struct {
	SliceService SliceService `inject:"SliceService"`
}

func (s *sliceControllerService) Create(req *exchange.CreateSliceRequest) (*exchange.CreateSliceResponse, error) {
	spec := &model.SliceSpec{
		Opt:               kconfig.Opt{Namespace: req.Namespace},
		ServiceName:       req.ServiceName,
		Color:             model.Color(req.Color),
		ImageRepo:         req.ImageRepo,
		ContainerPort:     req.ContainerPort,
		Replicas:          req.Replicas,
		TrafficPercentage: req.TrafficPercentage,
		Resources: model.ResourceBounds{
			RequestsCPU:    req.Resources.Requests.CPU,
			RequestsMemory: req.Resources.Requests.Memory,
			LimitsCPU:      req.Resources.Limits.CPU,
			LimitsMemory:   req.Resources.Limits.Memory,
		},
	}

	slice, err := s.SliceService.Create(spec)
	if err != nil {
		return nil, err
	}

	return &exchange.CreateSliceResponse{Data: toExchange(slice, req.Namespace)}, nil
}

func (s *sliceControllerService) Delete(req *exchange.DeleteSliceRequest) error {
	return s.SliceService.Delete(&model.DeleteSliceSpec{
		Opt:  kconfig.Opt{Namespace: req.Namespace},
		Name: req.Name,
	})
}

func (s *sliceControllerService) Promote(req *exchange.PromoteSliceRequest) (*exchange.PromoteSliceResponse, error) {
	slice, err := s.SliceService.Promote(&model.PromoteSliceSpec{
		Opt:  kconfig.Opt{Namespace: req.Namespace},
		Name: req.Name,
	})
	if err != nil {
		return nil, err
	}

	return &exchange.PromoteSliceResponse{Data: toExchange(slice, req.Namespace)}, nil
}

func (s *sliceControllerService) Manifest(req *exchange.GetManifestRequest) ([]byte, error) {
	return s.SliceService.Manifest(req.Name, kconfig.Opt{Namespace: req.Namespace})
}

func toExchange(slice *model.Slice, namespace string) *exchange.Slice {
	out := &exchange.Slice{
		Name:              slice.Name,
		Namespace:         namespace,
		ServiceName:       slice.ServiceName,
		Color:             string(slice.Color),
		TrafficPercentage: slice.TrafficPercentage,
	}
	if slice.Deploy != nil && slice.Deploy.Spec.Replicas != nil {
		out.Replicas = *slice.Deploy.Spec.Replicas
	}
	return out
}
