package service

import (
	"github.com/google/uuid"
	"github.com/hueshift-cloud/hueshift/core/except"
	"github.com/hueshift-cloud/hueshift/core/kube"
	"github.com/hueshift-cloud/hueshift/core/kube/kconfig"
	"github.com/hueshift-cloud/hueshift/core/kube/kubeutil"
	"github.com/hueshift-cloud/hueshift/pkg/config"
	"github.com/hueshift-cloud/hueshift/pkg/factory"
	"github.com/hueshift-cloud/hueshift/pkg/meta"
	"github.com/hueshift-cloud/hueshift/pkg/model"
	"github.com/hueshift-cloud/hueshift/pkg/model/consts"
	"github.com/hueshift-cloud/hueshift/pkg/util/sliceutil"
	log "github.com/sirupsen/logrus"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const SliceServiceKey = "SliceService"

type SliceService interface {
	Create(spec *model.SliceSpec) (*model.Slice, error)
	Delete(spec *model.DeleteSliceSpec) error

	// Promote waits for the slice to be ready and then points the fronting
	// Service's selector at the slice's color.
	Promote(spec *model.PromoteSliceSpec) (*model.Slice, error)

	Manifest(name string, opt kconfig.Opt) ([]byte, error)
}

type sliceService struct {
	KubeClient   kube.Client          `inject:"KubeClient"`
	SliceFactory factory.SliceFactory `inject:"SliceFactory"`
	Config       *config.Config       `inject:"Config"`
}

func (s *sliceService) Create(spec *model.SliceSpec) (*model.Slice, error) {
	numReplicas := spec.Replicas
	if numReplicas <= 0 {
		source, err := s.KubeClient.GetDeploy(spec.ServiceName, spec.Opt)
		if err != nil {
			return nil, err
		}
		maxReplicas := int32(1)
		if source.Spec.Replicas != nil {
			maxReplicas = *source.Spec.Replicas
		}
		numReplicas = sliceutil.DeriveReplicaCountFromTraffic(maxReplicas, spec.TrafficPercentage)
	}

	var dep *appsv1.Deployment
	if spec.ImageRepo == "" {
		source, err := s.KubeClient.GetDeploy(spec.ServiceName, spec.Opt)
		if err != nil {
			return nil, err
		}
		dep = s.SliceFactory.FromDeployment(source, spec.Color, numReplicas)
		if err := s.SliceFactory.Validate(dep); err != nil {
			return nil, err
		}
	} else {
		var err error
		dep, err = s.SliceFactory.FromSpec(spec, numReplicas)
		if err != nil {
			return nil, err
		}
	}

	anno := &meta.Slice{
		SliceId: uuid.New().String(),
		SourceObj: meta.ObjRef{
			Name:      spec.ServiceName,
			Kind:      "Deployment",
			Namespace: spec.Opt.Namespace,
		},
		Color:             string(spec.Color),
		TrafficPercentage: spec.TrafficPercentage,
	}
	dep.Annotations = meta.Merge(dep.Annotations, anno)

	created, err := s.KubeClient.CreateDeploy(dep, spec.Opt)
	if err != nil {
		return nil, err
	}

	log.WithField("name", created.Name).
		WithField("namespace", created.Namespace).
		WithField("color", spec.Color).
		WithField("replicas", numReplicas).
		Info("Created slice")

	return &model.Slice{
		Name:              created.Name,
		ServiceName:       spec.ServiceName,
		Color:             spec.Color,
		TrafficPercentage: spec.TrafficPercentage,
		Deploy:            created,
	}, nil
}

func (s *sliceService) Delete(spec *model.DeleteSliceSpec) error {
	dep, err := s.KubeClient.GetDeploy(spec.Name, spec.Opt)
	if err != nil {
		return err
	}

	if dep.Labels[consts.LabelKeyResource] != consts.LabelValueResourceSlice {
		return except.NewError("Deploy %s is not a slice", except.ErrUnsupported, spec.Name)
	}
	if _, err := sliceutil.ServiceNameFromLabels(dep.Labels); err != nil {
		return except.NewError("Deploy %s is not a slice", except.ErrUnsupported, spec.Name)
	}

	// refuse to delete the live side of the pair
	podNamespace := kubeutil.DeploymentPodNamespace(dep)
	svcs, err := s.KubeClient.ListServices(metav1.ListOptions{}, kconfig.Opt{Namespace: podNamespace, Context: spec.Opt.Context})
	if err != nil {
		return err
	}
	if fronting := kubeutil.MatchedServices(dep.Spec.Template.Labels, svcs.Items); len(fronting) > 0 {
		return except.NewError("Slice %s is still selected by the %s service",
			except.ErrConflict, spec.Name, fronting[0].Name)
	}

	if err := s.KubeClient.DeleteDeploy(spec.Name, spec.Opt); err != nil {
		return err
	}

	log.WithField("name", spec.Name).
		WithField("namespace", spec.Opt.Namespace).
		Info("Deleted slice")
	return nil
}

func (s *sliceService) Promote(spec *model.PromoteSliceSpec) (*model.Slice, error) {
	dep, err := s.KubeClient.GetDeploy(spec.Name, spec.Opt)
	if err != nil {
		return nil, err
	}

	serviceName, err := sliceutil.ServiceNameFromLabels(dep.Labels)
	if err != nil {
		return nil, except.NewError("Deploy %s is not a slice", except.ErrUnsupported, spec.Name)
	}

	color, err := sliceutil.ColorFromLabels(dep.Labels)
	if err != nil {
		return nil, except.NewError("Deploy %s is not a slice", except.ErrUnsupported, spec.Name)
	}

	if err := s.KubeClient.WaitTillDeployReady(spec.Name, s.Config.Slice.ReadyTimeout, spec.Opt); err != nil {
		return nil, err
	}

	svc, err := s.KubeClient.GetService(serviceName, spec.Opt)
	if err != nil {
		return nil, err
	}

	if svc.Spec.Selector == nil {
		return nil, except.NewError("Service %s has no selector to switch", except.ErrUnsupported, serviceName)
	}

	svc.Spec.Selector[consts.LabelKeyColor] = string(color)
	if _, err := s.KubeClient.UpdateService(svc, spec.Opt); err != nil {
		return nil, err
	}

	log.WithField("name", spec.Name).
		WithField("namespace", spec.Opt.Namespace).
		WithField("service", serviceName).
		WithField("color", color).
		Info("Promoted slice")

	anno := new(meta.Slice)
	if err := meta.FromMap(dep.Annotations, anno); err != nil {
		log.WithError(err).WithField("name", dep.Name).Debug("Could not decode the slice annotations")
	}

	return &model.Slice{
		Name:              dep.Name,
		ServiceName:       serviceName,
		Color:             color,
		TrafficPercentage: anno.TrafficPercentage,
		Deploy:            dep,
	}, nil
}

func (s *sliceService) Manifest(name string, opt kconfig.Opt) ([]byte, error) {
	dep, err := s.KubeClient.GetDeploy(name, opt)
	if err != nil {
		return nil, err
	}

	return s.SliceFactory.RenderYAML(dep)
}
