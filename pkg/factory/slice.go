package factory

import (
	"fmt"

	"github.com/hueshift-cloud/hueshift/core/except"
	"github.com/hueshift-cloud/hueshift/pkg/model"
	"github.com/hueshift-cloud/hueshift/pkg/util/sliceutil"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/utils/pointer"
	"sigs.k8s.io/yaml"
)

const SliceFactoryKey = "SliceFactory"

type SliceFactory interface {
	// FromSpec builds a color slice Deployment from scratch.
	FromSpec(spec *model.SliceSpec, numReplicas int32) (*appsv1.Deployment, error)

	// FromDeployment clones an existing Deployment into a slice of the given
	// color, retagging its containers' images.
	FromDeployment(deployment *appsv1.Deployment, color model.Color, numReplicas int32) *appsv1.Deployment

	// Validate enforces the manifest invariants: the selector must exactly
	// equal the template labels and requests must not exceed limits.
	Validate(deployment *appsv1.Deployment) error

	RenderYAML(deployment *appsv1.Deployment) ([]byte, error)
}

func NewSliceFactory() SliceFactory {
	return &sliceFactory{}
}

type sliceFactory struct {
}

func (s *sliceFactory) FromSpec(spec *model.SliceSpec, numReplicas int32) (*appsv1.Deployment, error) {
	resources, err := parseResourceBounds(spec.Resources)
	if err != nil {
		return nil, err
	}

	sliceLabels := sliceutil.GenSliceLabels(spec.ServiceName, spec.Color)
	sliceLabels["app"] = spec.ServiceName

	// the selector, template, and metadata each get their own copy
	copyLabels := func() map[string]string {
		return labels.Merge(nil, sliceLabels)
	}

	dep := &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      sliceutil.SliceName(spec.ServiceName, spec.Color),
			Namespace: spec.Opt.Namespace,
			Labels:    copyLabels(),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: pointer.Int32Ptr(numReplicas),
			Selector: &metav1.LabelSelector{
				MatchLabels: copyLabels(),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: copyLabels(),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:            spec.ServiceName,
							Image:           fmt.Sprintf("%s:%s", spec.ImageRepo, spec.Color),
							ImagePullPolicy: corev1.PullIfNotPresent,
							Ports: []corev1.ContainerPort{
								{
									ContainerPort: spec.ContainerPort,
								},
							},
							Resources: resources,
						},
					},
				},
			},
		},
	}

	if err := s.Validate(dep); err != nil {
		return nil, err
	}

	return dep, nil
}

func (s *sliceFactory) FromDeployment(deployment *appsv1.Deployment, color model.Color, numReplicas int32) *appsv1.Deployment {
	slice := deployment.DeepCopy()
	slice.ObjectMeta = metav1.ObjectMeta{
		Name:      sliceutil.SliceName(deployment.Name, color),
		Namespace: deployment.Namespace,
		Labels:    labels.Merge(deployment.Labels, sliceutil.GenSliceLabels(deployment.Name, color)),
	}
	slice.Spec.Replicas = pointer.Int32Ptr(numReplicas)

	sliceLabels := labels.Merge(slice.Spec.Template.Labels, sliceutil.GenSliceLabels(deployment.Name, color))
	slice.Spec.Template.Labels = sliceLabels
	slice.Spec.Selector = &metav1.LabelSelector{MatchLabels: labels.Merge(nil, sliceLabels)}

	for i := range slice.Spec.Template.Spec.Containers {
		container := &slice.Spec.Template.Spec.Containers[i]
		container.Image = retagImage(container.Image, color)
	}

	return slice
}

func (s *sliceFactory) Validate(deployment *appsv1.Deployment) error {
	if deployment.Spec.Selector == nil {
		return except.NewError("Deploy %s has no selector", except.ErrInvalid, deployment.Name)
	}

	selector := labels.Set(deployment.Spec.Selector.MatchLabels)
	template := labels.Set(deployment.Spec.Template.Labels)
	if !labels.Equals(selector, template) {
		return except.NewError(
			"Deploy %s selector %s does not match its template labels %s",
			except.ErrInvalid, deployment.Name, selector, template,
		)
	}

	batch := except.NewBatchError("Deploy %s has invalid resource bounds", deployment.Name)
	for _, container := range deployment.Spec.Template.Spec.Containers {
		if err := validateBounds(container.Name, container.Resources); err != nil {
			batch.Add(err)
		}
	}
	if batch.Len() > 0 {
		return batch
	}

	return nil
}

func (s *sliceFactory) RenderYAML(deployment *appsv1.Deployment) ([]byte, error) {
	out := deployment.DeepCopy()
	out.TypeMeta = metav1.TypeMeta{
		APIVersion: "apps/v1",
		Kind:       "Deployment",
	}
	return yaml.Marshal(out)
}

func validateBounds(containerName string, reqs corev1.ResourceRequirements) error {
	for name, request := range reqs.Requests {
		limit, ok := reqs.Limits[name]
		if !ok {
			continue
		}
		if request.Cmp(limit) > 0 {
			return except.NewError(
				"Container %s requests more %s (%s) than its limit (%s)",
				except.ErrInvalid, containerName, name, request.String(), limit.String(),
			)
		}
	}
	return nil
}

func parseResourceBounds(bounds model.ResourceBounds) (corev1.ResourceRequirements, error) {
	reqs := corev1.ResourceRequirements{
		Requests: corev1.ResourceList{},
		Limits:   corev1.ResourceList{},
	}

	quantities := []struct {
		val  string
		name corev1.ResourceName
		list corev1.ResourceList
	}{
		{bounds.RequestsCPU, corev1.ResourceCPU, reqs.Requests},
		{bounds.RequestsMemory, corev1.ResourceMemory, reqs.Requests},
		{bounds.LimitsCPU, corev1.ResourceCPU, reqs.Limits},
		{bounds.LimitsMemory, corev1.ResourceMemory, reqs.Limits},
	}

	for _, q := range quantities {
		if q.val == "" {
			continue
		}
		quantity, err := resource.ParseQuantity(q.val)
		if err != nil {
			return reqs, except.NewError("%s is not a valid %s quantity: %s", except.ErrInvalid, q.val, q.name, err.Error())
		}
		q.list[q.name] = quantity
	}

	return reqs, nil
}

func retagImage(image string, color model.Color) string {
	for i := len(image) - 1; i >= 0; i-- {
		if image[i] == ':' {
			return fmt.Sprintf("%s:%s", image[:i], color)
		}
		if image[i] == '/' {
			break
		}
	}
	return fmt.Sprintf("%s:%s", image, color)
}
