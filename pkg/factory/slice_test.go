package factory

import (
	"strings"
	"testing"

	"github.com/hueshift-cloud/hueshift/core/kube/kconfig"
	"github.com/hueshift-cloud/hueshift/pkg/model"
	"github.com/hueshift-cloud/hueshift/pkg/model/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/pointer"
)

func blueSpec() *model.SliceSpec {
	return &model.SliceSpec{
		Opt:           kconfig.Opt{Namespace: "reviews"},
		ServiceName:   "sentiment",
		Color:         model.ColorBlue,
		ImageRepo:     "gcr.io/hueshift/sentiment",
		ContainerPort: 8080,
		Resources: model.ResourceBounds{
			RequestsCPU:    "100m",
			RequestsMemory: "128Mi",
			LimitsCPU:      "250m",
			LimitsMemory:   "256Mi",
		},
	}
}

func TestFromSpec(t *testing.T) {
	dep, err := NewSliceFactory().FromSpec(blueSpec(), 3)
	require.NoError(t, err)

	assert.Equal(t, "sentiment-blue", dep.Name)
	assert.Equal(t, "reviews", dep.Namespace)
	assert.Equal(t, int32(3), *dep.Spec.Replicas)

	require.Len(t, dep.Spec.Template.Spec.Containers, 1)
	container := dep.Spec.Template.Spec.Containers[0]
	assert.Equal(t, "sentiment", container.Name)
	assert.Equal(t, "gcr.io/hueshift/sentiment:blue", container.Image)
	assert.Equal(t, corev1.PullIfNotPresent, container.ImagePullPolicy)
	require.Len(t, container.Ports, 1)
	assert.Equal(t, int32(8080), container.Ports[0].ContainerPort)

	assert.Equal(t, resource.MustParse("100m"), container.Resources.Requests[corev1.ResourceCPU])
	assert.Equal(t, resource.MustParse("256Mi"), container.Resources.Limits[corev1.ResourceMemory])

	// selector must exactly equal the template labels
	assert.Equal(t, dep.Spec.Template.Labels, dep.Spec.Selector.MatchLabels)
	assert.Equal(t, "blue", dep.Spec.Template.Labels[consts.LabelKeyColor])
	assert.Equal(t, "sentiment", dep.Spec.Template.Labels[consts.LabelKeyFor])
}

func TestFromSpecRejectsRequestsAboveLimits(t *testing.T) {
	spec := blueSpec()
	spec.Resources.RequestsCPU = "500m"
	spec.Resources.LimitsCPU = "250m"

	_, err := NewSliceFactory().FromSpec(spec, 1)
	require.Error(t, err)
}

func TestFromSpecRejectsBadQuantity(t *testing.T) {
	spec := blueSpec()
	spec.Resources.RequestsMemory = "lots"

	_, err := NewSliceFactory().FromSpec(spec, 1)
	require.Error(t, err)
}

func TestFromDeployment(t *testing.T) {
	source := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "sentiment",
			Namespace: "reviews",
			Labels:    map[string]string{"app": "sentiment"},
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: pointer.Int32Ptr(5),
			Selector: &metav1.LabelSelector{MatchLabels: map[string]string{"app": "sentiment"}},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: map[string]string{"app": "sentiment"}},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{Name: "sentiment", Image: "gcr.io/hueshift/sentiment:blue"},
					},
				},
			},
		},
	}

	slice := NewSliceFactory().FromDeployment(source, model.ColorGreen, 2)

	assert.Equal(t, "sentiment-green", slice.Name)
	assert.Equal(t, int32(2), *slice.Spec.Replicas)
	assert.Equal(t, "gcr.io/hueshift/sentiment:green", slice.Spec.Template.Spec.Containers[0].Image)
	assert.Equal(t, slice.Spec.Template.Labels, slice.Spec.Selector.MatchLabels)
	assert.Equal(t, "green", slice.Labels[consts.LabelKeyColor])

	// the source is untouched
	assert.Equal(t, "gcr.io/hueshift/sentiment:blue", source.Spec.Template.Spec.Containers[0].Image)
	assert.Equal(t, int32(5), *source.Spec.Replicas)
}

func TestValidateRejectsSelectorMismatch(t *testing.T) {
	dep, err := NewSliceFactory().FromSpec(blueSpec(), 1)
	require.NoError(t, err)

	dep.Spec.Template.Labels["extra"] = "label"
	require.Error(t, NewSliceFactory().Validate(dep))
}

func TestValidateReportsEveryBoundViolation(t *testing.T) {
	dep, err := NewSliceFactory().FromSpec(blueSpec(), 1)
	require.NoError(t, err)

	overcommitted := corev1.ResourceRequirements{
		Requests: corev1.ResourceList{corev1.ResourceCPU: resource.MustParse("2")},
		Limits:   corev1.ResourceList{corev1.ResourceCPU: resource.MustParse("1")},
	}
	dep.Spec.Template.Spec.Containers[0].Resources = overcommitted
	dep.Spec.Template.Spec.Containers = append(dep.Spec.Template.Spec.Containers, corev1.Container{
		Name:      "sidecar",
		Resources: overcommitted,
	})

	err = NewSliceFactory().Validate(dep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sentiment")
	assert.Contains(t, err.Error(), "sidecar")
}

func TestRenderYAML(t *testing.T) {
	dep, err := NewSliceFactory().FromSpec(blueSpec(), 2)
	require.NoError(t, err)

	out, err := NewSliceFactory().RenderYAML(dep)
	require.NoError(t, err)

	manifest := string(out)
	assert.True(t, strings.Contains(manifest, "apiVersion: apps/v1"))
	assert.True(t, strings.Contains(manifest, "kind: Deployment"))
	assert.True(t, strings.Contains(manifest, "name: sentiment-blue"))
	assert.True(t, strings.Contains(manifest, "replicas: 2"))
	assert.True(t, strings.Contains(manifest, "image: gcr.io/hueshift/sentiment:blue"))
}

func TestRetagImage(t *testing.T) {
	tests := []struct {
		image    string
		expected string
	}{
		{"gcr.io/hueshift/sentiment:blue", "gcr.io/hueshift/sentiment:green"},
		{"gcr.io/hueshift/sentiment", "gcr.io/hueshift/sentiment:green"},
		{"localhost:5000/sentiment:blue", "localhost:5000/sentiment:green"},
		{"localhost:5000/sentiment", "localhost:5000/sentiment:green"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, retagImage(test.image, model.ColorGreen), "image %s", test.image)
	}
}
