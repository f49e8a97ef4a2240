package kubeutil

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/labels"
)

// DeploymentIsReady reports whether every desired replica of the current
// generation is available.
func DeploymentIsReady(dep *appsv1.Deployment) bool {
	desired := int32(1)
	if dep.Spec.Replicas != nil {
		desired = *dep.Spec.Replicas
	}

	if dep.Generation > dep.Status.ObservedGeneration {
		return false
	}

	return dep.Status.UpdatedReplicas >= desired &&
		dep.Status.AvailableReplicas >= desired
}

func MatchedServices(l map[string]string, svcs []corev1.Service) []corev1.Service {
	var services []corev1.Service
	for i := range svcs {
		service := svcs[i]
		if service.Spec.Selector == nil {
			// services with nil selectors match nothing, not everything.
			continue
		}
		selector := labels.Set(service.Spec.Selector).AsSelectorPreValidated()
		if selector.Matches(labels.Set(l)) {
			services = append(services, service)
		}
	}
	return services
}

// DeploymentPodNamespace resolves the namespace of the deployment's pod
// template, preferring the template's own namespace when set.
func DeploymentPodNamespace(deployment *appsv1.Deployment) string {
	ns := deployment.Spec.Template.Namespace
	if ns == "" {
		ns = deployment.Namespace
	}
	return ns
}
