package kube

import (
	"fmt"
	"time"

	"github.com/hueshift-cloud/hueshift/core/except"
	"github.com/hueshift-cloud/hueshift/core/kube/kconfig"
	"github.com/hueshift-cloud/hueshift/core/kube/kubeutil"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
)

type Client interface {
	GetDeploy(name string, opt kconfig.Opt) (*appsv1.Deployment, error)
	ListDeploys(lo metav1.ListOptions, opt kconfig.Opt) (*appsv1.DeploymentList, error)
	CreateDeploy(deploy *appsv1.Deployment, opt kconfig.Opt) (*appsv1.Deployment, error)
	UpdateDeploy(deploy *appsv1.Deployment, opt kconfig.Opt) (*appsv1.Deployment, error)
	UpsertDeploy(deploy *appsv1.Deployment, opt kconfig.Opt) (*appsv1.Deployment, error)
	DeleteDeploy(name string, opt kconfig.Opt) error
	WatchDeploy(lo metav1.ListOptions, opt kconfig.Opt) (watch.Interface, error)
	WaitTillDeployReady(name string, timeout time.Duration, opt kconfig.Opt) error
	GetService(name string, opt kconfig.Opt) (*corev1.Service, error)
	ListServices(lo metav1.ListOptions, opt kconfig.Opt) (*corev1.ServiceList, error)
	UpdateService(service *corev1.Service, opt kconfig.Opt) (*corev1.Service, error)

	Api() kubernetes.Interface
	ApiConfig() kconfig.Config
}

type ClientSpec struct {
	Config  kconfig.ConfigSpec
	Context string
}

func NewClient(spec ClientSpec) (Client, error) {
	conf, err := kconfig.NewConfigClient(spec.Config)
	if err != nil {
		return nil, err
	}

	apiClient, err := conf.Api(spec.Context)
	if err != nil {
		return nil, err
	}

	return &client{
		Interface: apiClient,
		Config:    conf,
	}, nil
}

// FromApi wraps an existing clientset. Used by tests to inject a fake.
func FromApi(api kubernetes.Interface, conf kconfig.Config) Client {
	return &client{
		Interface: api,
		Config:    conf,
	}
}

type client struct {
	Interface kubernetes.Interface
	Config    kconfig.Config
}

func (c *client) Api() kubernetes.Interface {
	return c.Interface
}

func (c *client) ApiConfig() kconfig.Config {
	return c.Config
}

func (c *client) GetDeploy(name string, opt kconfig.Opt) (*appsv1.Deployment, error) {
	return c.Api().AppsV1().Deployments(opt.Namespace).Get(name, metav1.GetOptions{})
}

func (c *client) ListDeploys(lo metav1.ListOptions, opt kconfig.Opt) (*appsv1.DeploymentList, error) {
	return c.Api().AppsV1().Deployments(opt.Namespace).List(lo)
}

func (c *client) CreateDeploy(deploy *appsv1.Deployment, opt kconfig.Opt) (*appsv1.Deployment, error) {
	deploy.ResourceVersion = ""
	return c.Api().AppsV1().Deployments(opt.Namespace).Create(deploy)
}

func (c *client) UpdateDeploy(deploy *appsv1.Deployment, opt kconfig.Opt) (*appsv1.Deployment, error) {
	return c.Api().AppsV1().Deployments(opt.Namespace).Update(deploy)
}

func (c *client) UpsertDeploy(deploy *appsv1.Deployment, opt kconfig.Opt) (*appsv1.Deployment, error) {
	out, err := c.Api().AppsV1().Deployments(opt.Namespace).Create(deploy)
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return c.Api().AppsV1().Deployments(opt.Namespace).Update(deploy)
		}
		return nil, err
	}
	return out, nil
}

func (c *client) DeleteDeploy(name string, opt kconfig.Opt) error {
	return c.Api().AppsV1().Deployments(opt.Namespace).Delete(name, &metav1.DeleteOptions{})
}

func (c *client) WatchDeploy(lo metav1.ListOptions, opt kconfig.Opt) (watch.Interface, error) {
	return c.Api().AppsV1().Deployments(opt.Namespace).Watch(lo)
}

func (c *client) WaitTillDeployReady(name string, timeout time.Duration, opt kconfig.Opt) error {
	dep, err := c.GetDeploy(name, opt)
	if err != nil {
		return err
	}

	if kubeutil.DeploymentIsReady(dep) {
		return nil
	}

	wi, err := c.WatchDeploy(metav1.ListOptions{FieldSelector: fmt.Sprintf("metadata.name=%s", name)}, opt)
	if err != nil {
		return err
	}
	defer wi.Stop()

	timer := time.NewTimer(timeout)
	for {
		select {
		case <-timer.C:
			return except.NewError("Deploy failed to be ready after %s", except.ErrTimeout, timeout)
		case r := <-wi.ResultChan():
			switch r.Type {
			case watch.Error:
				reason := "unknown"
				if r.Object != nil {
					if dep, ok := r.Object.(*appsv1.Deployment); ok {
						if cond := latestCondition(dep); cond != nil {
							reason = cond.Message
						}
					}
				}
				return except.NewError("Deploy %s failed: %s", except.ErrInternalError, name, reason)
			case watch.Added, watch.Modified:
				if r.Object != nil {
					if dep, ok := r.Object.(*appsv1.Deployment); ok {
						if kubeutil.DeploymentIsReady(dep) {
							return nil
						}
					}
				}
			}
		}
	}
}

func (c *client) GetService(name string, opt kconfig.Opt) (*corev1.Service, error) {
	return c.Api().CoreV1().Services(opt.Namespace).Get(name, metav1.GetOptions{})
}

func (c *client) ListServices(lo metav1.ListOptions, opt kconfig.Opt) (*corev1.ServiceList, error) {
	return c.Api().CoreV1().Services(opt.Namespace).List(lo)
}

func (c *client) UpdateService(service *corev1.Service, opt kconfig.Opt) (*corev1.Service, error) {
	return c.Api().CoreV1().Services(opt.Namespace).Update(service)
}

func latestCondition(dep *appsv1.Deployment) *appsv1.DeploymentCondition {
	if len(dep.Status.Conditions) > 0 {
		return &dep.Status.Conditions[len(dep.Status.Conditions)-1]
	}
	return nil
}
