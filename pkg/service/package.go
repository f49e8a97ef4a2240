package service

import (
	"github.com/eddieowens/axon"
	"github.com/hueshift-cloud/hueshift/core/kube"
	"github.com/hueshift-cloud/hueshift/core/kube/kconfig"
	"github.com/hueshift-cloud/hueshift/pkg/config"
)

type Package struct {
}

const KubeClientKey = "KubeClient"

func kubeClientFactory(inj axon.Injector, _ axon.Args) axon.Instance {
	conf := inj.GetStructPtr(config.ConfigKey).(*config.Config)
	spec := kube.ClientSpec{
		Config: kconfig.ConfigSpec{
			ConfigPath: conf.Kube.Config,
			Namespace:  conf.Kube.Namespace,
		},
		Context: conf.Kube.Context,
	}

	k, err := kube.NewClient(spec)
	if err != nil {
		panic(err)
	}
	return axon.StructPtr(k)
}

func (p *Package) Bindings() []axon.Binding {
	return []axon.Binding{
		axon.Bind(SliceServiceKey).To().StructPtr(new(sliceService)),
		axon.Bind(SliceControllerServiceKey).To().StructPtr(new(sliceControllerService)),
		axon.Bind(KubeClientKey).To().Factory(kubeClientFactory).WithoutArgs(),
	}
}
