package smoke

import (
	"fmt"

	"github.com/eddieowens/axon"
	"github.com/hueshift-cloud/hueshift/pkg/config"
)

type Package struct {
}

func harnessFactory(inj axon.Injector, _ axon.Args) axon.Instance {
	conf := inj.GetStructPtr(config.ConfigKey).(*config.Config)

	spec := HarnessSpec{
		Requests: conf.Smoke.Requests,
		Timeout:  conf.Smoke.Timeout,
	}
	if conf.Smoke.CanaryInstanceIP != "" {
		spec.BaseURL = fmt.Sprintf("http://%s:%d", conf.Smoke.CanaryInstanceIP, conf.Smoke.Port)
	}

	h, err := NewHarness(spec)
	if err != nil {
		panic(err)
	}
	return axon.StructPtr(h)
}

func (p *Package) Bindings() []axon.Binding {
	return []axon.Binding{
		axon.Bind(HarnessKey).To().Factory(harnessFactory).WithoutArgs(),
	}
}
