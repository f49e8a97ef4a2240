package sentiment

import (
	"github.com/eddieowens/axon"
	"github.com/hueshift-cloud/hueshift/pkg/config"
)

func InjectorFactory() axon.Injector {
	return axon.NewInjector(axon.NewBinder(
		new(config.Package),
		new(Package),
	))
}
