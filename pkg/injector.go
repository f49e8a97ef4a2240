package pkg

import (
	"github.com/eddieowens/axon"
	"github.com/hueshift-cloud/hueshift/pkg/config"
	"github.com/hueshift-cloud/hueshift/pkg/controller"
	"github.com/hueshift-cloud/hueshift/pkg/factory"
	"github.com/hueshift-cloud/hueshift/pkg/service"
)

func InjectorFactory() axon.Injector {
	return axon.NewInjector(axon.NewBinder(
		new(service.Package),
		new(factory.Package),
		new(config.Package),
		new(controller.Package),
		new(Package),
	))
}
