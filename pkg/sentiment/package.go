package sentiment

import (
	"time"

	"github.com/eddieowens/axon"
	"github.com/hueshift-cloud/hueshift/pkg/controller"
	log "github.com/sirupsen/logrus"
)

type Package struct {
}

func classifierFactory(_ axon.Injector, _ axon.Args) axon.Instance {
	start := time.Now()
	classifier := NewDefaultClassifier()
	log.WithField("samples", len(trainingSamples)).
		WithField("duration", time.Since(start)).
		Info("Fitted sentiment classifier")

	return axon.StructPtr(classifier)
}

func (p *Package) Bindings() []axon.Binding {
	return []axon.Binding{
		axon.Bind(ClassifierKey).To().Factory(classifierFactory).WithoutArgs(),
		axon.Bind(PredictionControllerKey).To().StructPtr(new(predictionController)),
		axon.Bind(controller.ControllersKey).To().Keys(PredictionControllerKey),
		axon.Bind(AppKey).To().StructPtr(new(app)),
	}
}
