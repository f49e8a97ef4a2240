package main

import (
	"github.com/eddieowens/axon"
	"github.com/hueshift-cloud/hueshift/pkg/config"
	"github.com/hueshift-cloud/hueshift/pkg/smoke"
	log "github.com/sirupsen/logrus"
)

func main() {
	injector := axon.NewInjector(axon.NewBinder(
		new(config.Package),
		new(smoke.Package),
	))

	conf := injector.GetStructPtr(config.ConfigKey).(*config.Config)

	format := &log.TextFormatter{
		TimestampFormat: conf.Log.TimeFormat,
	}

	log.SetFormatter(format)

	logLvl, err := log.ParseLevel(conf.Log.Level)
	if err != nil {
		logLvl = log.InfoLevel
	}

	log.SetLevel(logLvl)

	harness := injector.GetStructPtr(smoke.HarnessKey).(smoke.Harness)

	log.WithField("target", conf.Smoke.CanaryInstanceIP).Info("Starting smoke checks")
	report, err := harness.Run()
	if err != nil {
		log.WithError(err).Fatal("Smoke check failed")
	}

	log.WithFields(report.Fields()).Info("Load check finished")
}
