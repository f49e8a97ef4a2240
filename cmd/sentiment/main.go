package main

import (
	"github.com/hueshift-cloud/hueshift/pkg/config"
	"github.com/hueshift-cloud/hueshift/pkg/sentiment"
	log "github.com/sirupsen/logrus"
)

func main() {
	injector := sentiment.InjectorFactory()
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

	log.Fatal(injector.GetStructPtr(sentiment.AppKey).(sentiment.App).Start())
}
