package config

import (
	"bytes"
	"os"
	"strings"
	"time"

	"github.com/eddieowens/axon"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const ConfigKey = "Config"

type Config struct {
	Server Server `yaml:"server" mapstructure:"server"`
	Kube   Kube   `yaml:"kube" mapstructure:"kube"`
	Slice  Slice  `yaml:"slice" mapstructure:"slice"`
	Smoke  Smoke  `yaml:"smoke" mapstructure:"smoke"`
	Log    Log    `yaml:"log" mapstructure:"log"`
}

type Log struct {
	Level      string `yaml:"level" mapstructure:"level"`
	TimeFormat string `yaml:"timeformat" mapstructure:"timeformat"`
}

type Server struct {
	Port uint16 `yaml:"port" mapstructure:"port"`
}

type Kube struct {
	Config    string `yaml:"config" mapstructure:"config"`
	Context   string `yaml:"context" mapstructure:"context"`
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
}

type Slice struct {
	ReadyTimeout time.Duration `yaml:"readytimeout" mapstructure:"readytimeout"`
}

type Smoke struct {
	CanaryInstanceIP string        `yaml:"canary_instance_ip" mapstructure:"canary_instance_ip"`
	Port             uint16        `yaml:"port" mapstructure:"port"`
	Requests         int           `yaml:"requests" mapstructure:"requests"`
	Timeout          time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

func defaultConfig() *Config {
	return &Config{
		Server: Server{
			Port: 8080,
		},
		Slice: Slice{
			ReadyTimeout: 2 * time.Minute,
		},
		Smoke: Smoke{
			Port:     8080,
			Requests: 100,
			Timeout:  10 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}

func configFactory(_ axon.Injector, _ axon.Args) axon.Instance {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("hueshift")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(false)

	b, _ := yaml.Marshal(defaultConfig())
	defaults := bytes.NewReader(b)
	if err := v.MergeConfig(defaults); err != nil {
		panic(err)
	}

	if configPath, ok := os.LookupEnv("HUESHIFT_CONFIG_PATH"); ok {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			panic(err)
		}
	}

	// The lab convention sets the bare CANARY_INSTANCE_IP; accept it as an
	// alias of the prefixed form.
	_ = v.BindEnv("smoke.canary_instance_ip", "HUESHIFT_SMOKE_CANARY_INSTANCE_IP", "CANARY_INSTANCE_IP")

	v.AutomaticEnv()

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		panic(err)
	}

	return axon.Any(config)
}
