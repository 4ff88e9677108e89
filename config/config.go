package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	ConfigInfo.Storage.Path = viper.GetString("storage.path")

	ConfigInfo.Auth.OtpCode = viper.GetString("auth.otp_code")
	ConfigInfo.Auth.LatencyMs = viper.GetInt("auth.latency_ms")

	ConfigInfo.Seed.Enabled = viper.GetBool("seed.enabled")

	ConfigInfo.Countries.Endpoint = viper.GetString("countries.endpoint")
	ConfigInfo.Countries.TimeoutMs = viper.GetInt("countries.timeout_ms")

	ConfigInfo.Upload.TickMs = viper.GetInt("upload.tick_ms")
	ConfigInfo.Upload.StepSize = viper.GetInt("upload.step_size")

	logrus.Infof("Config loaded - storage path: %s, seed: %v",
		ConfigInfo.Storage.Path, ConfigInfo.Seed.Enabled)
}

func setDefaults() {
	viper.SetDefault("storage.path", "./videomack.storage")
	viper.SetDefault("auth.otp_code", "1234")
	viper.SetDefault("auth.latency_ms", 1500)
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("countries.endpoint", "https://restcountries.com/v3.1/all?fields=name,cca2,idd,flag")
	viper.SetDefault("countries.timeout_ms", 5000)
	viper.SetDefault("upload.tick_ms", 50)
	viper.SetDefault("upload.step_size", 5)
}
