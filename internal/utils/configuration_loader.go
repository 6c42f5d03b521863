package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configurationKeySeparatorConstant               = "."
	environmentKeySeparatorConstant                 = "_"
	embeddedConfigurationMergeErrorTemplateConstant = "unable to merge embedded configuration: %w"
	configurationReadErrorTemplateConstant          = "unable to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "unable to parse configuration: %w"
)

// ConfigurationLoader resolves structured configuration by layering embedded
// defaults, configuration files, and prefixed environment variables.
type ConfigurationLoader struct {
	configurationName string
	configurationType string
	environmentPrefix string
	searchPaths       []string
	embeddedDefaults  []byte
}

// NewConfigurationLoader creates a loader that searches the provided paths for
// a configuration file and merges the embedded defaults before any of them.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string, embeddedDefaults []byte) *ConfigurationLoader {
	duplicatedSearchPaths := make([]string, len(searchPaths))
	copy(duplicatedSearchPaths, searchPaths)

	duplicatedDefaults := make([]byte, len(embeddedDefaults))
	copy(duplicatedDefaults, embeddedDefaults)

	return &ConfigurationLoader{
		configurationName: configurationName,
		configurationType: configurationType,
		environmentPrefix: environmentPrefix,
		searchPaths:       duplicatedSearchPaths,
		embeddedDefaults:  duplicatedDefaults,
	}
}

// LoadConfiguration populates targetConfiguration and reports the
// configuration file that was merged, when one was found.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, targetConfiguration any) (string, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationName)
	viperInstance.SetConfigType(loader.configurationType)

	if len(loader.embeddedDefaults) > 0 {
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedDefaults)); mergeError != nil {
			return "", fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}
	}

	for _, searchPath := range loader.searchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(configurationKeySeparatorConstant, environmentKeySeparatorConstant))
	viperInstance.AutomaticEnv()

	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	if readError := viperInstance.MergeInConfig(); readError != nil {
		if _, fileMissing := readError.(viper.ConfigFileNotFoundError); !fileMissing {
			return "", fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	if unmarshalError := viperInstance.Unmarshal(targetConfiguration); unmarshalError != nil {
		return "", fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return viperInstance.ConfigFileUsed(), nil
}
