package envconfig

import (
	"errors"

	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                 bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                 []string `env:"KAFKA_BROKERS"`
	CatalogChangedTopicName string   `env:"CATALOG_CHANGED_TOPIC_NAME" envDefault:"catalog.changed"`
}

type kafka struct {
	raw kafkaEnv
}

// NewKafkaConfig requires brokers only when publishing is enabled.
func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Enabled && len(raw.Brokers) == 0 {
		return nil, errors.New(`env: required environment variable "KAFKA_BROKERS" is not set while KAFKA_ENABLED is true`)
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool               { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string           { return cfg.raw.Brokers }
func (cfg *kafka) CatalogChangedTopic() string { return cfg.raw.CatalogChangedTopicName }

func (cfg *kafka) CatalogChangedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.ClientID = "kicad-dblib"
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3

	return config
}
