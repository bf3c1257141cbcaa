package config

import (
	"github.com/olivere/elastic/v7"
)

// SetupElasticSearch creates a client for the configured cluster.
// Sniffing is off since the service usually talks to a single node or a proxy.
func SetupElasticSearch(cfg *Config) (*elastic.Client, error) {
	return elastic.NewClient(
		elastic.SetURL(cfg.Elastic.URL),
		elastic.SetSniff(false),
	)
}
