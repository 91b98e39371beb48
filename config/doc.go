// Package config loads engine configuration from YAML.
//
// A configuration file looks like:
//
//	default_closed_range: false
//	log:
//	  level: info      # debug | info | warn | error
//	  format: text     # text | json
//	metrics:
//	  enabled: true
//	  namespace: lutgrid
//
// Missing keys keep the values of Default; unknown keys are rejected.
// Every loaded Config is validated with go-playground/validator.
package config
