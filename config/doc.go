// Package config loads a logger tree configuration from YAML and
// applies it to a root logger.
//
// The document names dotted logger paths and gives each a level and a
// sink list; applying it replaces each named node's sinks wholesale,
// the same contract as the programmatic basic configuration. A minimal
// document:
//
//	root:
//	  level: WARNING
//	loggers:
//	  http.server:
//	    level: DEBUG
//	    sinks:
//	      - type: rotate
//	        target: logs/http-2006-01-02.log
//	        make_dirs: true
//	        layout: json
package config
