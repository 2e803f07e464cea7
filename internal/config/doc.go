// Package config provides configuration parsing for vnode tooling.
//
// The configuration is stored in vnode.json in the working directory.
// A missing file is not an error: Load falls back to defaults.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "metricsPath": "/metrics",
//	    "maxBodyBytes": 1048576,
//	    "shutdownTimeout": "10s"
//	  },
//	  "log": {
//	    "level": "info",
//	    "json": false
//	  },
//	  "tracing": {
//	    "tracerName": "vnode",
//	    "endpoint": "127.0.0.1:4318",
//	    "insecure": true,
//	    "sampleRatio": 0.5,
//	    "environment": "production"
//	  },
//	  "components": "./components.yaml"
//	}
//
// # Environment
//
// VNODE_HOST and VNODE_PORT override the server address.
// VNODE_OTLP_ENDPOINT overrides tracing.endpoint.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Addr())
package config
