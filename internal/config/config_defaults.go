package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 5*1024*1024) // 5MB

	// Extraction Configuration
	v.SetDefault("extraction.tika.url", "") // empty disables Word-document support
	v.SetDefault("extraction.tika.timeout", 30*time.Second)
	v.SetDefault("extraction.tika.circuitBreaker.enabled", true)
	v.SetDefault("extraction.tika.circuitBreaker.maxRequests", 3)
	v.SetDefault("extraction.tika.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("extraction.tika.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("extraction.tika.circuitBreaker.minRequests", 3)
	v.SetDefault("extraction.tika.circuitBreaker.failureThreshold", 0.6)

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "jobnest")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)
}
