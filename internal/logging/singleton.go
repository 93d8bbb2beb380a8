package logging

import "sync"

var (
	instance  *Logger
	once      sync.Once
	mu        sync.Mutex
	logConfig *Config
)

// Configure sets the logging configuration. Call before the first GetLogger
// to enable file output; without it the logger falls back to stdout only.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
}

// GetLogger returns the singleton logger instance, initializing it on first
// use with the configuration set via Configure.
func GetLogger() *Logger {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		var err error
		instance, err = NewLogger(logConfig)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
	return instance
}
