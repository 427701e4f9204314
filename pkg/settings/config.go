package settings

import "time"

type Config struct {
	Logger   Logger   `mapstructure:"logger"`
	Workload Workload `mapstructure:"workload"`
	Server   Server   `mapstructure:"server"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"min=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"min=0"`
	Compress    bool   `mapstructure:"compress"`
}

// Workload is the configuration for the producer/consumer run
type Workload struct {
	Producers     int   `mapstructure:"producers" validate:"min=1"`
	Consumers     int   `mapstructure:"consumers" validate:"min=1"`
	// Items is the number of values each producer pushes.
	Items         int   `mapstructure:"items" validate:"min=1"`
	ProducerDelay Delay `mapstructure:"producer_delay"`
	ConsumerDelay Delay `mapstructure:"consumer_delay"`
	// Trace logs every queue call at debug level.
	Trace         bool  `mapstructure:"trace"`
}

// Delay is a random pause window, Min <= d <= Max
type Delay struct {
	Min time.Duration `mapstructure:"min" validate:"min=0"`
	Max time.Duration `mapstructure:"max" validate:"gtefield=Min"`
}

// Server is the configuration for the diagnostics HTTP server
type Server struct {
	Mode   string `mapstructure:"mode" validate:"oneof=debug release test"`
	// Listen is the host:port to serve on. Empty disables the server.
	Listen string `mapstructure:"listen" validate:"omitempty,hostname_port"`
}
