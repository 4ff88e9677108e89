package config

type config struct {
	Storage   storage   `yaml:"storage" mapstructure:"storage"`
	Auth      auth      `yaml:"auth" mapstructure:"auth"`
	Seed      seed      `yaml:"seed" mapstructure:"seed"`
	Countries countries `yaml:"countries" mapstructure:"countries"`
	Upload    upload    `yaml:"upload" mapstructure:"upload"`
}

type storage struct {
	Path string `yaml:"path"`
}

type auth struct {
	OtpCode   string `yaml:"otp_code"`
	LatencyMs int    `yaml:"latency_ms"`
}

type seed struct {
	Enabled bool `yaml:"enabled"`
}

type countries struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type upload struct {
	TickMs   int `yaml:"tick_ms"`
	StepSize int `yaml:"step_size"`
}
