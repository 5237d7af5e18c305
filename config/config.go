package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host       string `envconfig:"HOST"`
	Port       string `envconfig:"PORT"`
	Domain     string `envconfig:"DOMAIN"`
	Prefix     string `envconfig:"PREFIX"`
	Mode       Mode   `envconfig:"MODE"`
	Mysql      Mysql
	Redis      Redis
	JWT        JWT
	Log        Log `mapstructure:"Log"`
	Sentry     Sentry
	OTel       OTel
	S3         S3
	Superadmin Superadmin
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	// Enable gates both the feed change channel and the login rate limiter.
	Enable   bool   `yaml:"enable" envconfig:"ENABLE"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"`
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`
}

type Sentry struct {
	Dsn         string  `envconfig:"DSN" mapstructure:"dsn"`
	Environment string  `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64 `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"`
}

type OTel struct {
	Enable      bool   `envconfig:"ENABLE" mapstructure:"enable"`
	ServiceName string `envconfig:"SERVICE_NAME" mapstructure:"service_name"`
	AgentHost   string `envconfig:"AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"AGENT_PORT" mapstructure:"agent_port"`
}

type S3 struct {
	Endpoint        string `mapstructure:"endpoint"`
	BaseURL         string `mapstructure:"base_url"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKey       string `mapstructure:"access_key"`
	SecretAccessKey string `mapstructure:"secret_key"`
	Prefix          string `mapstructure:"prefix"`
	UsePathStyle    bool   `mapstructure:"path_style"`
}

// Superadmin is the built-in administrator that exists outside the admin
// table and can never be deleted. The password default mirrors the legacy
// deployment and must be overridden in production.
type Superadmin struct {
	Username string `envconfig:"USERNAME" mapstructure:"username"`
	Password string `envconfig:"PASSWORD" mapstructure:"password"`
}
