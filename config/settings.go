package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Directory sources
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Settings holds every tunable of the console. Billing rates and the mutation
// throttle are read from here only.
type Settings struct {
	Port                string        `mapstructure:"PORT"`
	Env                 string        `mapstructure:"ENV"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	DirectorySource     string        `mapstructure:"DIRECTORY_SOURCE"`
	DirectoryBaseURL    string        `mapstructure:"DIRECTORY_BASE_URL"`
	DirectoryTimeout    time.Duration `mapstructure:"DIRECTORY_TIMEOUT"`
	RedisAddr           string        `mapstructure:"REDIS_ADDR"`
	RedisUser           string        `mapstructure:"REDIS_USER"`
	RedisPassword       string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB             int           `mapstructure:"REDIS_DB"`
	TaxRate             float64       `mapstructure:"TAX_RATE"`
	DepositRate         float64       `mapstructure:"DEPOSIT_RATE"`
	MutationMinInterval time.Duration `mapstructure:"MUTATION_MIN_INTERVAL"`
	DebounceQuietPeriod time.Duration `mapstructure:"DEBOUNCE_QUIET_PERIOD"`
	CacheTTL            time.Duration `mapstructure:"CACHE_TTL"`
	GuardIdleTTL        time.Duration `mapstructure:"GUARD_IDLE_TTL"`
	WarmCron            string        `mapstructure:"WARM_CRON"`
	JWTSecret           string        `mapstructure:"JWT_SECRET"`
	AllowedOrigins      string        `mapstructure:"ALLOWED_ORIGINS"`
}

// Defaults of the reference deployment.
const (
	DefaultTaxRate             = 0.07
	DefaultDepositRate         = 0.30
	DefaultMutationMinInterval = 2 * time.Second
	DefaultDebounceQuietPeriod = 500 * time.Millisecond
	DefaultCacheTTL            = 60 * time.Minute
	DefaultGuardIdleTTL        = 30 * time.Minute
)

// LoadSettings reads .env (optional) from path and the environment.
func LoadSettings(path string) (settings Settings, err error) {
	LoadEnv()

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8083")
	viper.SetDefault("ENV", "dev")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DIRECTORY_SOURCE", SourceRemote)
	viper.SetDefault("DIRECTORY_BASE_URL", "")
	viper.SetDefault("DIRECTORY_TIMEOUT", "30s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_USER", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("TAX_RATE", DefaultTaxRate)
	viper.SetDefault("DEPOSIT_RATE", DefaultDepositRate)
	viper.SetDefault("MUTATION_MIN_INTERVAL", DefaultMutationMinInterval.String())
	viper.SetDefault("DEBOUNCE_QUIET_PERIOD", DefaultDebounceQuietPeriod.String())
	viper.SetDefault("CACHE_TTL", DefaultCacheTTL.String())
	viper.SetDefault("GUARD_IDLE_TTL", DefaultGuardIdleTTL.String())
	viper.SetDefault("WARM_CRON", "*/15 * * * *")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ALLOWED_ORIGINS", "")

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("[WARN] không đọc được file cấu hình, dùng biến môi trường: %v", err)
		}
		err = nil
	}

	if err = viper.Unmarshal(&settings); err != nil {
		return
	}

	settings.normalize()
	return
}

func (s *Settings) normalize() {
	s.DirectorySource = strings.ToLower(strings.TrimSpace(s.DirectorySource))
	if s.DirectorySource != SourceLocal {
		s.DirectorySource = SourceRemote
	}
	s.DirectoryBaseURL = strings.TrimRight(strings.TrimSpace(s.DirectoryBaseURL), "/")

	if s.TaxRate < 0 || s.TaxRate > 1 {
		log.Printf("[WARN] TAX_RATE %f ngoài khoảng [0,1], dùng mặc định", s.TaxRate)
		s.TaxRate = DefaultTaxRate
	}
	if s.DepositRate < 0 || s.DepositRate > 1 {
		log.Printf("[WARN] DEPOSIT_RATE %f ngoài khoảng [0,1], dùng mặc định", s.DepositRate)
		s.DepositRate = DefaultDepositRate
	}
	if s.MutationMinInterval <= 0 {
		s.MutationMinInterval = DefaultMutationMinInterval
	}
	if s.DebounceQuietPeriod <= 0 {
		s.DebounceQuietPeriod = DefaultDebounceQuietPeriod
	}
	if s.CacheTTL <= 0 {
		s.CacheTTL = DefaultCacheTTL
	}
	if s.GuardIdleTTL <= 0 {
		s.GuardIdleTTL = DefaultGuardIdleTTL
	}
	if s.DirectoryTimeout <= 0 {
		s.DirectoryTimeout = 30 * time.Second
	}
}

// Origins splits ALLOWED_ORIGINS; empty means every origin.
func (s Settings) Origins() []string {
	var out []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
