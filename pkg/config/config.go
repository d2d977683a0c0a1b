// Package config는 viper 기반 설정 로더입니다.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config는 설정 값 접근 인터페이스입니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	GetAll() map[string]interface{}
}

type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string          { return c.v.GetString(key) }
func (c *viperConfig) GetInt(key string) int                { return c.v.GetInt(key) }
func (c *viperConfig) GetBool(key string) bool              { return c.v.GetBool(key) }
func (c *viperConfig) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }
func (c *viperConfig) GetStringSlice(key string) []string   { return c.v.GetStringSlice(key) }
func (c *viperConfig) IsSet(key string) bool                { return c.v.IsSet(key) }
func (c *viperConfig) GetAll() map[string]interface{}       { return c.v.AllSettings() }

const configDir = "configs"

// Option은 Load 동작을 조정합니다.
type Option func(v *viper.Viper)

// WithDefaults는 설정 파일이나 환경 변수에 없는 키의 기본값을 지정합니다.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(v *viper.Viper) {
		for key, value := range defaults {
			v.SetDefault(key, value)
		}
	}
}

// Load는 configs/{APP_ENV}/{serviceName}.yaml을 읽습니다.
// CONFIG_PATH로 디렉토리를 바꿀 수 있고, 파일이 없으면 configs/example을 시도합니다.
// 환경 변수는 {SERVICENAME}_{KEY} 형식으로 덮어씁니다 (예: TODO_DATABASE_HOST).
func Load(serviceName string, opts ...Option) (Config, error) {
	v := viper.New()
	for _, opt := range opts {
		opt(v)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix(strings.ToUpper(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(configDir, env)
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		v.AddConfigPath(filepath.Join(configDir, "example"))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}
