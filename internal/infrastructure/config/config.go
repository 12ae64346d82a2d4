package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Market   MarketConfig   `mapstructure:"market"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpire time.Duration `mapstructure:"access_token_expire"`
}

// MarketConfig 书城业务参数
type MarketConfig struct {
	LowStockThreshold    int `mapstructure:"low_stock_threshold"`    // 低库存报表阈值(库存<该值视为待补货)
	FastSellingThreshold int `mapstructure:"fast_selling_threshold"` // 畅销报表阈值(生效销量>=该值视为热销)
	RecommendLimit       int `mapstructure:"recommend_limit"`        // 推荐榜单长度
}

// PaymentConfig 支付网关参数
type PaymentConfig struct {
	DeclineEvery int           `mapstructure:"decline_every"` // 模拟网关每N笔拒绝一笔(0表示从不拒绝)
	Timeout      time.Duration `mapstructure:"timeout"`       // 单笔支付超时
}

// NotifierConfig 订单事件通知参数
// AMQPURL为空时退化为控制台通知(本地开发不依赖消息中间件)
type NotifierConfig struct {
	AMQPURL  string `mapstructure:"amqp_url"`
	Exchange string `mapstructure:"exchange"`
}

// TracingConfig 链路追踪参数
// Endpoint为空时不启用追踪
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
}

// Load 加载配置文件
// 支持：
// 1. 默认加载config/config.yaml
// 2. 环境变量覆盖（如BOOKMARKET_JWT_SECRET → jwt.secret）
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	v.SetEnvPrefix("BOOKMARKET")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	if cfg.JWT.Secret == "your-secret-key-change-in-production" && cfg.Server.Mode == "release" {
		return fmt.Errorf("生产环境必须修改JWT密钥")
	}

	if cfg.Market.LowStockThreshold < 0 || cfg.Market.FastSellingThreshold < 0 {
		return fmt.Errorf("报表阈值不能为负数")
	}

	return nil
}
