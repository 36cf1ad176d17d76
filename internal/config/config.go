package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/grocito/grocito/internal/policy"
)

const (
	DefaultRunAddress     = ":8080"
	DefaultDatabaseURI    = ""
	DefaultGatewayAddress = "http://localhost:4000"
	DefaultPassCost       = 10
	DefaultSecretKey      = "secret"
	DefaultTokenLifetime  = 3 * time.Hour
)

type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	GatewayAddress string        `env:"PAYMENT_GATEWAY_ADDRESS"`
	PassCost       int           `env:"PASS_COST"`
	SecretKey      string        `env:"SECRET_KEY"`
	TokenLifetime  time.Duration `env:"TOKEN_LIFETIME"`

	// Policy knobs. The defaults are the production values, env overrides
	// exist for staging experiments.
	FreeDeliveryThreshold float64           `env:"FREE_DELIVERY_THRESHOLD"`
	DeliveryFee           float64           `env:"DELIVERY_FEE"`
	FreeDeliveryEarnings  float64           `env:"FREE_DELIVERY_EARNINGS"`
	PaidDeliveryEarnings  float64           `env:"PAID_DELIVERY_EARNINGS"`
	DailyTargetDeliveries int               `env:"DAILY_TARGET_DELIVERIES"`
	DailyTargetBonus      float64           `env:"DAILY_TARGET_BONUS"`
	PeakHourBonus         float64           `env:"PEAK_HOUR_BONUS"`
	WeekendBonus          float64           `env:"WEEKEND_BONUS"`
	CancellationWindow    time.Duration     `env:"CANCELLATION_WINDOW"`
	BonusClock            policy.BonusClock `env:"BONUS_CLOCK"`
}

func Read() (Config, error) {
	config := Config{
		FreeDeliveryThreshold: policy.DefaultFreeDeliveryThreshold,
		DeliveryFee:           policy.DefaultDeliveryFee,
		FreeDeliveryEarnings:  policy.DefaultFreeDeliveryEarnings,
		PaidDeliveryEarnings:  policy.DefaultPaidDeliveryEarnings,
		DailyTargetDeliveries: policy.DefaultDailyTargetDeliveries,
		DailyTargetBonus:      policy.DefaultDailyTargetBonus,
		PeakHourBonus:         policy.DefaultPeakHourBonus,
		WeekendBonus:          policy.DefaultWeekendBonus,
		CancellationWindow:    policy.DefaultCancellationWindow,
		BonusClock:            policy.BonusClockObservation,
	}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.GatewayAddress, "g", DefaultGatewayAddress, "Payment gateway address protocol://hostname:port")

	flag.IntVar(&config.PassCost, "p", DefaultPassCost, "Pass cost for password hash")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for token")
	flag.DurationVar(&config.TokenLifetime, "h", DefaultTokenLifetime, "Token lifetime (e.g. 1h, 30m, 2h30m)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func (c Config) FeePolicy() policy.FeePolicy {
	return policy.FeePolicy{
		FreeDeliveryThreshold: c.FreeDeliveryThreshold,
		DeliveryFee:           c.DeliveryFee,
	}
}

func (c Config) EarningsPolicy() policy.EarningsPolicy {
	return policy.EarningsPolicy{
		FreeDeliveryEarnings:  c.FreeDeliveryEarnings,
		PaidDeliveryEarnings:  c.PaidDeliveryEarnings,
		DailyTargetDeliveries: c.DailyTargetDeliveries,
		DailyTargetBonus:      c.DailyTargetBonus,
		PeakHourBonus:         c.PeakHourBonus,
		WeekendBonus:          c.WeekendBonus,
	}
}

func (c Config) CancellationPolicy() policy.CancellationPolicy {
	return policy.CancellationPolicy{Window: c.CancellationWindow}
}
