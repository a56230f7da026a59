package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SchedulerConfig holds cron expressions for the periodic sweeps.
type SchedulerConfig struct {
	RoomReclaimSpec     string
	DailyRolloverSpec   string
	MonthlyRolloverSpec string
	PaymentDaySpec      string
	RevisitReminderSpec string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: viper.GetString("DB_MIGRATIONS_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Scheduler: SchedulerConfig{
			RoomReclaimSpec:     viper.GetString("CRON_ROOM_RECLAIM"),
			DailyRolloverSpec:   viper.GetString("CRON_DAILY_ROLLOVER"),
			MonthlyRolloverSpec: viper.GetString("CRON_MONTHLY_ROLLOVER"),
			PaymentDaySpec:      viper.GetString("CRON_PAYMENT_DAY"),
			RevisitReminderSpec: viper.GetString("CRON_REVISIT_REMINDER"),
		},
	}

	if config.DB.MigrationsDir == "" {
		config.DB.MigrationsDir = "migrations"
	}
	if config.Scheduler.RoomReclaimSpec == "" {
		config.Scheduler.RoomReclaimSpec = "*/15 * * * *"
	}
	if config.Scheduler.DailyRolloverSpec == "" {
		config.Scheduler.DailyRolloverSpec = "5 0 * * *"
	}
	if config.Scheduler.MonthlyRolloverSpec == "" {
		config.Scheduler.MonthlyRolloverSpec = "10 0 * * *"
	}
	if config.Scheduler.PaymentDaySpec == "" {
		config.Scheduler.PaymentDaySpec = "0 * * * *"
	}
	if config.Scheduler.RevisitReminderSpec == "" {
		config.Scheduler.RevisitReminderSpec = "0 9 * * *"
	}

	return config, nil
}
