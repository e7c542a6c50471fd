package cmd

import (
	"fmt"
	"strconv"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
)

const defaultMenuCacheSize = 128

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	Currency               kernel.Currency
	OrderStatsSchedule     string
	MenuCacheSchedule      string
	MenuCacheSize          int
}

// ConfigFromEnv reads the configuration through getenv, usually os.Getenv after the
// .env file was loaded.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               getenv("HTTP_PORT"),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              getenv("DB_SSLMODE"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		Currency:               kernel.SystemCurrency,
		OrderStatsSchedule:     getenv("ORDER_STATS_SCHEDULE"),
		MenuCacheSchedule:      getenv("MENU_CACHE_SCHEDULE"),
		MenuCacheSize:          defaultMenuCacheSize,
	}

	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.DBSslMode == "" {
		config.DBSslMode = "disable"
	}

	if code := getenv("CURRENCY"); code != "" {
		currency, err := kernel.CurrencyOf(code)
		if err != nil {
			return Config{}, err
		}
		config.Currency = currency
	}

	if raw := getenv("MENU_CACHE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("MENU_CACHE_SIZE", err)
		}
		if size <= 0 {
			return Config{}, errs.NewValueIsOutOfRangeError("MENU_CACHE_SIZE", size, 1, "unbounded")
		}
		config.MenuCacheSize = size
	}

	if config.KafkaHost != "" && config.KafkaOrderChangedTopic == "" {
		return Config{}, errs.NewValueIsRequiredError("KAFKA_ORDER_CHANGED_TOPIC")
	}

	return config, nil
}

// DSN returns the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
