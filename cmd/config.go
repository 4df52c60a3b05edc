package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort         string
	LogLevel         string
	LogFormat        string
	VehicleIDPrefix  string
	CustomerIDPrefix string
	ShipmentIDPrefix string
	AuditSchedule    string
	SeedPath         string
}

// DefaultConfig returns the settings used when the environment is silent.
func DefaultConfig() Config {
	return Config{
		HTTPPort:         "8080",
		LogLevel:         "info",
		LogFormat:        logger.FormatJSON,
		VehicleIDPrefix:  "V",
		CustomerIDPrefix: "C",
		ShipmentIDPrefix: "S",
		AuditSchedule:    "@every 1m",
	}
}

// LoadConfig reads envFile into the process environment, if it exists, and
// builds the configuration from the environment over the defaults.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s file: %w", envFile, err)
		}
	}

	d := DefaultConfig()
	config := Config{
		HTTPPort:         env("HTTP_PORT", d.HTTPPort),
		LogLevel:         env("LOG_LEVEL", d.LogLevel),
		LogFormat:        env("LOG_FORMAT", d.LogFormat),
		VehicleIDPrefix:  env("VEHICLE_ID_PREFIX", d.VehicleIDPrefix),
		CustomerIDPrefix: env("CUSTOMER_ID_PREFIX", d.CustomerIDPrefix),
		ShipmentIDPrefix: env("SHIPMENT_ID_PREFIX", d.ShipmentIDPrefix),
		AuditSchedule:    env("AUDIT_SCHEDULE", d.AuditSchedule),
		SeedPath:         env("SEED_PATH", d.SeedPath),
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks the port, log settings, prefixes and audit schedule.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		return errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", fmt.Errorf("%q is not a TCP port", c.HTTPPort))
	}

	if _, err := logger.New(os.Stderr, c.LogLevel, c.LogFormat); err != nil {
		return err
	}

	if _, err := c.IdentifierFormats(); err != nil {
		return err
	}

	if _, err := cron.ParseStandard(c.AuditSchedule); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("AUDIT_SCHEDULE", err)
	}

	return nil
}

// IdentifierFormats builds the registry identifier formats from the prefixes.
func (c Config) IdentifierFormats() (kernel.IdentifierFormats, error) {
	return kernel.NewIdentifierFormats(c.VehicleIDPrefix, c.CustomerIDPrefix, c.ShipmentIDPrefix)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
