package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/ByteArena/engine2d"
	"github.com/joho/godotenv"
)

const (
	EnvDistanceTol = "ENGINE2D_DISTANCE_TOL"
	EnvVelocityTol = "ENGINE2D_VELOCITY_TOL"
	EnvAccuracy    = "ENGINE2D_ACCURACY"
	EnvSpacing     = "ENGINE2D_SPACING"
)

// Load reads the given .env files, or ./.env when none are given, then
// builds collision tolerances from the environment. Unset variables keep
// their defaults. A missing default .env file is not an error.
func Load(files ...string) (engine2d.Tolerances, error) {
	t := engine2d.DefaultTolerances()

	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return t, fmt.Errorf("loading environment: %w", err)
		}
	} else {
		log.Println("Successfully loaded environment variables")
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{EnvDistanceTol, &t.DistanceTol},
		{EnvVelocityTol, &t.VelocityTol},
		{EnvAccuracy, &t.Accuracy},
		{EnvSpacing, &t.Spacing},
	}
	for _, f := range fields {
		s, err := GetEnvVariable(f.name)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return t, fmt.Errorf("%s=%q: %w", f.name, s, err)
		}
		*f.dst = v
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("%+v: %w", t, err)
	}
	return t, nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}
