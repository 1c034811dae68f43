package configuration

import (
	"errors"
	"io/fs"
	"os"

	"tube-catalog/infrastructure/logger"

	"github.com/joho/godotenv"
)

// LoadEnvFromFile exports KEY=VALUE pairs from the given dotenv files, in order.
// Variables already present in the process environment win over file values.
// Missing files are skipped; unreadable ones are logged and skipped.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		values, err := godotenv.Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			logger.GetLogger().WithField("path", p).Debug("Env file not found, skipping")
			continue
		}
		if err != nil {
			logger.GetLogger().WithField("path", p).WithField("error", err).Warn("Could not read env file")
			continue
		}
		loaded := 0
		for key, val := range values {
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
			if err := os.Setenv(key, val); err != nil {
				logger.GetLogger().WithField("key", key).WithField("error", err).Warn("Could not export env value")
				continue
			}
			loaded++
		}
		logger.GetLogger().WithField("path", p).WithField("loaded", loaded).Info("Loaded env file")
	}
}
