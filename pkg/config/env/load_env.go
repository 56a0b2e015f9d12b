package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH
// overrides the default path. Outside local mode a missing file is fine;
// the environment is expected to be set by the deployment instead.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" {
			slog.Error("failed to load .env in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("skipping .env", "path", envPath)
	}

	return nil
}
