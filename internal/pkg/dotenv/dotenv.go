package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env и применяет флаги командной строки поверх переменных окружения.
// Уже выставленные переменные окружения .env не перезаписывает.
func Load(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	var (
		portFlag    string
		backendFlag string
	)
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&backendFlag, "backend-url", "", "Backend base URL (overrides BACKEND_BASE_URL environment variable)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":             portFlag,
		"BACKEND_BASE_URL": backendFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
