package config

import (
	"os"
	"strconv"
)

const (
	appNameVar    = "APP_NAME"
	apiBaseURLVar = "API_BASE_URL"
	folderEnvVar  = "FOLDER"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Employee Console")
}

// GetAPIBaseURL returns the base URL of the employee-management REST
// backend, e.g. "http://localhost:8000/api"
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:8000/api")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

func (EnvVars) GetHTTPTimeoutSeconds() int {
	v, err := strconv.Atoi(GetEnv("HTTP_TIMEOUT_SECONDS", "30"))
	if err != nil || v <= 0 {
		return 30
	}
	return v
}

func (EnvVars) GetAdminLoginPath() string {
	return GetEnv("ADMIN_LOGIN_PATH", "/admin")
}

func (EnvVars) GetEmployeeLoginPath() string {
	return GetEnv("EMPLOYEE_LOGIN_PATH", "/login")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
