package env

import (
	"os"
)

const (
	environmentVariableNameSandboxAPIKey     = "SANDBOX_API_KEY"
	environmentVariableNameSandboxEndpoint   = "SANDBOX_API_URL"
	environmentVariableNameSandboxDomain     = "SANDBOX_DOMAIN"
	environmentVariableNameSandboxConfigFile = "SANDBOX_CONFIG_FILE"
	environmentVariableNameSandboxProfile    = "SANDBOX_PROFILE"
)

func APIKeyFromEnvironment() string {
	return os.Getenv(environmentVariableNameSandboxAPIKey)
}

func EndpointFromEnvironment() string {
	return os.Getenv(environmentVariableNameSandboxEndpoint)
}

func DomainFromEnvironment() string {
	return os.Getenv(environmentVariableNameSandboxDomain)
}

func ConfigFileFromEnvironment() string {
	return os.Getenv(environmentVariableNameSandboxConfigFile)
}

func ProfileFromEnvironment() string {
	return os.Getenv(environmentVariableNameSandboxProfile)
}
