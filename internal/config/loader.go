package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path based on an explicit
// flag value, an environment variable, and default locations, in that
// priority order. Mirrors the teacher's config.GetConfigPath.
//
// Priority:
//  1. configFilePathFlag, if set and the file exists
//  2. JSURLX_CONFIG_PATH environment variable, if set and the file exists
//  3. config.yaml / config.json in the current working directory
//  4. config.yaml / config.json in the executable's directory
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if fileExists(configFilePathFlag) {
			return configFilePathFlag
		}
	}

	if envPath := os.Getenv("JSURLX_CONFIG_PATH"); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	cwd, errCwd := os.Getwd()
	exePath, errExe := os.Executable()
	exeDir := ""
	if errExe == nil {
		exeDir = filepath.Dir(exePath)
	}

	var locations []string
	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if errExe == nil && exeDir != "" && (errCwd != nil || exeDir != cwd) {
		locations = append(locations, exeDir)
	}

	for _, loc := range locations {
		for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
			path := filepath.Join(loc, name)
			if fileExists(path) {
				return path
			}
		}
	}

	return ""
}

func isYAMLFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func readConfigFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
