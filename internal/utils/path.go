package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// AppDirName names the per-user directory for config and corpus files.
const AppDirName = "wordfind"

// PathResolver locates config and corpus files relative to the binary,
// the working directory and the user config dir.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  filepath.Dir(execPath),
		homeDir:        homeDir,
		configDir:      configDirFor(runtime.GOOS, homeDir),
	}
	log.Debugf("PathResolver initialized: exec=%s, configDir=%s", pr.executablePath, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform config directory
func configDirFor(goos, homeDir string) string {
	switch goos {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "darwin":
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, "."+AppDirName)
	}
}

// GetConfigPath returns the full path for a config file, falling back to other
// writable locations when the config dir is read-only
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	candidates := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, "."+AppDirName),
		filepath.Join(os.TempDir(), AppDirName),
		pr.executableDir,
	}
	for i, dir := range candidates {
		if CheckDirStatus(dir).Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path, nil
		}
	}
	return "", fmt.Errorf("no writable location for %s", filename)
}

// CorpusCandidates lists where a relative corpus path is looked for, in order
func (pr *PathResolver) CorpusCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	candidates := []string{}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.executableDir, "data", userPath),
		filepath.Join(pr.configDir, "data", userPath),
	)
	return candidates
}

// ResolveCorpusPath returns the first existing file among CorpusCandidates.
// An empty userPath stays empty: it selects the embedded corpus.
func (pr *PathResolver) ResolveCorpusPath(userPath string) (string, error) {
	if userPath == "" {
		return "", nil
	}
	candidates := pr.CorpusCandidates(userPath)
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found corpus file: %s", path)
			return path, nil
		}
		log.Debugf("Corpus candidate not found: %s", path)
	}
	return "", fmt.Errorf("corpus %s not found (tried %s)", userPath, strings.Join(candidates, ", "))
}

// GetRuntimeInfo returns debug information about the current runtime environment
func (pr *PathResolver) GetRuntimeInfo() map[string]string {
	cwd, _ := os.Getwd()
	return map[string]string{
		"executable_path": pr.executablePath,
		"current_dir":     cwd,
		"config_dir":      pr.configDir,
		"os":              runtime.GOOS,
		"arch":            runtime.GOARCH,
	}
}
