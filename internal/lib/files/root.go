package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSystem interface for filesystem operations
type FileSystem interface {
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (afero.File, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	Stat(name string) (os.FileInfo, error)
	UserConfigDir() (string, error)
	Getenv(key string) string
}

// defaultFileSystem implements FileSystem using Afero
type defaultFileSystem struct {
	fs afero.Fs
}

func (d *defaultFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return d.fs.MkdirAll(path, perm)
}

func (d *defaultFileSystem) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return d.fs.OpenFile(name, flag, perm)
}

func (d *defaultFileSystem) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(d.fs, name)
}

func (d *defaultFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(d.fs, name, data, perm)
}

func (d *defaultFileSystem) Stat(name string) (os.FileInfo, error) {
	return d.fs.Stat(name)
}

func (d *defaultFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (d *defaultFileSystem) Getenv(key string) string {
	return os.Getenv(key)
}

var fileSystem FileSystem = &defaultFileSystem{fs: afero.NewOsFs()}

// SetFileSystem sets the file system implementation
func SetFileSystem(fs FileSystem) {
	fileSystem = fs
}

// ResetDependencies resets all dependencies to their default implementations
func ResetDependencies() {
	fileSystem = &defaultFileSystem{fs: afero.NewOsFs()}
}

func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := fileSystem.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil
}

// GetAppDataPath returns the path to the app data directory.
// JOKESTER_HOME wins over the user's config directory,
// e.g. /home/user/.config/jokester
func GetAppDataPath() (string, error) {
	if home := fileSystem.Getenv("JOKESTER_HOME"); home != "" {
		return EnsureDirExists(home)
	}
	userConfigDir, err := fileSystem.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return EnsureDirExists(filepath.Join(userConfigDir, "jokester"))
}

// GetConfigFilePath returns the path to the YAML config file
// e.g. /home/user/.config/jokester/config.yaml
func GetConfigFilePath() (string, error) {
	dir, err := GetAppDataPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// GetLogFilePath returns the path to the log file
// e.g. /home/user/.config/jokester/jokester.log
func GetLogFilePath() (string, error) {
	dir, err := GetAppDataPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jokester.log"), nil
}

func EnsureDirExists(path string) (string, error) {
	if _, err := fileSystem.Stat(path); os.IsNotExist(err) {
		if err := fileSystem.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	return path, nil
}

// OpenLogFile opens the log file for appending, creating it if needed.
func OpenLogFile() (io.WriteCloser, error) {
	path, err := GetLogFilePath()
	if err != nil {
		return nil, err
	}
	f, err := fileSystem.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %s: %w", path, err)
	}
	return f, nil
}

func ReadFile(path string) ([]byte, error) {
	return fileSystem.ReadFile(path)
}

// WriteFile writes data to path, creating parent directories first.
func WriteFile(path string, data []byte) error {
	if _, err := EnsureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	return fileSystem.WriteFile(path, data, 0644)
}
