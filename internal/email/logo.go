package email

import "os"

// LogoProvider supplies the raw bytes of the brand logo. Implementations
// may return an error when no asset is available; callers treat that as
// "no logo", not as a failure.
type LogoProvider interface {
	LogoBytes() ([]byte, error)
}

// FileLogo reads the logo from a file on disk.
type FileLogo struct {
	Path string
}

func (f FileLogo) LogoBytes() ([]byte, error) {
	if f.Path == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(f.Path)
}
