package filesystem

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Target is a parsed path argument: either a local path or a location on an
// SFTP server.
type Target struct {
	Remote bool

	// Path is the local path, or the remote path as the server will see it.
	Path string

	// Remote only.
	Host string
	Port int
	User string
}

// Address returns user@host:port for remote targets and "" for local ones.
func (t Target) Address() string {
	if !t.Remote {
		return ""
	}

	return fmt.Sprintf("%s@%s:%d", t.User, t.Host, t.Port)
}

// SameServer reports whether both targets are local, or both name the same
// user, host and port.
func (t Target) SameServer(other Target) bool {
	return t.Remote == other.Remote && t.Address() == other.Address()
}

// String renders the target the way it would be written on the command line.
func (t Target) String() string {
	if !t.Remote {
		return t.Path
	}

	remotePath := "/" + t.Path
	if t.Path == "." {
		remotePath = ""
	}

	return fmt.Sprintf("sftp://%s%s", t.Address(), remotePath)
}

// ParseTarget parses a path string, detecting whether it's a local path or SFTP URL.
// SFTP URLs have the format: sftp://user@host:port/path/to/dir
// Port is optional (defaults to 22)
// Examples:
//   - sftp://joe@myserver.com/home/joe/data
//   - sftp://joe@myserver.com:2222/backups
//   - /local/path/to/files (local path)
func ParseTarget(path string) (Target, error) {
	if strings.HasPrefix(path, "sftp://") {
		return parseSFTPURL(path)
	}

	return Target{Path: path}, nil
}

// parseSFTPURL parses an SFTP URL into its components.
//
//nolint:cyclop // Complexity from comprehensive SFTP URL validation (scheme, user, host, port, path)
func parseSFTPURL(sftpURL string) (Target, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return Target{}, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return Target{}, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)") //nolint:err113,perfsprint,lll // URL validation with format guidance
	}

	if _, hasPassword := u.User.Password(); hasPassword {
		return Target{}, fmt.Errorf("SFTP URL must not embed a password; use the SSH agent or a key") //nolint:err113,perfsprint,lll // URL validation with format guidance
	}

	host := u.Hostname()
	if host == "" {
		return Target{}, fmt.Errorf("SFTP URL must include host") //nolint:err113,perfsprint // URL validation error
	}

	port := DefaultSFTPPort

	if portStr := u.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return Target{}, fmt.Errorf("invalid port number: %w", err)
		}

		if p < 1 || p > 65535 {
			return Target{}, fmt.Errorf("port %d out of range", p) //nolint:err113 // URL validation with actual value
		}

		port = p
	}

	// SFTP path convention:
	//   sftp://user@host/path  → relative to home directory (strip leading /)
	//   sftp://user@host//path → absolute path /path (strip one /)
	//   sftp://user@host       → home directory (.)
	remotePath := u.Path

	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return Target{
		Remote: true,
		Path:   remotePath,
		Host:   host,
		Port:   port,
		User:   u.User.Username(),
	}, nil
}
