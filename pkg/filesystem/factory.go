package filesystem

import (
	"context"
	"errors"
	"fmt"
)

// Exported variables.
var (
	ErrMixedTargets = errors.New("all paths must be local or on the same SFTP server")
)

// Session is the file system resolved for a set of path arguments.
type Session struct {
	FS FileSystem
	// Paths holds the arguments with any sftp:// prefix stripped, in order.
	Paths []string

	conn *SFTPConnection
}

// Close releases the SFTP connection, if any. It is safe on a local session.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}

	return s.conn.Close()
}

// Remote reports whether the session is backed by an SFTP connection.
func (s *Session) Remote() bool {
	return s.conn != nil
}

// ConnectFunc opens an SFTP connection for a remote target.
type ConnectFunc func(ctx context.Context, target Target) (*SFTPConnection, error)

// CreateFileSystem resolves path arguments to one FileSystem. Local paths use
// RealFileSystem; sftp:// URLs open one SFTP connection shared by all of them.
func CreateFileSystem(ctx context.Context, pathStrs ...string) (*Session, error) {
	return createFileSystem(ctx, Connect, pathStrs)
}

// CreateFileSystemWithOptions is CreateFileSystem connecting with opts.
func CreateFileSystemWithOptions(ctx context.Context, opts SSHOptions, pathStrs ...string) (*Session, error) {
	return createFileSystem(ctx, opts.Connect, pathStrs)
}

func createFileSystem(ctx context.Context, connect ConnectFunc, pathStrs []string) (*Session, error) {
	targets, err := ParseTargets(pathStrs...)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(targets))
	for i, target := range targets {
		paths[i] = target.Path
	}

	if len(targets) == 0 || !targets[0].Remote {
		return &Session{FS: NewRealFileSystem(), Paths: paths}, nil
	}

	conn, err := connect(ctx, targets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", targets[0].Address(), err)
	}

	return &Session{
		FS:    NewSFTPFileSystem(conn.Client()),
		Paths: paths,
		conn:  conn,
	}, nil
}

// ParseTargets parses every path and checks they all share one server.
func ParseTargets(pathStrs ...string) ([]Target, error) {
	targets := make([]Target, 0, len(pathStrs))

	for _, pathStr := range pathStrs {
		target, err := ParseTarget(pathStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", pathStr, err)
		}

		if len(targets) > 0 && !targets[0].SameServer(target) {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedTargets, targets[0], target)
		}

		targets = append(targets, target)
	}

	return targets, nil
}
