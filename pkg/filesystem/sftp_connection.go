package filesystem

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Exported constants.
const (
	// DefaultSFTPPort is used when a URL names no port.
	DefaultSFTPPort = 22
	// DefaultDialTimeout bounds the TCP dial and SSH handshake.
	DefaultDialTimeout = 15 * time.Second
)

// Exported variables.
var (
	ErrNoAuthMethods = errors.New("no SSH authentication methods available (tried SSH agent and identity files)")
	ErrNoKnownHosts  = errors.New("strict host key checking requires a known_hosts file")
)

// SSHOptions tunes how Connect authenticates and verifies the server.
// The zero value uses ~/.ssh/known_hosts, the default identity files and
// DefaultDialTimeout, and accepts any host key when known_hosts is missing.
type SSHOptions struct {
	KnownHostsFile string
	IdentityFiles  []string
	DialTimeout    time.Duration
	StrictHostKeys bool
}

// SFTPConnection holds an active SSH/SFTP connection.
type SFTPConnection struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	agentConn  net.Conn
	target     Target
	closeOnce  sync.Once
	closeErr   error
}

// Connect establishes an SSH connection to target with the default SSHOptions.
func Connect(ctx context.Context, target Target) (*SFTPConnection, error) {
	return SSHOptions{}.Connect(ctx, target)
}

// Connect establishes an SSH connection to target and opens an SFTP session.
// Authentication uses the SSH agent, then the identity files. Host keys are
// checked against the known_hosts file when it exists.
func (o SSHOptions) Connect(ctx context.Context, target Target) (*SFTPConnection, error) {
	authMethods, agentConn := getSSHAuthMethods(o.identityFiles())
	if len(authMethods) == 0 {
		return nil, ErrNoAuthMethods
	}

	hostKeyCallback, err := hostKeyCallback(o.knownHostsFile(), o.StrictHostKeys)
	if err != nil {
		closeQuietly(agentConn)
		return nil, fmt.Errorf("failed to load known hosts: %w", err)
	}

	timeout := o.DialTimeout
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}

	config := &ssh.ClientConfig{
		User:            target.User,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	}

	addr := net.JoinHostPort(target.Host, strconv.Itoa(target.Port))

	sshClient, err := dialSSH(ctx, addr, config)
	if err != nil {
		closeQuietly(agentConn)
		return nil, fmt.Errorf("SSH connection failed: %w", err)
	}

	sftpClient, err := sftp.NewClient(sshClient, sftp.MaxPacket(64*1024)) //nolint:mnd // 64KB packets
	if err != nil {
		_ = sshClient.Close()
		closeQuietly(agentConn)

		return nil, fmt.Errorf("SFTP session creation failed: %w", err)
	}

	return &SFTPConnection{
		sshClient:  sshClient,
		sftpClient: sftpClient,
		agentConn:  agentConn,
		target:     target,
	}, nil
}

// Client returns the underlying SFTP client.
func (c *SFTPConnection) Client() *sftp.Client {
	return c.sftpClient
}

// Close closes the SFTP session and SSH connection. Later calls return the
// result of the first.
func (c *SFTPConnection) Close() error {
	c.closeOnce.Do(func() {
		if c.sftpClient != nil {
			if err := c.sftpClient.Close(); err != nil && c.closeErr == nil {
				c.closeErr = err
			}
		}

		if c.sshClient != nil {
			if err := c.sshClient.Close(); err != nil && c.closeErr == nil {
				c.closeErr = err
			}
		}

		closeQuietly(c.agentConn)
	})

	return c.closeErr
}

// String describes the connection as user@host:port.
func (c *SFTPConnection) String() string {
	return c.target.Address()
}

func closeQuietly(conn net.Conn) {
	if conn != nil {
		_ = conn.Close()
	}
}

// dialSSH dials addr honoring ctx, then runs the SSH handshake on the connection.
func dialSSH(ctx context.Context, addr string, config *ssh.ClientConfig) (*ssh.Client, error) {
	dialer := &net.Dialer{Timeout: config.Timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	clientConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("handshake with %s failed: %w", addr, err)
	}

	_ = conn.SetDeadline(time.Time{})

	return ssh.NewClient(clientConn, chans, reqs), nil
}

func (o SSHOptions) identityFiles() []string {
	if len(o.IdentityFiles) > 0 {
		return o.IdentityFiles
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	sshDir := filepath.Join(homeDir, ".ssh")

	return []string{
		filepath.Join(sshDir, "id_ed25519"),
		filepath.Join(sshDir, "id_rsa"),
		filepath.Join(sshDir, "id_ecdsa"),
	}
}

func (o SSHOptions) knownHostsFile() string {
	if o.KnownHostsFile != "" {
		return o.KnownHostsFile
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".ssh", "known_hosts")
}

// getSSHAuthMethods returns SSH authentication methods in priority order:
// 1. SSH agent
// 2. Identity files
// The agent connection, if any, must be closed with the SSH client.
func getSSHAuthMethods(keyFiles []string) ([]ssh.AuthMethod, net.Conn) {
	var authMethods []ssh.AuthMethod

	agentAuth, agentConn := trySSHAgent()
	if agentAuth != nil {
		authMethods = append(authMethods, agentAuth)
	}

	authMethods = append(authMethods, loadSSHKeys(keyFiles)...)

	return authMethods, agentConn
}

// hostKeyCallback verifies against knownHostsPath. Without that file any key is
// accepted, unless strict is set.
func hostKeyCallback(knownHostsPath string, strict bool) (ssh.HostKeyCallback, error) {
	if knownHostsPath == "" {
		if strict {
			return nil, ErrNoKnownHosts
		}

		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // no home directory to hold known_hosts
	}

	if _, err := os.Stat(knownHostsPath); err != nil {
		if strict {
			return nil, fmt.Errorf("%w: %s", ErrNoKnownHosts, knownHostsPath)
		}

		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // no known_hosts to verify against
	}

	callback, err := knownhosts.New(knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", knownHostsPath, err)
	}

	return callback, nil
}

// trySSHAgent attempts to connect to the SSH agent.
func trySSHAgent() (ssh.AuthMethod, net.Conn) {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil, nil
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, nil
	}

	agentClient := agent.NewClient(conn)

	return ssh.PublicKeysCallback(agentClient.Signers), conn
}

// loadSSHKeys loads the unencrypted keys among keyFiles; missing files are skipped.
func loadSSHKeys(keyFiles []string) []ssh.AuthMethod {
	var authMethods []ssh.AuthMethod

	for _, keyPath := range keyFiles {
		keyData, err := os.ReadFile(keyPath) // #nosec G304 - key locations come from the user
		if err != nil {
			continue
		}

		// Password-protected keys are skipped.
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			continue
		}

		authMethods = append(authMethods, ssh.PublicKeys(signer))
	}

	return authMethods
}
