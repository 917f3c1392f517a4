package ssh

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_ssh_connection.go . SSHConnection
type SSHConnection interface {
	Run(cmd string) (stdout, stderr []byte, exitCode int, err error)
	Username() string
}

type Connection struct {
	host   string
	user   string
	client *ssh.Client
	logger Logger
}

type Logger interface {
	Debug(tag, msg string, args ...interface{})
	Warn(tag, msg string, args ...interface{})
}

const dialTimeout = 30 * time.Second

// NewConnection dials the target host, retrying transient dial failures
// with capped exponential backoff. Commands issued over the connection
// are never retried.
func NewConnection(host, user, privateKey string, hostKeyCallback ssh.HostKeyCallback, logger Logger) (SSHConnection, error) {
	parsedPrivateKey, err := ssh.ParsePrivateKey([]byte(privateKey))
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	sshConfig := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(parsedPrivateKey),
		},
		HostKeyCallback: hostKeyCallback,
		Timeout:         dialTimeout,
	}

	var client *ssh.Client
	dialPolicy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)
	err = backoff.RetryNotify(func() error {
		var dialErr error
		client, dialErr = ssh.Dial("tcp", defaultPort(host), sshConfig)
		return dialErr
	}, dialPolicy, func(dialErr error, wait time.Duration) {
		logger.Warn("ssh", "Dialling %s failed, retrying in %s: %s", host, wait, dialErr)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "dialling %s", host)
	}

	return Connection{host: host, user: user, client: client, logger: logger}, nil
}

func (c Connection) Run(cmd string) ([]byte, []byte, int, error) {
	session, err := c.client.NewSession()
	if err != nil {
		return nil, nil, -1, errors.Wrap(err, "opening ssh session")
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	c.logger.Debug("ssh", "Running '%s' on %s", cmd, c.host)

	err = session.Run(cmd)
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitStatus(), nil
		}
		return stdout.Bytes(), stderr.Bytes(), -1, errors.Wrapf(err, "running '%s'", cmd)
	}

	return stdout.Bytes(), stderr.Bytes(), 0, nil
}

func (c Connection) Username() string {
	return c.user
}

func defaultPort(host string) string {
	for _, char := range host {
		if char == ':' {
			return host
		}
	}
	return fmt.Sprintf("%s:22", host)
}
