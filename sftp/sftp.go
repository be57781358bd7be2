package sftp

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pkg/sftp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

var ErrNoKnownHosts = errors.New("no known_hosts file provided")

type Config struct {
	Username   string
	Password   string
	PrivateKey string // PEM encoded
	Server     string // host:port
	KnownHosts string // known_hosts file path, required
	Timeout    time.Duration // 0 for no timeout
}

type Client struct {
	config     Config
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

func New(config Config) (*Client, error) {
	c := &Client{
		config: config,
	}

	if err := c.connect(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) authMethods() ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if c.config.PrivateKey != "" {
		signer, err := ssh.ParsePrivateKey([]byte(c.config.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	if c.config.Password != "" {
		methods = append(methods, ssh.Password(c.config.Password))
	}

	if len(methods) == 0 {
		return nil, errors.New("no password or private key provided")
	}

	return methods, nil
}

func (c *Client) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if c.config.KnownHosts == "" {
		return nil, ErrNoKnownHosts
	}

	return knownhosts.New(c.config.KnownHosts)
}

func (c *Client) connect() error {
	auth, err := c.authMethods()
	if err != nil {
		return err
	}

	hostKeyCallback, err := c.hostKeyCallback()
	if err != nil {
		return fmt.Errorf("failed to load known hosts: %w", err)
	}

	cfg := &ssh.ClientConfig{
		User:            c.config.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         c.config.Timeout,
	}

	sshClient, err := ssh.Dial("tcp", c.config.Server, cfg)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", c.config.Server, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return fmt.Errorf("failed to start sftp session: %w", err)
	}

	c.sshClient = sshClient
	c.sftpClient = sftpClient

	log.Debugf("connected to %s as %s", c.config.Server, c.config.Username)

	return nil
}

// Download opens a remote file for reading. The caller closes it.
func (c *Client) Download(remotePath string) (io.ReadCloser, error) {
	f, err := c.sftpClient.Open(remotePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote %s: %w", remotePath, err)
	}

	return f, nil
}

func (c *Client) Close() {
	if c.sftpClient != nil {
		c.sftpClient.Close()
	}
	if c.sshClient != nil {
		c.sshClient.Close()
	}
}
