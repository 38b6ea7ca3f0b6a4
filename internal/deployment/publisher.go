package deployment

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/ssh"
)

// Publisher ships snapshot files to a remote host via SSH/SCP
type Publisher struct {
	keyPath    string
	publishURL string
	client     *ssh.Client
	connected  bool
}

// NewPublisher creates a publisher for the given target URL
func NewPublisher(publishURL string) *Publisher {
	return &Publisher{
		keyPath:    "deploy.pem",
		publishURL: publishURL,
	}
}

// parsePublishURL parses a publish URL in format: user@host:path
func (p *Publisher) parsePublishURL() (user, host, remotePath string, err error) {
	if p.publishURL == "" {
		return "", "", "", fmt.Errorf("publish URL is empty")
	}

	// Split by @ to get user and host:path
	parts := strings.SplitN(p.publishURL, "@", 2)
	if len(parts) != 2 {
		return "", "", "", fmt.Errorf("invalid publish URL format: expected user@host:path")
	}

	user = parts[0]
	hostPath := parts[1]

	// Split by : to get host and path
	hostParts := strings.SplitN(hostPath, ":", 2)
	if len(hostParts) != 2 {
		return "", "", "", fmt.Errorf("invalid publish URL format: expected user@host:path")
	}

	host = hostParts[0]
	remotePath = hostParts[1]

	return user, host, remotePath, nil
}

// Connect establishes SSH connection
func (p *Publisher) Connect() error {
	if p.connected {
		return nil
	}

	user, host, _, err := p.parsePublishURL()
	if err != nil {
		return fmt.Errorf("failed to parse publish URL: %w", err)
	}

	// Read private key
	keyData, err := os.ReadFile(p.keyPath)
	if err != nil {
		return fmt.Errorf("failed to read SSH key file %s: %w", p.keyPath, err)
	}

	// Parse private key
	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return fmt.Errorf("failed to parse SSH private key: %w", err)
	}

	// Create SSH client config
	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // In production, use proper host key verification
		Timeout:         30 * time.Second,
	}

	// Connect to SSH server
	p.client, err = ssh.Dial("tcp", net.JoinHostPort(host, "22"), config)
	if err != nil {
		return fmt.Errorf("failed to connect to SSH server %s: %w", host, err)
	}

	p.connected = true
	log.Info().
		Str("host", host).
		Str("user", user).
		Msg("Successfully connected to SSH server")

	return nil
}

// Disconnect closes SSH connection
func (p *Publisher) Disconnect() error {
	if p.client != nil {
		err := p.client.Close()
		p.connected = false
		p.client = nil
		return err
	}
	return nil
}

// PublishSnapshot uploads snapshot bytes via SCP under the given filename
func (p *Publisher) PublishSnapshot(data []byte, filename string) error {
	if !p.connected {
		if err := p.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
	}

	_, _, remotePath, err := p.parsePublishURL()
	if err != nil {
		return fmt.Errorf("failed to parse publish URL: %w", err)
	}

	// Create SCP session
	session, err := p.client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	// Construct remote file path
	remoteFilePath := filepath.Join(remotePath, filename)

	// Create SCP command
	scpCmd := fmt.Sprintf("scp -t %s", remoteFilePath)

	// Get stdin for SCP
	stdin, err := session.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}

	// Start SCP session
	err = session.Start(scpCmd)
	if err != nil {
		return fmt.Errorf("failed to start SCP session: %w", err)
	}

	// Send file header
	header := fmt.Sprintf("C0644 %d %s\n", len(data), filename)
	_, err = stdin.Write([]byte(header))
	if err != nil {
		return fmt.Errorf("failed to write SCP header: %w", err)
	}

	// Copy snapshot content
	_, err = stdin.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write snapshot content: %w", err)
	}

	// Send end marker
	_, err = stdin.Write([]byte{0})
	if err != nil {
		return fmt.Errorf("failed to write SCP end marker: %w", err)
	}

	// Close stdin and wait for completion
	stdin.Close()
	err = session.Wait()
	if err != nil {
		return fmt.Errorf("SCP session failed: %w", err)
	}

	log.Info().
		Str("remote_path", remoteFilePath).
		Int("size", len(data)).
		Msg("Successfully published snapshot via SCP")

	return nil
}
