// Package credential supplies the secret used to unlock a validator account
// on a node. Secrets are never logged and never embedded in errors.
package credential

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/term"
)

// ErrCredentialUnavailable is returned when no credential can be obtained for an account.
var ErrCredentialUnavailable = errors.New("credential unavailable")

// Provider returns the unlock credential for an account.
type Provider interface {
	Credential(ctx context.Context, account common.Address) (string, error)
}

// Static is a Provider backed by a fixed secret, typically loaded from the environment.
type Static string

var _ Provider = Static("")

// Credential implements Provider.
func (s Static) Credential(_ context.Context, account common.Address) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: no secret configured for %s", ErrCredentialUnavailable, account.Hex())
	}

	return string(s), nil
}

// String hides the secret from fmt verbs.
func (s Static) String() string {
	return "[REDACTED]"
}

// GoString hides the secret from %#v.
func (s Static) GoString() string {
	return "credential.Static([REDACTED])"
}

// Prompt is a Provider that asks for the credential on a terminal without
// echoing it. The answer is cached per account.
type Prompt struct {
	fd     int
	out    io.Writer
	read   func(fd int) ([]byte, error)
	mu     sync.Mutex
	cached map[common.Address]string
}

var _ Provider = (*Prompt)(nil)

// NewPrompt returns a Prompt reading from stdin and writing the question to stderr.
func NewPrompt() *Prompt {
	return &Prompt{
		fd:     int(os.Stdin.Fd()),
		out:    os.Stderr,
		read:   term.ReadPassword,
		cached: make(map[common.Address]string),
	}
}

// Credential implements Provider.
func (p *Prompt) Credential(ctx context.Context, account common.Address) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if secret, ok := p.cached[account]; ok {
		return secret, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "Password for %s: ", account.Hex())
	secret, err := p.read(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("%w: reading terminal: %w", ErrCredentialUnavailable, err)
	}

	if len(secret) == 0 {
		return "", fmt.Errorf("%w: empty password for %s", ErrCredentialUnavailable, account.Hex())
	}

	p.cached[account] = string(secret)
	return string(secret), nil
}

// Chain tries each provider in order and returns the first credential found.
type Chain []Provider

var _ Provider = Chain(nil)

// Credential implements Provider.
func (c Chain) Credential(ctx context.Context, account common.Address) (string, error) {
	for _, p := range c {
		secret, err := p.Credential(ctx, account)
		if err == nil {
			return secret, nil
		}
		if !errors.Is(err, ErrCredentialUnavailable) {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %s", ErrCredentialUnavailable, account.Hex())
}
