package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/dayledger/internal/security"
)

const generatedSecretLength = 48

var errAuthSecretUnset = errors.New("DAYLEDGER_AUTH_SECRET is not set; run `dayledger token --generate-secret` to create one")

type TokenCmd struct {
	Owner          string        `help:"Owner the token authenticates; defaults to DAYLEDGER_DEFAULT_OWNER."`
	TTL            time.Duration `name:"ttl" help:"Token lifetime." default:"720h"`
	GenerateSecret bool          `help:"Print a fresh random auth secret instead of a token."`
}

func (cmd *TokenCmd) Run(ctx *Context) error {
	if cmd.GenerateSecret {
		secret, err := security.GenerateSecret(generatedSecretLength)
		if err != nil {
			return fmt.Errorf("generate secret: %w", err)
		}
		fmt.Fprintln(ctx.Stdout, secret)
		return nil
	}

	if ctx.Config.AuthSecret == "" {
		return errAuthSecretUnset
	}
	token, err := security.IssueOwnerToken(ctx.Config.AuthSecret, ctx.owner(cmd.Owner), ctx.Now(), cmd.TTL)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	fmt.Fprintln(ctx.Stdout, token)
	return nil
}
