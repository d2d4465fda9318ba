package builder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"modlist-builder/core/modlist"
)

// Confirmer decides whether a build may continue without the unmatched entries.
type Confirmer interface {
	Confirm(ctx context.Context, unmatched []modlist.UnmatchedEntry) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, unmatched []modlist.UnmatchedEntry) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, unmatched []modlist.UnmatchedEntry) (bool, error) {
	return f(ctx, unmatched)
}

var (
	// AcceptUnmatched always continues.
	AcceptUnmatched Confirmer = ConfirmFunc(func(context.Context, []modlist.UnmatchedEntry) (bool, error) {
		return true, nil
	})

	// DeclineUnmatched always terminates.
	DeclineUnmatched Confirmer = ConfirmFunc(func(context.Context, []modlist.UnmatchedEntry) (bool, error) {
		return false, nil
	})
)

// PromptConfirmer lists the unmatched entries and asks for "yes" on In.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints the entries and reads a single answer line.
func (p *PromptConfirmer) Confirm(ctx context.Context, unmatched []modlist.UnmatchedEntry) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(p.Out, "\n%d preset entries are not installed:\n", len(unmatched))
	for _, entry := range unmatched {
		fmt.Fprintf(p.Out, "  - %s\n", entry)
	}
	fmt.Fprint(p.Out, "\nType 'yes' to continue without them: ")

	response, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		// No answer counts as a refusal.
		return false, nil
	}

	return strings.TrimSpace(response) == "yes", nil
}
