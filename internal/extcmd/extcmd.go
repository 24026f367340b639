package extcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"

	perrors "github.com/pasture-cli/pasture/internal/errors"
)

// Destination selects where decrypted cleartext is delivered.
type Destination string

const (
	DestStdout Destination = "stdout"
	DestClip   Destination = "clip"
	DestQRCode Destination = "qr"
)

// DecryptToString decrypts one store entry with gpg and returns its
// cleartext.
func DecryptToString(ctx context.Context, entryPath string) (string, error) {
	cmd := exec.CommandContext(ctx, "gpg", "--quiet", "-d", entryPath)
	cmd.Env = withoutDisplay(os.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", subprocessError("gpg", stderr.String(), err)
	}
	return stdout.String(), nil
}

// Encrypt encrypts a cleartext file in place with gpg, producing a .gpg
// sibling next to it.
func Encrypt(ctx context.Context, cleartextPath string) error {
	cmd := exec.CommandContext(ctx, "gpg",
		"--quiet", "-e", "--default-recipient-self", cleartextPath)
	cmd.Env = withoutDisplay(os.Environ())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return subprocessError("gpg", stderr.String(), err)
	}
	return nil
}

// InvokeEditor runs the given editor on a file in place, attached to the
// terminal.
func InvokeEditor(ctx context.Context, editor, path string) error {
	if editor == "" {
		return perrors.ErrEditorUnset
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return subprocessError(editor, "", err)
	}
	return nil
}

// Deliver routes cleartext to the selected destination. Surrounding
// whitespace is trimmed first so clipboard and QR payloads stay exact.
func Deliver(ctx context.Context, cleartext string, dest Destination) error {
	trimmed := strings.TrimSpace(cleartext)

	switch dest {
	case DestStdout:
		fmt.Println(trimmed)
		return nil
	case DestClip:
		if err := clipboard.WriteAll(trimmed); err != nil {
			return fmt.Errorf("clipboard write: %v: %w", err, perrors.ErrSubprocess)
		}
		return nil
	case DestQRCode:
		cmd := exec.CommandContext(ctx, "qrencode", "-t", "utf8")
		cmd.Stdin = strings.NewReader(trimmed)
		cmd.Stdout = os.Stdout

		if err := cmd.Run(); err != nil {
			return subprocessError("qrencode", "", err)
		}
		return nil
	}
	return fmt.Errorf("unknown destination %q", dest)
}

// ClearClipboard empties the clipboard.
func ClearClipboard() error {
	if err := clipboard.WriteAll(""); err != nil {
		return fmt.Errorf("clipboard clear: %v: %w", err, perrors.ErrSubprocess)
	}
	return nil
}

// withoutDisplay strips DISPLAY so gpg's pinentry stays on the invoking
// terminal instead of popping a window.
func withoutDisplay(env []string) []string {
	filtered := env[:0]
	for _, kv := range env {
		if strings.HasPrefix(kv, "DISPLAY=") {
			continue
		}
		filtered = append(filtered, kv)
	}
	return filtered
}

// subprocessError maps an exec failure to ErrSubprocess uniformly,
// regardless of which external tool produced it.
func subprocessError(tool, stderr string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return fmt.Errorf("%s signaled with %v: %w",
				tool, status.Signal(), perrors.ErrSubprocess)
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%s exited %d: %s: %w",
				tool, exitErr.ExitCode(), msg, perrors.ErrSubprocess)
		}
		return fmt.Errorf("%s exited %d: %w", tool, exitErr.ExitCode(), perrors.ErrSubprocess)
	}
	return fmt.Errorf("%s: %v: %w", tool, err, perrors.ErrSubprocess)
}
