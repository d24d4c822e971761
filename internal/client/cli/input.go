package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
)

// Prompt labels, in the portal's language.
const (
	labelUsername = "Nome de utilizador"
	labelEmail    = "E-mail"
	labelPassword = "Palavra-passe"
	labelRole     = "Perfil (cidadão, advogado, juiz; vazio para cidadão)"
)

// ErrUnknownRole is returned by GetRole for an answer that names no role.
var ErrUnknownRole = errors.New("unknown role")

// registrableRoles maps what a user may type at the role prompt to the API
// value. Administrators are not self-registered.
var registrableRoles = map[string]string{
	"cidadão":          models.RoleCitizen,
	"cidadao":          models.RoleCitizen,
	models.RoleCitizen: models.RoleCitizen,
	"advogado":         models.RoleLawyer,
	models.RoleLawyer:  models.RoleLawyer,
	"juiz":             models.RoleJudge,
	models.RoleJudge:   models.RoleJudge,
}

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints "label: " to w and reads one line from reader,
// trimmed. A final line without a newline is still returned.
func GetSimpleText(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads the password from the terminal without echo.
// The caller wipes the returned slice.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "%s: ", labelPassword); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetRole asks for the role of a new account and returns its API value.
// An empty answer returns "" so the server applies its default.
func GetRole(reader *bufio.Reader, w io.Writer) (string, error) {
	answer, err := getSimpleText(reader, labelRole, w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", nil
	}
	role, ok := registrableRoles[strings.ToLower(answer)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, answer)
	}
	return role, nil
}
