package portal

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// Messages shown by the login form.
const (
	MsgLoginFailed       = "Erro ao fazer login"
	MsgConnectionFailed  = "Erro de conexão. Tente novamente."
	MsgMissingCredential = "Preencha o nome de utilizador e a palavra-passe"
)

var (
	ErrSubmitInProgress  = errors.New("login already in progress")
	ErrMissingCredential = errors.New("username and password are required")
	ErrNoSuchDemoAccount = errors.New("no such demo account")
)

// DemoAccount is a pre-seeded account offered on the login page.
type DemoAccount struct {
	Username string
	Password string
	Role     string
}

var demoAccounts = []DemoAccount{
	{Username: "admin", Password: "admin123", Role: "Administrador"},
	{Username: "juiz_silva", Password: "judge123", Role: "Juiz"},
	{Username: "advogado_santos", Password: "lawyer123", Role: "Advogado"},
	{Username: "cidadao_costa", Password: "citizen123", Role: "Cidadão"},
}

func DemoAccounts() []DemoAccount {
	return append([]DemoAccount(nil), demoAccounts...)
}

type LoginState struct {
	Username   string
	Password   string
	Error      string
	Submitting bool
}

// LoginForm moves idle -> submitting -> idle. Only one submission may be in
// flight at a time.
type LoginForm struct {
	auth services.AuthService
	log  logging.Logger

	mu         sync.Mutex
	username   string
	password   string
	errMsg     string
	submitting bool
}

func NewLoginForm(auth services.AuthService, log logging.Logger) *LoginForm {
	return &LoginForm{auth: auth, log: log.With("module", "login")}
}

// SetUsername edits the field and clears a displayed error.
func (f *LoginForm) SetUsername(v string) {
	f.mu.Lock()
	f.username, f.errMsg = v, ""
	f.mu.Unlock()
}

// SetPassword edits the field and clears a displayed error.
func (f *LoginForm) SetPassword(v string) {
	f.mu.Lock()
	f.password, f.errMsg = v, ""
	f.mu.Unlock()
}

// FillDemo populates the fields from demo account i without submitting.
func (f *LoginForm) FillDemo(i int) error {
	if i < 0 || i >= len(demoAccounts) {
		return ErrNoSuchDemoAccount
	}
	a := demoAccounts[i]
	f.mu.Lock()
	f.username, f.password, f.errMsg = a.Username, a.Password, ""
	f.mu.Unlock()
	return nil
}

// Submit logs in with the current fields. On success the form is reset and
// the route to navigate to is returned.
func (f *LoginForm) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return "", ErrSubmitInProgress
	}
	username, password := strings.TrimSpace(f.username), f.password
	if username == "" || password == "" {
		f.errMsg = MsgMissingCredential
		f.mu.Unlock()
		return "", ErrMissingCredential
	}
	f.submitting, f.errMsg = true, ""
	f.mu.Unlock()

	_, err := f.auth.Login(ctx, username, password)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.errMsg = loginMessage(err)
		f.log.Warn(ctx, "login failed", "username", username, "error", err)
		return "", err
	}
	f.username, f.password = "", ""
	return HomeRoute, nil
}

// loginMessage picks the text shown for a failed login: the server's own
// message, a generic one when the server sent none, or the connection
// message when no response was understood.
func loginMessage(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return MsgConnectionFailed
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgLoginFailed
}

func (f *LoginForm) State() LoginState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return LoginState{
		Username:   f.username,
		Password:   f.password,
		Error:      f.errMsg,
		Submitting: f.submitting,
	}
}
