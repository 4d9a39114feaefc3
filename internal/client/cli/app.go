package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/useraccount/internal/client/client"
	"github.com/dmitrijs2005/useraccount/internal/client/config"
	"github.com/dmitrijs2005/useraccount/internal/client/notify"
	"github.com/dmitrijs2005/useraccount/internal/client/routes"
	"github.com/dmitrijs2005/useraccount/internal/client/services"
	"github.com/dmitrijs2005/useraccount/internal/client/session"
	"github.com/dmitrijs2005/useraccount/internal/client/storage"
	"github.com/dmitrijs2005/useraccount/internal/client/validation"
	"github.com/dmitrijs2005/useraccount/internal/logging"
)

// App is the interactive client: one page open at a time, one form per
// page action, and a notification layer printed to out.
type App struct {
	config *config.Config
	log    logging.Logger

	store   session.Store
	auth    services.AuthService
	profile services.ProfileService
	users   services.UserService

	validator *validation.Validator
	toasts    *notify.Toaster
	modals    *notify.Modals

	out    io.Writer
	reader *bufio.Reader
	closer io.Closer

	page  routes.Page
	forms map[string]*form
}

// NewApp opens the session database, builds the API client and wires the
// services. The caller must call Close (Run does it on exit).
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		log.Error(ctx, "error initializing session storage", "dsn", c.SessionDSN, "err", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(db, log)
	a := newApp(c, log, apiClient, store, os.Stdout, bufio.NewReader(os.Stdin))
	a.closer = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, store session.Store,
	out io.Writer, reader *bufio.Reader) *App {

	toasts := notify.NewToaster(out, c.ToastDuration)
	return &App{
		config:    c,
		log:       log,
		store:     store,
		auth:      services.NewAuthService(api, store),
		profile:   services.NewProfileService(api, store),
		users:     services.NewUserService(api),
		validator: validation.New(toasts),
		toasts:    toasts,
		modals:    notify.NewModals(out),
		out:       out,
		reader:    reader,
		forms: map[string]*form{
			formLogin:    newForm(formLogin),
			formRegister: newForm(formRegister),
			formPassword: newForm(formPassword),
			formEmail:    newForm(formEmail),
			formUsers:    newForm(formUsers),
		},
	}
}

// Run opens the start page and blocks in the REPL until the user exits,
// stdin closes or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to the user account CLI (type 'help' for commands)")
	if err := a.Open(ctx, a.config.StartPage); err != nil {
		return err
	}
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// Close drops pending toasts and releases the session database.
func (a *App) Close() error {
	a.toasts.RemoveAll()
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// Page is the page currently open.
func (a *App) Page() routes.Page {
	return a.page
}

// LoggedIn reports whether an active session is stored.
func (a *App) LoggedIn(ctx context.Context) bool {
	_, ok := a.auth.Current(ctx)
	return ok
}

func (a *App) status() string {
	s := a.page.String()
	if sess, ok := a.auth.Current(context.Background()); ok {
		s = sess.Username + "@" + s
	}
	return s
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
