// Package cli implements painelctl, a terminal front end for the records
// backend. It shares the panel's backend client, resource catalogue and
// message tables.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/i18n"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/resources"
)

// errNoSession is returned by commands that need a signed-in user.
var errNoSession = errors.New("not signed in; run painelctl login")

// app is the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	in     *bufio.Reader
	log    *logrus.Logger
}

// NewRootCmd builds the painelctl command tree. Settings come from flags,
// PAINEL_* environment variables or a config file, in that order.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "painelctl",
		Short: "Manage painel records from the terminal",
		Long: `painelctl signs in to the records backend and manages companies, clients,
users and annotations, and downloads reports.

  The session token is kept in one file so later commands reuse it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("backend", "http://localhost:3000", "backend base URL")
	pf.String("login-path", "/auth/login", "backend sign-in path")
	pf.Duration("timeout", 15*time.Second, "backend request timeout")
	pf.String("token-file", "", "session token file (default $XDG_CONFIG_HOME/painel/token)")
	pf.String("lang", i18n.DefaultLang, "language of headers and messages (pt, en)")
	pf.String("config", "", "config file (default $XDG_CONFIG_HOME/painel/config.yaml)")
	pf.Bool("verbose", false, "log backend requests")
	_ = a.v.BindPFlags(pf)
	a.v.SetEnvPrefix("PAINEL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.registerCmd(),
		a.listCmd(),
		a.deleteCmd(),
		a.reportCmd(),
	)
	return root
}

// Execute runs painelctl and exits non-zero on failure.
func Execute(ctx context.Context) {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		Errorf(root.ErrOrStderr(), "%s", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	a.in = bufio.NewReader(cmd.InOrStdin())

	a.log = logrus.New()
	a.log.SetOutput(a.errOut)
	a.log.SetLevel(logrus.WarnLevel)
	if a.v.GetBool("verbose") {
		a.log.SetLevel(logrus.DebugLevel)
	}

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
		return nil
	}
	if dir, err := os.UserConfigDir(); err == nil {
		a.v.SetConfigName("config")
		a.v.AddConfigPath(filepath.Join(dir, "painel"))
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}
	return nil
}

func (a *app) lang() string {
	if l := a.v.GetString("lang"); i18n.Supported(l) {
		return l
	}
	return i18n.DefaultLang
}

func (a *app) t(code string) string { return i18n.T(a.lang(), code) }

func (a *app) translator() resources.Translator { return a.t }

func (a *app) store() (TokenStore, error) {
	if p := a.v.GetString("token-file"); p != "" {
		return TokenStore{Path: p}, nil
	}
	p, err := DefaultTokenPath()
	if err != nil {
		return TokenStore{}, err
	}
	return TokenStore{Path: p}, nil
}

func (a *app) client() *api.Client {
	return api.New(api.Options{
		BaseURL:   a.v.GetString("backend"),
		LoginPath: a.v.GetString("login-path"),
		Timeout:   a.v.GetDuration("timeout"),
		Logger:    a.log,
	})
}

// session rehydrates the stored token. A token that does not decode counts as
// no session and is discarded.
func (a *app) session() (*auth.Session, error) {
	st, err := a.store()
	if err != nil {
		return nil, err
	}
	token, err := st.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errNoSession
	}
	s, err := auth.NewSession(token)
	if err != nil {
		_ = st.Clear()
		return nil, errNoSession
	}
	return s, nil
}

// authed returns a client bound to the stored session.
func (a *app) authed() (*api.Client, error) {
	s, err := a.session()
	if err != nil {
		return nil, err
	}
	return a.client().WithToken(s.Token), nil
}

// prompt asks for a value on the command's input.
func (a *app) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
