package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diewo77/painel/auth"
	"github.com/diewo77/painel/internal/api"
	"github.com/diewo77/painel/internal/models"
	"github.com/diewo77/painel/internal/resources"
)

func (a *app) loginCmd() *cobra.Command {
	var email, senha string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = a.prompt(a.t("field.email")); err != nil {
					return err
				}
			}
			if senha == "" {
				if senha, err = a.prompt(a.t("field.senha")); err != nil {
					return err
				}
			}
			if email == "" || senha == "" {
				return fmt.Errorf("%s", a.t("login.error"))
			}
			token, err := a.client().Login(cmd.Context(), email, senha)
			if err != nil {
				a.log.WithError(err).Debug("login failed")
				return fmt.Errorf("%s", a.t("login.error"))
			}
			s, err := auth.NewSession(token)
			if err != nil {
				return fmt.Errorf("%s", a.t("login.error"))
			}
			st, err := a.store()
			if err != nil {
				return err
			}
			if err := st.Save(s.Token); err != nil {
				return err
			}
			Successf(a.out, "%s", a.t("login.success"))
			a.printIdentity(s)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&senha, "senha", "", "account password (prompted when omitted)")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			if err := st.Clear(); err != nil {
				return err
			}
			Successf(a.out, "%s", a.t("logout.success"))
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			a.printIdentity(s)
			return nil
		},
	}
}

func (a *app) printIdentity(s *auth.Session) {
	Infof(a.out, "%s #%d · %s: %s", a.t("dashboard.identity"), s.User.ID, a.t("dashboard.role"), a.t("role."+s.User.Role))
}

func (a *app) registerCmd() *cobra.Command {
	var nome, email, senha string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if nome == "" || email == "" || senha == "" {
				return fmt.Errorf("--nome, --email and --senha are required")
			}
			if err := a.client().Register(cmd.Context(), nome, email, senha); err != nil {
				a.log.WithError(err).Debug("register failed")
				return fmt.Errorf("%s", a.t("register.error"))
			}
			Successf(a.out, "%s", a.t("register.success"))
			return nil
		},
	}
	cmd.Flags().StringVar(&nome, "nome", "", "user name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&senha, "senha", "", "account password")
	return cmd
}

func resourceNames() string {
	names := make([]string, 0, len(resources.All()))
	for _, t := range resources.All() {
		names = append(names, t.Name())
	}
	return strings.Join(names, ", ")
}

func lookup(name string) (resources.Table, error) {
	t, ok := resources.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown resource %q (one of: %s)", name, resourceNames())
	}
	return t, nil
}

func (a *app) listCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List one page of a resource",
		Long:  "List one page of a resource. Resources: " + resourceNames() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := lookup(args[0])
			if err != nil {
				return err
			}
			c, err := a.authed()
			if err != nil {
				return err
			}
			rows, total, err := tbl.ListRows(cmd.Context(), c, max(page, 1), a.translator())
			if err != nil {
				a.log.WithError(err).Debug("list failed")
				return fmt.Errorf("%s", a.t(tbl.Msg("fetch_error")))
			}
			a.printTable(tbl.Headers(), rows)
			a.printFooter(max(page, 1), total)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func (a *app) printTable(headers []string, rows []resources.Row) {
	if len(rows) == 0 {
		Infof(a.out, "%s", a.t("table.empty"))
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	cols := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = strings.ToUpper(a.t(h))
	}
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Cells, "\t"))
	}
	_ = tw.Flush()
}

func (a *app) printFooter(page, total int) {
	pages := (total + api.PageSize - 1) / api.PageSize
	fmt.Fprintf(a.out, "%s: %d · %d/%d\n", a.t("pagination.total"), total, page, max(pages, 1))
}

func (a *app) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete a record after confirmation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := lookup(args[0])
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid id %q", args[1])
			}
			c, err := a.authed()
			if err != nil {
				return err
			}
			if !yes {
				answer, err := a.prompt(fmt.Sprintf("%s (#%d) [s/N]", a.t("delete.message"), id))
				if err != nil {
					return err
				}
				if !confirmed(answer) {
					Warningf(a.out, "%s", a.t("action.cancel"))
					return nil
				}
			}
			if err := tbl.Delete(cmd.Context(), c, uint(id)); err != nil {
				a.log.WithError(err).Debug("delete failed")
				return fmt.Errorf("%s", a.t(tbl.Msg("delete_error")))
			}
			Successf(a.out, "%s", a.t(tbl.Msg("delete_success")))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func confirmed(answer string) bool {
	switch strings.ToLower(answer) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

func (a *app) reportCmd() *cobra.Command {
	var (
		tipo, de, ate, output string
		page                  int
		pdf                   bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "List or download the annotations report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !api.ValidTipo(tipo) {
				return fmt.Errorf("%s", a.t("reports.select_tipo"))
			}
			f := api.ReportFilter{Tipo: tipo}
			for _, d := range []struct {
				flag, value string
				dst         *string
			}{{"de", de, &f.DataInicio}, {"ate", ate, &f.DataFim}} {
				day, err := models.ParseDate(d.value)
				if err != nil {
					return fmt.Errorf("--%s: %w", d.flag, err)
				}
				*d.dst = day.String()
			}
			c, err := a.authed()
			if err != nil {
				return err
			}
			if pdf {
				return a.downloadReport(cmd, c, f, output)
			}
			p, err := api.ListReport(cmd.Context(), c, f, max(page, 1))
			if err != nil {
				a.log.WithError(err).Debug("report failed")
				return fmt.Errorf("%s", a.t("reports.fetch_error"))
			}
			a.printTable(resources.ReportColumns, resources.ReportRows(p.Items, tipo))
			a.printFooter(max(page, 1), p.Total)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&tipo, "tipo", "", "report category: clientes or empresas")
	fl.StringVar(&de, "de", "", "first due date (YYYY-MM-DD)")
	fl.StringVar(&ate, "ate", "", "last due date (YYYY-MM-DD)")
	fl.IntVar(&page, "page", 1, "page number")
	fl.BoolVar(&pdf, "pdf", false, "download the PDF instead of listing")
	fl.StringVarP(&output, "output", "o", "", "PDF destination (default relatorio_<tipo>.pdf)")
	return cmd
}

func (a *app) downloadReport(cmd *cobra.Command, c *api.Client, f api.ReportFilter, output string) error {
	doc, err := c.ReportPDF(cmd.Context(), f)
	if err != nil {
		a.log.WithError(err).Debug("report pdf failed")
		return fmt.Errorf("%s", a.t("reports.pdf_error"))
	}
	defer doc.Body.Close()
	if output == "" {
		output = f.Filename()
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	n, err := io.Copy(file, doc.Body)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	Successf(a.out, "%s (%d bytes)", output, n)
	return nil
}
