package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/staffkeeper/internal/client/ui"
	"github.com/dmitrijs2005/staffkeeper/internal/client/views"
)

// pageIntro is the static text of each page.
var pageIntro = map[string]string{
	"home":         "Welcome to staffkeeper. Use 'go #/login' to sign in or 'go #/register' to create an account.",
	"login":        "Sign in with 'login'.",
	"register":     "Create an account with 'register'.",
	"verify-email": "Confirm your email with 'verify'.",
	"profile":      "Your profile.",
	"requests":     "No requests yet.",
	"accounts":     "Accounts. Commands: accounts edit <id>, accounts delete <id>.",
	"departments":  "Departments. Commands: departments add, departments edit <id>, departments delete <id>.",
	"employees":    "Employees. Commands: employees add, employees edit <id>, employees delete <id>.",
}

// terminalSurface prints pages, view models and notices to w.
type terminalSurface struct {
	w      io.Writer
	active string
}

func newTerminalSurface(w io.Writer) *terminalSurface {
	return &terminalSurface{w: w}
}

func (s *terminalSurface) DeactivateAll() {
	s.active = ""
}

func (s *terminalSurface) Activate(page string) {
	s.active = page
	fmt.Fprintf(s.w, "\n== %s ==\n", strings.ToUpper(page))
	if intro, ok := pageIntro[page]; ok {
		fmt.Fprintln(s.w, intro)
	}
}

func (s *terminalSurface) Notify(n ui.Notice) {
	fmt.Fprintf(s.w, "[%s] %s\n", n.Kind, n.Message)
}

func (s *terminalSurface) Render(_ string, model any) {
	tw := tabwriter.NewWriter(s.w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	switch m := model.(type) {
	case views.ProfileView:
		fmt.Fprintf(tw, "Name:\t%s\n", m.Name)
		fmt.Fprintf(tw, "Email:\t%s\n", m.Email)
		fmt.Fprintf(tw, "Role:\t%s\n", m.Role)
		fmt.Fprintf(tw, "Status:\t%s\n", m.Status)

	case views.AccountsView:
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS\tACTIONS")
		for _, r := range m.Rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Email, r.Role, r.Status, strings.Join(r.Actions, ","))
		}

	case views.DepartmentsView:
		if m.Empty {
			fmt.Fprintln(tw, m.Message)
			return
		}
		fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tACTIONS")
		for _, r := range m.Rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Name, r.Description, strings.Join(r.Actions, ","))
		}

	case views.EmployeesView:
		fmt.Fprintln(tw, "ID\tEMPLOYEE ID\tEMAIL\tPOSITION\tDEPARTMENT\tHIRE DATE\tACTIONS")
		for _, r := range m.Rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.EmployeeID, r.Email, r.Position, r.Department, r.HireDate, strings.Join(r.Actions, ","))
		}

	default:
		fmt.Fprintf(tw, "%v\n", model)
	}
}
