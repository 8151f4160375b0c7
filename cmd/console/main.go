package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/emstack/go-employee-console/api"
	"github.com/emstack/go-employee-console/auth"
	"github.com/emstack/go-employee-console/guard"
	"github.com/emstack/go-employee-console/hr"
	"github.com/emstack/go-employee-console/identity"
	"github.com/emstack/go-employee-console/internal/config"
	"github.com/emstack/go-employee-console/session"
	"github.com/emstack/go-employee-console/token/storefile"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()
	c := config.New()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if c.GetEnv() != "DEV" {
		log = log.Level(zerolog.InfoLevel)
	}

	if len(args) == 0 {
		displayAppname(c.GetAppName())
		usage()
		return nil
	}

	store, err := storefile.New(c.GetDataFolder())
	if err != nil {
		return fmt.Errorf("opening token store: %w", err)
	}

	client := api.New(c.GetAPIBaseURL(),
		api.WithTokenStore(store),
		api.WithLogger(log),
		api.WithHTTPClient(&http.Client{Timeout: time.Duration(c.GetHTTPTimeoutSeconds()) * time.Second}),
	)

	svc, err := auth.NewService(client, store)
	if err != nil {
		return fmt.Errorf("creating auth service: %w", err)
	}

	manager, err := session.NewManager(svc)
	if err != nil {
		return fmt.Errorf("creating session manager: %w", err)
	}

	ctx := context.Background()
	app := &console{cfg: c, log: log, client: client, svc: svc, session: manager}

	switch args[0] {
	case "login":
		return app.login(ctx, args[1:])
	case "logout":
		return app.logout()
	case "whoami":
		return app.whoami(args[1:])
	case "register":
		return app.register(ctx, args[1:])
	case "employees":
		return app.employees(ctx, args[1:])
	case "departments":
		return app.departments(ctx, args[1:])
	case "companies":
		return app.companies(ctx, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type console struct {
	cfg     config.Config
	log     zerolog.Logger
	client  *api.Client
	svc     *auth.Service
	session *session.Manager
}

func (a *console) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.session.Login(ctx, auth.Credentials{Email: *email, Password: *password}); err != nil {
		a.log.Debug().Str("reason", string(auth.ReasonOf(err))).Msg("login failed")
		return fmt.Errorf("%s", a.session.Snapshot().Err)
	}

	state := a.session.Snapshot()
	fmt.Printf("Signed in as %s (%s)\n", state.User.Email, state.User.Role)
	fmt.Printf("Home: %s\n", guard.HomeRoute(state.User.Role))
	return nil
}

func (a *console) logout() error {
	a.session.Logout()
	fmt.Println("Signed out")
	return nil
}

func (a *console) whoami(args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	requireAdmin := fs.Bool("require-admin", false, "check the admin-only route guard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state := a.session.Snapshot()

	var g guard.Guard = guard.Authenticated{LoginPath: a.cfg.GetEmployeeLoginPath()}
	if *requireAdmin {
		g = guard.AdminOnly{
			AdminLoginPath: a.cfg.GetAdminLoginPath(),
			Denied: func(id identity.Identity) {
				fmt.Printf("Access denied. Admin privileges required (signed in as %s).\n", id.Email)
			},
		}
	}

	switch decision := g.Check(state, "/dashboard"); decision.Action {
	case guard.ActionRedirect:
		fmt.Printf("Not allowed here - redirected to %s\n", decision.Location)
	case guard.ActionPending:
		fmt.Println("Session still settling")
	default:
		user := state.User
		fmt.Printf("ID:    %d\nEmail: %s\nRole:  %s\n", user.ID, user.Email, user.Role)
		if user.EmployeeID != nil {
			fmt.Printf("Employee ID: %d\n", *user.EmployeeID)
		}
	}
	return nil
}

func (a *console) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	role := fs.String("role", string(identity.RoleEmployee), "account role (ADMIN or EMPLOYEE)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg := auth.Registration{
		Email:    *email,
		Username: *username,
		Password: *password,
		Role:     identity.ParseRole(*role),
	}
	if err := a.svc.Register(ctx, reg); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	fmt.Printf("Registered %s\n", *email)
	return nil
}

func (a *console) employees(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("employees", flag.ExitOnError)
	id := fs.Int64("id", 0, "employee id for get")
	if len(args) == 0 {
		return errors.New("employees requires a subcommand: list | get")
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		employees, err := a.client.ListEmployees(ctx)
		if err != nil {
			return err
		}
		for _, e := range employees {
			fmt.Printf("%5d  %-30s %-28s %s\n", e.ID, e.FullName(), e.Email, e.Status)
		}
		return nil
	case "get":
		e, err := a.client.GetEmployee(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %s <%s> %s, %s\n", e.ID, e.FullName(), e.Email, e.Designation, e.Status)
		return nil
	default:
		return fmt.Errorf("unknown employees subcommand %q", args[0])
	}
}

func (a *console) departments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("departments", flag.ExitOnError)
	companyID := fs.Int64("company", 0, "filter by company id")
	if len(args) == 0 || args[0] != "list" {
		return errors.New("departments requires the list subcommand")
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var err error
	var departments []hr.Department
	if *companyID != 0 {
		departments, err = a.client.ListDepartmentsByCompany(ctx, *companyID)
	} else {
		departments, err = a.client.ListDepartments(ctx)
	}
	if err != nil {
		return err
	}
	for _, d := range departments {
		fmt.Printf("%5d  %-30s employees=%d\n", d.ID, d.Name, d.NumberOfEmployees)
	}
	return nil
}

func (a *console) companies(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return errors.New("companies requires the list subcommand")
	}
	companies, err := a.client.ListCompanies(ctx)
	if err != nil {
		return err
	}
	for _, c := range companies {
		fmt.Printf("%5d  %-30s departments=%d employees=%d\n", c.ID, c.Name, c.NumberOfDepartments, c.NumberOfEmployees)
	}
	return nil
}

func usage() {
	fmt.Println("Usage: console <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login       -email -password        sign in and persist the session")
	fmt.Println("  logout                              sign out and clear the session")
	fmt.Println("  whoami      [-require-admin]        show the restored session")
	fmt.Println("  register    -email -username -password [-role]")
	fmt.Println("  employees   list | get -id N")
	fmt.Println("  departments list [-company N]")
	fmt.Println("  companies   list")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
