// regctl is a command line client for the registration API. It submits
// applications, lists and inspects them, and moves them through review.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/Sain-orshikh/MAIS-burtgel/pkg/client"
)

const usage = `Usage: regctl [-url URL] [-token TOKEN] <command> [args]

Commands:
  register  -name NAME -email EMAIL -phone PHONE -nrn NRN -school SCHOOL -grade GRADE -essay-file FILE -payment FILE
            Submit an application
  login     -username USER -password PASS
            Authenticate and print an admin token
  list      [-status STATUS] [-search TEXT] [-page N] [-page-size N] [-mock N]
            List applications (requires -token unless -mock)
  get       ID
            Show one full application (requires -token)
  status    ID -set pending|approved|rejected [-reason TEXT]
            Update an application's status (requires -token)
`

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "API base URL")
	token := flag.String("token", "", "admin access token")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	c := client.NewClient(*baseURL)
	c.Token = *token

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "register":
		err = runRegister(c, flag.Args()[1:])
	case "login":
		err = runLogin(c, flag.Args()[1:])
	case "list":
		err = runList(c, flag.Args()[1:])
	case "get":
		err = runGet(c, flag.Args()[1:])
	case "status":
		err = runStatus(c, flag.Args()[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "regctl: %v\n", err)
		os.Exit(1)
	}
}

func runRegister(c *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "applicant name")
	email := fs.String("email", "", "applicant email")
	phone := fs.String("phone", "", "phone number")
	nrn := fs.String("nrn", "", "national registration number")
	school := fs.String("school", "", "school name")
	grade := fs.Float64("grade", 0, "school average grade (0-100)")
	essayFile := fs.String("essay-file", "", "path to a file holding the essay text")
	payment := fs.String("payment", "", "path to the payment confirmation image")
	fs.Parse(args)

	essay, err := os.ReadFile(*essayFile)
	if err != nil {
		return fmt.Errorf("reading essay: %w", err)
	}

	// The wizard applies the same step gating the web form does
	w := client.NewWizard(c)
	w.SetPersonalInfo(*name, *email, *phone, *nrn)
	if err := w.Next(); err != nil {
		return fmt.Errorf("personal details: %w", err)
	}
	w.SetSchool(*school, *grade)
	if err := w.Next(); err != nil {
		return fmt.Errorf("school details: %w", err)
	}
	w.SetPaymentImage(*payment)
	if err := w.Next(); err != nil {
		return fmt.Errorf("payment proof: %w", err)
	}
	w.SetEssay(string(essay))

	result, err := w.Submit()
	if err != nil {
		return err
	}

	fmt.Printf("%s: registration number %d, status %s\n",
		result.Message, result.User.RegistrationNumber, result.User.Status)
	return nil
}

func runLogin(c *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "admin username")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)

	result, err := c.Login(*username, *password)
	if err != nil {
		return err
	}

	fmt.Printf("%s as %s\n", result.Message, result.Admin.Username)
	fmt.Println(result.Token)
	return nil
}

func runList(c *client.Client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	search := fs.String("search", "", "search name, email and school")
	page := fs.Int("page", 1, "page number")
	pageSize := fs.Int("page-size", 20, "applicants per page, 0 for all")
	mock := fs.Int("mock", 0, "use N generated applicants instead of the API")
	fs.Parse(args)

	var applicants []client.Applicant
	if *mock > 0 {
		applicants = client.NewMockApplicants(*mock)
	} else {
		var err error
		applicants, err = c.Registrations()
		if err != nil {
			return err
		}
	}

	result := client.Browse(applicants, client.BrowseOptions{
		Status:   *status,
		Search:   *search,
		Page:     *page,
		PageSize: *pageSize,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tNAME\tEMAIL\tSCHOOL\tGRADE\tSTATUS")
	for _, a := range result.Applicants {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f\t%s\n",
			a.RegistrationNumber, a.Name, a.Email, a.School.Name, a.School.AverageGrade, a.Status)
	}
	w.Flush()

	fmt.Printf("\npage %d/%d, %d matching (pending %d, approved %d, rejected %d)\n",
		result.Page, result.TotalPages, result.Total,
		result.Counts["pending"], result.Counts["approved"], result.Counts["rejected"])
	return nil
}

func runGet(c *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: regctl get ID")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[0])
	}

	a, err := c.Registration(uint(id))
	if err != nil {
		return err
	}

	fmt.Printf("Registration #%d (%s)\n", a.RegistrationNumber, a.Status)
	fmt.Printf("  Name:    %s\n", a.Name)
	fmt.Printf("  Email:   %s\n", a.Email)
	fmt.Printf("  Phone:   %s\n", a.PhoneNumber)
	fmt.Printf("  NRN:     %s\n", a.NationalRegistrationNumber)
	fmt.Printf("  School:  %s (avg %.1f)\n", a.School.Name, a.School.AverageGrade)
	fmt.Printf("  Payment: %s (uploaded %s)\n", a.PaymentConfirmation.ImageURL, a.PaymentConfirmation.UploadedAt.Format("2006-01-02"))
	fmt.Printf("  Essay:\n%s\n", a.Essay)
	return nil
}

func runStatus(c *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: regctl status ID -set STATUS [-reason TEXT]")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[0])
	}

	fs := flag.NewFlagSet("status", flag.ExitOnError)
	set := fs.String("set", "", "new status: pending, approved or rejected")
	reason := fs.String("reason", "", "rejection reason included in the email")
	fs.Parse(args[1:])

	result, err := c.UpdateStatus(uint(id), *set, *reason)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s is now %s\n", result.Message, result.User.Name, result.User.Status)
	return nil
}
