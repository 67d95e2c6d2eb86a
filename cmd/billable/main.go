package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fdelacroix/billable/internal/config"
	"github.com/fdelacroix/billable/internal/invoicing"
	"github.com/fdelacroix/billable/internal/models"
	"github.com/fdelacroix/billable/internal/render"
	"github.com/fdelacroix/billable/internal/store"
	"github.com/fdelacroix/billable/internal/timetracking"
)

const usage = `usage: billable <command> [args]

commands:
  migrate                          create or update the database schema
  clients                          list clients
  contracts                        list contracts with status
  projects                         list projects with status
  invoice <timesheet-id>           bill a timesheet against its contract
  render-invoice <invoice-id>      write invoice html/pdf to the output dir
  render-timesheet <timesheet-id>  write timesheet html/pdf to the output dir
  export-timesheet <id> <path>     write a timesheet spreadsheet
`

var pdfFlag = flag.Bool("pdf", false, "also write PDF output when rendering")

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(lvl)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	s, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	if err := run(s, cfg, log, args); err != nil {
		log.Fatal().Err(err).Msg(args[0])
	}
}

func run(s *store.Store, cfg config.Config, log zerolog.Logger, args []string) error {
	today := time.Now()
	switch args[0] {
	case "migrate":
		// Open already migrated; nothing left to do.
		log.Info().Str("path", cfg.DatabasePath).Msg("schema up to date")
		return nil

	case "clients":
		clients, err := s.ListClients()
		if err != nil {
			return err
		}
		for _, c := range clients {
			contact := "no invoicing contact"
			if c.InvoicingContact != nil {
				contact = c.InvoicingContact.Name()
			}
			fmt.Printf("%4d  %-30s %s\n", c.ID, c.Name, contact)
		}
		return nil

	case "contracts":
		contracts, err := s.ListContracts()
		if err != nil {
			return err
		}
		for _, c := range contracts {
			fmt.Printf("%4d  %-30s %-10s %s\n", c.ID, c.Title, models.ContractStatus(c, today, models.StatusAll), c.Client.Name)
		}
		return nil

	case "projects":
		projects, err := s.ListProjects()
		if err != nil {
			return err
		}
		for _, p := range projects {
			fmt.Printf("%4d  %-30s %-12s %s\n", p.ID, p.Title, p.Tag, models.ProjectStatus(p, today, models.StatusAll))
		}
		return nil

	case "invoice":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		ts, err := s.GetTimesheet(id)
		if err != nil {
			return err
		}
		project, err := s.GetProject(ts.ProjectID)
		if err != nil {
			return err
		}
		contract, err := s.GetContract(project.ContractID)
		if err != nil {
			return err
		}
		issue := today
		counter, err := s.NextInvoiceCounter(issue)
		if err != nil {
			return err
		}
		inv, err := invoicing.FromTimesheet(*contract, ts, issue, counter)
		if err != nil {
			return err
		}
		if err := s.SaveInvoice(inv); err != nil {
			return err
		}
		log.Info().Str("number", inv.Number).Str("total", inv.Total().StringFixed(2)).Msg("invoice created")
		return nil

	case "render-invoice":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		inv, err := s.GetInvoice(id)
		if err != nil {
			return err
		}
		user, err := s.GetUser(1)
		if err != nil {
			user = nil
		}
		r, err := render.New(log)
		if err != nil {
			return err
		}
		format := render.FormatHTML
		if *pdfFlag {
			format = render.FormatPDF
		}
		if _, err := r.RenderInvoice(user, inv, render.Options{OutDir: cfg.OutputDir, Format: format}); err != nil {
			return err
		}
		return s.MarkInvoiceRendered(inv)

	case "render-timesheet":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		ts, err := s.GetTimesheet(id)
		if err != nil {
			return err
		}
		user, err := s.GetUser(1)
		if err != nil {
			user = nil
		}
		r, err := render.New(log)
		if err != nil {
			return err
		}
		format := render.FormatHTML
		if *pdfFlag {
			format = render.FormatPDF
		}
		if _, err := r.RenderTimesheet(user, ts, render.Options{OutDir: cfg.OutputDir, Format: format}); err != nil {
			return err
		}
		return s.MarkTimesheetRendered(ts)

	case "export-timesheet":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return fmt.Errorf("export-timesheet: missing output path")
		}
		ts, err := s.GetTimesheet(id)
		if err != nil {
			return err
		}
		return timetracking.ExportTimesheet(ts, args[2])

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func argID(args []string, i int) (uint, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("%s: missing id argument", args[0])
	}
	n, err := strconv.ParseUint(args[i], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: bad id %q", args[0], args[i])
	}
	return uint(n), nil
}
