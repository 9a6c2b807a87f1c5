package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"climacontrol/internal/models"
	"climacontrol/internal/service"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

const defaultAddr = "http://localhost:8080"

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)
)

// client is a thin wrapper over the HTTP API.
type client struct {
	addr string
	http *http.Client
}

func (c *client) get(path string, out any) error {
	resp, err := c.http.Get(c.addr + path)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *client) post(path string, out any) error {
	resp, err := c.http.Post(c.addr+path, "application/json", nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status, body.Error)
	}
	return fmt.Errorf("unexpected status %s", resp.Status)
}

func main() {
	_ = godotenv.Load()

	addr := os.Getenv("CLIMACONTROL_ADDR")
	if addr == "" {
		addr = defaultAddr
	}
	api := &client{http: &http.Client{Timeout: 10 * time.Second}}

	root := &cobra.Command{
		Use:           "climactl",
		Short:         "Command line client for the climate control service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&api.addr, "addr", addr, "service base URL")
	root.PersistentFlags().BoolVar(&color.NoColor, "no-color", color.NoColor, "disable colored output")

	root.AddCommand(
		versionCmd(),
		statusCmd(api),
		equipmentsCmd(api),
		routinesCmd(api),
		alertsCmd(api),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red.Sprint("Error:"), err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("climactl v%s\n", appVersion)
		},
	}
}

func statusCmd(api *client) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the dashboard overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			var o service.Overview
			if err := api.get("/api/v1/reports/overview", &o); err != nil {
				return err
			}
			bold.Println("Visão Geral")
			fmt.Printf("  Equipamentos ativos:  %d/%d\n", o.ActiveEquipments, o.TotalEquipments)
			fmt.Printf("  Consumo total:        %.0f W\n", o.TotalConsumptionW)
			fmt.Printf("  Temperatura média:    %d°C\n", o.AvgTemperatureC)
			fmt.Printf("  Eficiência média:     %.1f%%\n", o.AvgEfficiencyPct)
			return nil
		},
	}
}

func equipmentsCmd(api *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipments",
		Short: "Inspect and control climate units",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List climate units",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/equipments"
			if search != "" {
				path += "?search=" + search
			}
			var units []models.Equipment
			if err := api.get(path, &units); err != nil {
				return err
			}
			for _, u := range units {
				state := gray.Sprint("off")
				if u.IsOn {
					state = green.Sprint("on ")
				}
				fmt.Printf("%s  %s  %-24s %2d°C -> %2d°C  %6.0f W\n",
					u.ID, state, u.Name, u.CurrentTempC, u.TargetTempC, u.EnergyConsumption)
			}
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter by name")

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a unit's power state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u models.Equipment
			if err := api.post("/api/v1/equipments/"+args[0]+"/toggle", &u); err != nil {
				return err
			}
			state := gray.Sprint("off")
			if u.IsOn {
				state = green.Sprint("on")
			}
			fmt.Printf("%s (%s) agora está %s\n", u.Name, u.ID, state)
			return nil
		},
	}

	cmd.AddCommand(list, toggle)
	return cmd
}

func routinesCmd(api *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routines",
		Short: "Inspect automation routines",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List routines with their summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var routines []models.Routine
			if err := api.get("/api/v1/routines", &routines); err != nil {
				return err
			}
			for _, r := range routines {
				state := gray.Sprint("inativa")
				if r.Enabled {
					state = green.Sprint("ativa")
				}
				bold.Printf("%s [%s]\n", r.Name, state)
				fmt.Printf("  %s\n", r.Summary)
			}
			return nil
		},
	}

	cmd.AddCommand(list)
	return cmd
}

func alertsCmd(api *client) *cobra.Command {
	var alertType string
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List alerts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/alerts"
			if alertType != "" {
				path += "?type=" + alertType
			}
			var alerts []models.Alert
			if err := api.get(path, &alerts); err != nil {
				return err
			}
			for _, a := range alerts {
				label := severityLabel(a.Type)
				fmt.Printf("%s  %s  %s\n", a.Timestamp.Local().Format("2006-01-02 15:04"), label, a.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&alertType, "type", "", "info | warning | critical")
	return cmd
}

func severityLabel(t string) string {
	switch t {
	case models.AlertCritical:
		return red.Sprint(strings.ToUpper(t))
	case models.AlertWarning:
		return yellow.Sprint(strings.ToUpper(t))
	default:
		return gray.Sprint(strings.ToUpper(t))
	}
}
