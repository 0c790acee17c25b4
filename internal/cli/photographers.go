package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/marta/studiobook/internal/domain"
)

var photographersCmd = &cobra.Command{
	Use:   "photographers",
	Short: "Manage photographers",
	Long:  `List, add, find, and remove photographers.`,
}

var photographersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all photographers",
	RunE: func(cmd *cobra.Command, args []string) error {
		photographers := appInstance.Catalog.Photographers()
		if len(photographers) == 0 {
			fmt.Println("No photographers found")
			return nil
		}

		fmt.Printf("%-5s %-30s %-20s %-6s %-12s\n", "ID", "Name", "Specialization", "Years", "Rate/h")
		fmt.Println("------------------------------------------------------------------------------")
		for _, p := range photographers {
			fmt.Printf("%-5d %-30s %-20s %-6d %-12s\n",
				p.ID,
				truncate(p.Name, 30),
				truncate(p.Specialization, 20),
				p.ExperienceYears,
				p.RatePerHour.StringFixed(2),
			)
		}

		fmt.Printf("\nTotal: %d photographer(s)\n", len(photographers))
		return nil
	},
}

var photographersAddCmd = &cobra.Command{
	Use:   "add [id] [name]",
	Short: "Add a new photographer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid photographer ID: %w", err)
		}

		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		years, _ := cmd.Flags().GetInt("years")
		spec, _ := cmd.Flags().GetString("specialization")
		rateStr, _ := cmd.Flags().GetString("rate")

		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", rateStr, err)
		}

		p, err := domain.NewPhotographer(id, args[1], phone, email, years, spec, rate)
		if err != nil {
			return fmt.Errorf("invalid photographer: %w", err)
		}

		if err := appInstance.Catalog.AddPhotographer(p); err != nil {
			return fmt.Errorf("failed to add photographer: %w", err)
		}

		fmt.Printf("✓ Photographer added: %s (ID: %d)\n", p.Name, p.ID)
		fmt.Printf("  Rate: %s/h\n", p.RatePerHour.StringFixed(2))
		persist()
		return nil
	},
}

var photographersFindCmd = &cobra.Command{
	Use:   "find [text]",
	Short: "Find photographers by name substring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := ""
		if len(args) > 0 {
			text = args[0]
		}

		matches := appInstance.Catalog.FindPhotographersByName(text)
		if len(matches) == 0 {
			fmt.Println("No matching photographers")
			return nil
		}
		for _, p := range matches {
			fmt.Println(p.Summary())
		}
		return nil
	},
}

var photographersShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a photographer by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid photographer ID: %w", err)
		}

		p, err := appInstance.Catalog.PhotographerByID(id)
		if err != nil {
			return err
		}
		fmt.Println(p.Summary())
		return nil
	},
}

var photographersRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a photographer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid photographer ID: %w", err)
		}

		if err := appInstance.Catalog.RemovePhotographer(id); err != nil {
			return fmt.Errorf("failed to remove photographer: %w", err)
		}

		fmt.Printf("✓ Photographer removed (ID: %d)\n", id)
		persist()
		return nil
	},
}

func init() {
	photographersCmd.AddCommand(photographersListCmd)
	photographersCmd.AddCommand(photographersAddCmd)
	photographersCmd.AddCommand(photographersFindCmd)
	photographersCmd.AddCommand(photographersShowCmd)
	photographersCmd.AddCommand(photographersRemoveCmd)

	// Add flags
	photographersAddCmd.Flags().String("phone", "", "Photographer phone")
	photographersAddCmd.Flags().String("email", "", "Photographer email")
	photographersAddCmd.Flags().Int("years", 0, "Years of experience")
	photographersAddCmd.Flags().String("specialization", "", "Specialization (portrait, wedding, studio, ...)")
	photographersAddCmd.Flags().String("rate", "0", "Hourly rate")
}
