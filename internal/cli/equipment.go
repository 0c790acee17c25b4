package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/marta/studiobook/internal/domain"
)

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Manage equipment",
	Long:  `List, add, find, and remove equipment items.`,
}

var equipmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := appInstance.Catalog.Equipment()
		if len(items) == 0 {
			fmt.Println("No equipment found")
			return nil
		}

		fmt.Printf("%-5s %-30s %-15s %-10s %-12s\n", "ID", "Name", "Type", "Available", "Price/h")
		fmt.Println("----------------------------------------------------------------------------")
		for _, e := range items {
			avail := "no"
			if e.IsAvailable {
				avail = "yes"
			}
			fmt.Printf("%-5d %-30s %-15s %-10s %-12s\n",
				e.ID,
				truncate(e.Name, 30),
				truncate(e.Type, 15),
				avail,
				e.PricePerHour.StringFixed(2),
			)
		}

		fmt.Printf("\nTotal: %d item(s)\n", len(items))
		return nil
	},
}

var equipmentAddCmd = &cobra.Command{
	Use:   "add [id] [name]",
	Short: "Add a new equipment item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid equipment ID: %w", err)
		}

		typ, _ := cmd.Flags().GetString("type")
		available, _ := cmd.Flags().GetBool("available")
		priceStr, _ := cmd.Flags().GetString("price")

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", priceStr, err)
		}

		e, err := domain.NewEquipment(id, args[1], typ, available, price)
		if err != nil {
			return fmt.Errorf("invalid equipment: %w", err)
		}

		if err := appInstance.Catalog.AddEquipment(e); err != nil {
			return fmt.Errorf("failed to add equipment: %w", err)
		}

		fmt.Printf("✓ Equipment added: %s (ID: %d)\n", e.Name, e.ID)
		persist()
		return nil
	},
}

var equipmentFindCmd = &cobra.Command{
	Use:   "find [text]",
	Short: "Find equipment by name substring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := ""
		if len(args) > 0 {
			text = args[0]
		}

		matches := appInstance.Catalog.FindEquipmentByName(text)
		if len(matches) == 0 {
			fmt.Println("No matching equipment")
			return nil
		}
		for _, e := range matches {
			fmt.Println(e.Summary())
		}
		return nil
	},
}

var equipmentShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an equipment item by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid equipment ID: %w", err)
		}

		e, err := appInstance.Catalog.EquipmentByID(id)
		if err != nil {
			return err
		}
		fmt.Println(e.Summary())
		return nil
	},
}

var equipmentRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an equipment item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid equipment ID: %w", err)
		}

		if err := appInstance.Catalog.RemoveEquipment(id); err != nil {
			return fmt.Errorf("failed to remove equipment: %w", err)
		}

		fmt.Printf("✓ Equipment removed (ID: %d)\n", id)
		persist()
		return nil
	},
}

func init() {
	equipmentCmd.AddCommand(equipmentListCmd)
	equipmentCmd.AddCommand(equipmentAddCmd)
	equipmentCmd.AddCommand(equipmentFindCmd)
	equipmentCmd.AddCommand(equipmentShowCmd)
	equipmentCmd.AddCommand(equipmentRemoveCmd)

	// Add flags
	equipmentAddCmd.Flags().String("type", "", "Equipment type (camera, lens, flash, ...)")
	equipmentAddCmd.Flags().Bool("available", true, "Whether the item is available")
	equipmentAddCmd.Flags().String("price", "0", "Hourly rental price")
}
