package cli

import (
	"fmt"
	"strconv"

	"github.com/marta/studiobook/internal/domain"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
	Long:  `List, add, find, and remove clients.`,
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients := appInstance.Catalog.Clients()
		if len(clients) == 0 {
			fmt.Println("No clients found")
			return nil
		}

		fmt.Printf("%-5s %-30s %-15s %-25s %-8s\n", "ID", "Name", "Phone", "Email", "Loyalty")
		fmt.Println("--------------------------------------------------------------------------------------")
		for _, client := range clients {
			fmt.Printf("%-5d %-30s %-15s %-25s %-8d\n",
				client.ID,
				truncate(client.Name, 30),
				truncate(client.Phone, 15),
				truncate(client.Email, 25),
				client.LoyaltyLevel,
			)
		}

		fmt.Printf("\nTotal: %d client(s)\n", len(clients))
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add [id] [name]",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid client ID: %w", err)
		}

		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		loyalty, _ := cmd.Flags().GetInt("loyalty")
		notes, _ := cmd.Flags().GetString("notes")

		client, err := domain.NewClient(id, args[1], phone, email, loyalty, notes)
		if err != nil {
			return fmt.Errorf("invalid client: %w", err)
		}

		if err := appInstance.Catalog.AddClient(client); err != nil {
			return fmt.Errorf("failed to add client: %w", err)
		}

		fmt.Printf("✓ Client added: %s (ID: %d)\n", client.Name, client.ID)
		persist()
		return nil
	},
}

var clientsFindCmd = &cobra.Command{
	Use:   "find [text]",
	Short: "Find clients by name substring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := ""
		if len(args) > 0 {
			text = args[0]
		}

		matches := appInstance.Catalog.FindClientsByName(text)
		if len(matches) == 0 {
			fmt.Println("No matching clients")
			return nil
		}
		for _, client := range matches {
			fmt.Println(client.Summary())
		}
		return nil
	},
}

var clientsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a client by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid client ID: %w", err)
		}

		client, err := appInstance.Catalog.ClientByID(id)
		if err != nil {
			return err
		}
		fmt.Println(client.Summary())
		return nil
	},
}

var clientsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid client ID: %w", err)
		}

		if err := appInstance.Catalog.RemoveClient(id); err != nil {
			return fmt.Errorf("failed to remove client: %w", err)
		}

		fmt.Printf("✓ Client removed (ID: %d)\n", id)
		persist()
		return nil
	},
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsFindCmd)
	clientsCmd.AddCommand(clientsShowCmd)
	clientsCmd.AddCommand(clientsRemoveCmd)

	// Add flags
	clientsAddCmd.Flags().String("phone", "", "Client phone")
	clientsAddCmd.Flags().String("email", "", "Client email")
	clientsAddCmd.Flags().Int("loyalty", 0, "Loyalty level")
	clientsAddCmd.Flags().String("notes", "", "Notes about the client")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
