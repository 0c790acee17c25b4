package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const sessionDateLayout = "2006-01-02 15:04"

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage photo sessions",
	Long:  `List, create, and remove photo sessions.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions := appInstance.Catalog.Sessions()
		if len(sessions) == 0 {
			fmt.Println("No sessions found")
			return nil
		}

		for _, s := range sessions {
			fmt.Println(s.Summary())
			fmt.Println()
		}
		fmt.Printf("Total: %d session(s)\n", len(sessions))
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a session by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session ID: %w", err)
		}

		s, err := appInstance.Catalog.SessionByID(id)
		if err != nil {
			return err
		}
		fmt.Println(s.Summary())
		return nil
	},
}

var sessionsCreateCmd = &cobra.Command{
	Use:   "create [id]",
	Short: "Create a photo session",
	Long: `Create a photo session referencing an existing client, photographer
and zero or more equipment items. The total price is computed from the
photographer's hourly rate, the equipment rental prices and the duration.
Equipment ids that do not resolve are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session ID: %w", err)
		}

		clientID, _ := cmd.Flags().GetInt("client")
		photographerID, _ := cmd.Flags().GetInt("photographer")
		equipmentCSV, _ := cmd.Flags().GetString("equipment")
		dateStr, _ := cmd.Flags().GetString("date")
		duration, _ := cmd.Flags().GetInt("duration")
		location, _ := cmd.Flags().GetString("location")
		yes, _ := cmd.Flags().GetBool("yes")

		equipmentIDs, err := parseIDList(equipmentCSV)
		if err != nil {
			return err
		}

		date, err := time.Parse(sessionDateLayout, dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected %q): %w", dateStr, sessionDateLayout, err)
		}

		session, quote, err := appInstance.Sessions.Build(id, clientID, photographerID, equipmentIDs, date, duration, location)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		for _, skipped := range quote.SkippedEquipment {
			fmt.Printf("! Equipment %d not found, skipped\n", skipped)
		}
		fmt.Printf("Computed session price: %s (%s photographer + %s equipment)\n",
			quote.Total.StringFixed(2),
			quote.PhotographerCost.StringFixed(2),
			quote.EquipmentCost.StringFixed(2),
		)

		if !yes {
			fmt.Print("Confirm session creation? (y/n): ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Session creation cancelled")
				return nil
			}
		}

		if err := appInstance.Catalog.AddSession(session); err != nil {
			return fmt.Errorf("failed to add session: %w", err)
		}

		fmt.Printf("✓ Session created (ID: %d, total: %s)\n", session.ID, session.TotalPrice.StringFixed(2))
		persist()
		return nil
	},
}

var sessionsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session ID: %w", err)
		}

		if err := appInstance.Catalog.RemoveSession(id); err != nil {
			return fmt.Errorf("failed to remove session: %w", err)
		}

		fmt.Printf("✓ Session removed (ID: %d)\n", id)
		persist()
		return nil
	},
}

// parseIDList parses a comma-separated id list; blank input means none.
func parseIDList(csv string) ([]int, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}

	var ids []int
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid equipment ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsCreateCmd)
	sessionsCmd.AddCommand(sessionsRemoveCmd)

	// Create flags
	sessionsCreateCmd.Flags().Int("client", 0, "Client ID (required)")
	sessionsCreateCmd.MarkFlagRequired("client")
	sessionsCreateCmd.Flags().Int("photographer", 0, "Photographer ID (required)")
	sessionsCreateCmd.MarkFlagRequired("photographer")
	sessionsCreateCmd.Flags().String("equipment", "", "Comma-separated equipment IDs")
	sessionsCreateCmd.Flags().String("date", "", "Date and time, e.g. 2026-08-29 15:30 (required)")
	sessionsCreateCmd.MarkFlagRequired("date")
	sessionsCreateCmd.Flags().Int("duration", 0, "Duration in minutes")
	sessionsCreateCmd.Flags().String("location", "", "Session location")
	sessionsCreateCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
