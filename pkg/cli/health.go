package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/polyrpc/demoapi/pkg/api/types"
)

var healthURL string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check if the demo API server is healthy and reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: 5 * time.Second}

		resp, err := client.Get(healthURL + "/health")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "unhealthy: %v\n", err)
			return errors.New("server is not healthy")
		}
		defer resp.Body.Close()

		var health types.HealthResponse
		if err := json.NewDecoder(resp.Body).Decode(&health); err != nil || health.Status != "ok" {
			fmt.Fprintln(cmd.ErrOrStderr(), "unhealthy: unexpected response")
			return errors.New("server is not healthy")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "healthy")
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthURL, "url", "http://localhost:8000", "API base URL")
	rootCmd.AddCommand(healthCmd)
}
