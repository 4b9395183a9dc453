// cmd/orgctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bitloft/orgkit/internal/docstore"
	"github.com/bitloft/orgkit/internal/model"
	"github.com/bitloft/orgkit/internal/repository"
	"github.com/bitloft/orgkit/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbConnString string
	inviteStatus string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", os.Getenv("DATABASE_URL"), "Database connection string")

	invitesListCmd.Flags().StringVarP(&inviteStatus, "status", "s", "pending", "Invite status to list (pending, accepted, expired)")

	invitesCmd.AddCommand(invitesListCmd)
	invitesCmd.AddCommand(invitesExpireCmd)

	rootCmd.AddCommand(invitesCmd)
	rootCmd.AddCommand(chartCmd)
}

var rootCmd = &cobra.Command{
	Use:   "orgctl",
	Short: "orgctl is an admin CLI for organization setup data",
	Long:  `orgctl inspects and maintains organization charts and invites directly against the document store.`,
}

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Inspect and maintain organization invites",
}

var invitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invites by status",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		repo := repository.NewInviteRepository(store)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		invites, err := repo.ListByStatus(ctx, model.InviteStatus(inviteStatus))
		if err != nil {
			log.Fatalf("Failed to list invites: %v", err)
		}

		fmt.Printf("Found %d %s invite(s)\n", len(invites), inviteStatus)
		for _, inv := range invites {
			fmt.Printf("  %s  %-30s  org=%s  expires=%s\n",
				inv.Code, inv.Email, inv.OrganizationID, inv.ExpiresAt.Format(time.RFC3339))
		}
	},
}

var invitesExpireCmd = &cobra.Command{
	Use:   "expire",
	Short: "Mark overdue pending invites as expired",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		invites := service.NewInviteService(repository.NewInviteRepository(store), nil, "", 0)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		n, err := invites.ExpireOverdue(ctx)
		if err != nil {
			log.Fatalf("Failed to expire invites: %v", err)
		}

		fmt.Printf("Expired %d invite(s)\n", n)
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart [orgID]",
	Short: "Show a summary of an organization's saved chart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		repo := repository.NewChartRepository(store)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		chart, err := repo.Load(ctx, args[0])
		if err != nil {
			log.Fatalf("Failed to load chart: %v", err)
		}
		if chart == nil {
			fmt.Println("No chart saved for this organization")
			return
		}

		personnel, annotations := summarizeNodes(chart.Nodes)

		fmt.Printf("Chart: %s\n", chart.Name)
		fmt.Printf("  Version:     %d\n", chart.Metadata.Version)
		fmt.Printf("  Modified by: %s at %s\n", chart.Metadata.LastModifiedBy, chart.UpdatedAt.Format(time.RFC3339))
		fmt.Printf("  Nodes:       %d (%d personnel, %d annotations)\n", len(chart.Nodes), personnel, annotations)
		fmt.Printf("  Edges:       %d\n", len(chart.Edges))
	},
}

func summarizeNodes(nodes []model.Node) (personnel, annotations int) {
	for _, node := range nodes {
		switch node.Kind {
		case model.NodePersonnel:
			personnel++
		case model.NodeAnnotation:
			annotations++
		}
	}
	return personnel, annotations
}

func openStore() docstore.Store {
	if dbConnString == "" {
		log.Fatal("Database connection string is required (--db or DATABASE_URL)")
	}

	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := docstore.NewPostgresStore(db)
	if err != nil {
		log.Fatalf("Failed to set up document store: %v", err)
	}

	return store
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
