package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uongozi/uongozi/internal/application"
	"github.com/uongozi/uongozi/internal/domain"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage leader records (admin only)",
}

var adminListFlags struct {
	tab          string
	county       string
	constituency string
	ward         string
	search       string
	page         int
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse leaders by position with filters and pagination",
	RunE:  runAdminList,
}

var adminCreateFlags struct {
	name         string
	position     string
	county       string
	constituency string
	ward         string
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a leader record",
	RunE:  runAdminCreate,
}

var adminRenameName string

var adminRenameCmd = &cobra.Command{
	Use:   "rename <leader-id>",
	Short: "Rename a leader",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminRename,
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <leader-id>",
	Short: "Delete a leader record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDelete,
}

func init() {
	f := adminListCmd.Flags()
	f.StringVar(&adminListFlags.tab, "tab", string(domain.PositionGovernor), "position tab: governor, mp or mca")
	f.StringVar(&adminListFlags.county, "county", "", "filter by county")
	f.StringVar(&adminListFlags.constituency, "constituency", "", "filter by constituency")
	f.StringVar(&adminListFlags.ward, "ward", "", "filter by ward")
	f.StringVar(&adminListFlags.search, "search", "", "fuzzy name search")
	f.IntVar(&adminListFlags.page, "page", 1, "page number")

	c := adminCreateCmd.Flags()
	c.StringVar(&adminCreateFlags.name, "name", "", "leader name")
	c.StringVar(&adminCreateFlags.position, "position", "", "position: president, governor, mp or mca")
	c.StringVar(&adminCreateFlags.county, "county", "", "county")
	c.StringVar(&adminCreateFlags.constituency, "constituency", "", "constituency")
	c.StringVar(&adminCreateFlags.ward, "ward", "", "ward")

	adminRenameCmd.Flags().StringVar(&adminRenameName, "name", "", "new name")

	adminCmd.AddCommand(adminListCmd, adminCreateCmd, adminRenameCmd, adminDeleteCmd)
}

// adminError turns authorization failures into the refusal the web UI
// expresses as a redirect.
func adminError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotSignedIn):
		return fmt.Errorf("sign in first: uongozi login")
	case errors.Is(err, domain.ErrNotAdmin):
		return fmt.Errorf("the admin dashboard requires an admin account")
	}
	return err
}

func runAdminList(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	query := application.AdminQuery{
		Position:     domain.Position(adminListFlags.tab),
		County:       adminListFlags.county,
		Constituency: adminListFlags.constituency,
		Ward:         adminListFlags.ward,
		Search:       adminListFlags.search,
		Page:         adminListFlags.page,
	}

	page, err := rt.app.AdminDashboard(cmd.Context(), query)
	if err != nil {
		return adminError(err)
	}

	fmt.Printf("== %s ==\n", application.TabHeading(query.Position))
	for _, l := range page.Leaders {
		region := l.County
		if l.Constituency != "" {
			region += " / " + l.Constituency
		}
		if l.Ward != "" {
			region += " / " + l.Ward
		}
		fmt.Printf("%-26s %-40s %s\n", l.ID, l.Name, region)
	}
	fmt.Printf("\nPage %d of %d (%d leaders)\n", page.Page, page.TotalPages, page.Total)
	fmt.Println("Link:", "?"+query.Values().Encode())
	return nil
}

func runAdminCreate(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	created, err := rt.app.CreateLeader(cmd.Context(), application.NewLeaderForm{
		Name:         adminCreateFlags.name,
		Position:     domain.Position(adminCreateFlags.position),
		County:       adminCreateFlags.county,
		Constituency: adminCreateFlags.constituency,
		Ward:         adminCreateFlags.ward,
	})
	if err != nil {
		return adminError(err)
	}

	fmt.Printf("Created %s (%s) with id %s.\n",
		created.Name, application.PositionDisplayName(created.Position), created.ID)
	return nil
}

func runAdminRename(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	updated, err := rt.app.RenameLeader(cmd.Context(), args[0], adminRenameName)
	if err != nil {
		return adminError(err)
	}

	fmt.Printf("Renamed to %s.\n", updated.Name)
	return nil
}

func runAdminDelete(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	if err := rt.app.DeleteLeader(cmd.Context(), args[0]); err != nil {
		return adminError(err)
	}

	fmt.Println("Leader deleted.")
	return nil
}
