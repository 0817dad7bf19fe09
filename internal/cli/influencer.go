package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
)

func newInfluencerCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "influencer <id>",
		Short: "Show an influencer's avatar details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.client(cmd.Context())
			if err != nil {
				return err
			}
			inf, err := a.API.GetInfluencer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Influencer: %s\n", inf.ID)
			if inf.HeygenAvatarID == "" {
				fmt.Fprintln(out, "Avatar: not created")
				return nil
			}
			fmt.Fprintf(out, "Avatar: %s\nVoice: %s\nAsset: %s\n", inf.HeygenAvatarID, inf.VoiceID, inf.OriginalAssetPath)
			return nil
		},
	}
}

func newAvatarCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Manage your digital avatar",
	}
	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Upload an image and create your avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			influencerID, err := a.InfluencerID(cmd.Context())
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := a.API.CreateAvatar(cmd.Context(), api.AvatarUpload{
				InfluencerID: influencerID,
				FileName:     filepath.Base(file),
				MediaType:    mime.TypeByExtension(strings.ToLower(filepath.Ext(file))),
				Content:      f,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nAvatar ID: %s\n", res.Message, res.AvatarID)
			return nil
		},
	}
	create.Flags().StringVar(&file, "file", "", "image file to upload")
	_ = create.MarkFlagRequired("file")
	cmd.AddCommand(create)
	return cmd
}

func newDashboardCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your influencer dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			dash, err := a.API.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total revenue: $%.2f\nLast month: $%.2f (%+.1f%%)\n", dash.Revenue.Total, dash.Revenue.LastMonth, dash.Revenue.PercentChange)
			if dash.Status.HasAvatar {
				fmt.Fprintf(out, "Avatar: active (%s)\n", dash.Status.AvatarID)
			} else {
				fmt.Fprintln(out, "Avatar: not created")
			}
			fmt.Fprintf(out, "Pending chats: %d\n", dash.Status.PendingChats)
			if len(dash.RecentSales) == 0 {
				fmt.Fprintln(out, "No sales yet")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tCUSTOMER\tAMOUNT\tDATE")
			for _, s := range dash.RecentSales {
				fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\n", s.ProductName, s.Customer, s.Amount, s.Date.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func newAffiliateCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affiliate",
		Short: "Manage affiliate program links",
	}
	var req api.AffiliateRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Register an affiliate link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			link, err := a.API.AddAffiliate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s affiliate %s\n", link.Platform, link.AffiliateID)
			return nil
		},
	}
	add.Flags().StringVar(&req.Platform, "platform", "", "affiliate platform, e.g. amazon")
	add.Flags().StringVar(&req.AffiliateID, "id", "", "your affiliate id on the platform")

	list := &cobra.Command{
		Use:   "list",
		Short: "List affiliate links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			links, err := a.API.ListAffiliates(cmd.Context())
			if err != nil {
				return err
			}
			if len(links) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No affiliate links")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLATFORM\tAFFILIATE ID\tADDED")
			for _, l := range links {
				fmt.Fprintf(w, "%s\t%s\t%s\n", l.Platform, l.AffiliateID, l.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(add, list)
	return cmd
}
