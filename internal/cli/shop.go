package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avatar-commerce/avatarcommerce/internal/catalog"
	"github.com/avatar-commerce/avatarcommerce/internal/chat"
	"github.com/avatar-commerce/avatarcommerce/internal/insights"
)

func newChatCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <influencer-id> <message...>",
		Short: "Send a message to an influencer's avatar",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.client(cmd.Context())
			if err != nil {
				return err
			}
			conv := chat.NewConversation(a.API, args[0])
			reply, err := conv.Send(cmd.Context(), strings.Join(args[1:], " "))
			printReply(cmd, conv, reply)
			return err
		},
	}
}

func newRecommendCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <influencer-id> <query...>",
		Short: "Ask an influencer's avatar for product recommendations",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.client(cmd.Context())
			if err != nil {
				return err
			}
			conv := chat.NewConversation(a.API, args[0])
			reply, err := conv.Recommend(cmd.Context(), strings.Join(args[1:], " "))
			printReply(cmd, conv, reply)
			return err
		},
	}
}

func printReply(cmd *cobra.Command, conv *chat.Conversation, reply chat.Message) {
	if reply.Text == "" {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
	if video := conv.CurrentVideo(); video != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Video:", video)
	}
}

func newProductsCommand() *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products := catalog.Default().Filter(category, search)
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tPRICE\tCATEGORY")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.DisplayPrice(), p.Category)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", catalog.CategoryAll, "all, electronics, wearables or accessories")
	cmd.Flags().StringVar(&search, "search", "", "title substring")
	return cmd
}

func newStatsCommand() *cobra.Command {
	var rangeFlag string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show influencer statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := insights.ParseTimeRange(rangeFlag)
			if err != nil {
				return err
			}
			report := insights.SampleReport(r)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", r.Label())
			fmt.Fprintf(out, "Revenue: $%.2f  Orders: %d  Avg order: $%.2f\n",
				report.Summary.TotalRevenue, report.Summary.TotalOrders, report.Summary.AverageOrderValue)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tREVENUE\tORDERS")
			for _, m := range report.Monthly {
				fmt.Fprintf(w, "%s\t$%.2f\t%d\n", m.Month, m.Revenue, m.Orders)
			}
			fmt.Fprintln(w, "\nPRODUCT\tSALES\tREVENUE")
			for _, p := range report.TopProducts {
				fmt.Fprintf(w, "%s\t%d\t$%.2f\n", p.Name, p.Sales, p.Revenue)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			eng := report.Engagement
			fmt.Fprintf(out, "\nChats: %d  Avg response: %s  Conversion: %s  Active users: %d\n",
				eng.TotalChats, eng.AvgResponseTime, eng.ConversionRate, eng.ActiveUsers)
			return nil
		},
	}
	cmd.Flags().StringVar(&rangeFlag, "range", string(insights.Last30Days), "7d, 30d, 90d or year")
	return cmd
}
