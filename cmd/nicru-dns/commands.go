package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yuriy-kovalchuk/nicru-dns/nicru/record"
)

func newServicesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List DNS services available to the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			services, err := client.Services(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range services {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-15s domains %d/%d enabled=%t\n",
					s.Name, s.Tariff, s.DomainsNum, s.DomainsLimit, bool(s.Enable))
			}
			return nil
		},
	}
}

func newZonesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List zones of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			zones, err := client.Zones(cmd.Context(), "")
			if err != nil {
				return err
			}
			for _, z := range zones {
				changes := ""
				if z.HasChanges {
					changes = " (uncommitted changes)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10d %-40s enabled=%t%s\n", z.ID, z.IDNName, bool(z.Enable), changes)
			}
			return nil
		},
	}
}

func newZonefileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zonefile",
		Short: "Print the zone file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			text, err := client.Zonefile(cmd.Context(), "", "")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newRecordsCmd(a *app) *cobra.Command {
	records := &cobra.Command{
		Use:   "records",
		Short: "Manage zone records",
	}
	records.AddCommand(newRecordsListCmd(a), newRecordsAddCmd(a), newRecordsDeleteCmd(a))
	return records
}

func newRecordsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records of the zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			recs, err := client.Records(cmd.Context(), "", "")
			if err != nil {
				return err
			}
			for _, r := range recs {
				fmt.Fprintln(cmd.OutOrStdout(), record.Format(r))
			}
			return nil
		},
	}
}

func newRecordsAddCmd(a *app) *cobra.Command {
	var (
		recType    string
		name       string
		ttl        int
		preference int
		data       []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record to the zone's pending changeset",
		Long: "Add a record to the zone's pending changeset. The change is not\n" +
			"live until 'commit' is run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := buildRecord(recType, name, ttl, preference, data)
			if err != nil {
				return err
			}
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			confirmed, err := client.AddRecords(cmd.Context(), []record.Record{rec}, "", "")
			if err != nil {
				return err
			}
			for _, r := range confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), record.Format(r))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&recType, "type", "", "record type: A, AAAA, CNAME, MX, TXT or PTR")
	cmd.Flags().StringVar(&name, "name", "", "record name, empty for the zone apex")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "TTL in seconds, 0 inherits the zone default")
	cmd.Flags().IntVar(&preference, "preference", 10, "MX preference")
	cmd.Flags().StringArrayVar(&data, "data", nil, "record data; repeat for multi-string TXT records")
	cobra.CheckErr(cmd.MarkFlagRequired("type"))
	cobra.CheckErr(cmd.MarkFlagRequired("data"))
	return cmd
}

// buildRecord constructs a record from CLI flags. Unicode names are
// IDNA-encoded here so the models only ever see ASCII.
func buildRecord(recType, name string, ttl, preference int, data []string) (record.Record, error) {
	ascii, err := record.ToASCII(name)
	if err != nil {
		return nil, fmt.Errorf("encoding name %q: %w", name, err)
	}
	opts := &record.Opts{}
	if ttl != 0 {
		opts.TTL = record.Int(ttl)
	}
	value := data[len(data)-1]
	switch strings.ToUpper(recType) {
	case "A":
		return record.NewA(ascii, value, opts)
	case "AAAA":
		return record.NewAAAA(ascii, value, opts)
	case "CNAME":
		return record.NewCNAME(ascii, value, opts)
	case "MX":
		return record.NewMX(ascii, preference, value, opts)
	case "TXT":
		return record.NewTXT(ascii, data, opts)
	case "PTR":
		return record.NewPTR(ascii, value, opts)
	default:
		return nil, fmt.Errorf("unsupported record type for add: %q", recType)
	}
}

func newRecordsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Delete a record from the zone's pending changeset by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid record id %q", args[0])
			}
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			return client.DeleteRecord(cmd.Context(), id, "", "")
		},
	}
}

func newCommitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Publish the zone's pending changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			return client.Commit(cmd.Context(), "", "")
		},
	}
}

func newRollbackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Discard the zone's pending changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient(cmd.Context())
			if err != nil {
				return err
			}
			return client.Rollback(cmd.Context(), "", "")
		},
	}
}
