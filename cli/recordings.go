package cli

import (
	"dailyco/protocol"
	"dailyco/recording"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRecordingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recordings",
		Short: "Inspect, download and delete recordings",
	}
	cmd.AddCommand(newRecordingGetCmd(a))
	cmd.AddCommand(newRecordingDeleteCmd(a))
	cmd.AddCommand(newRecordingListCmd(a))
	cmd.AddCommand(newRecordingLinkCmd(a))
	return cmd
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("recording id %q: %w", s, err)
	}
	return id, nil
}

func newRecordingGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			rec, err := client.GetRecording(a.commandContext(cmd), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, rec)
		},
	}
}

func newRecordingDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			if err := client.DeleteRecording(a.commandContext(cmd), id); err != nil {
				return err
			}
			return printJSON(cmd, protocol.DeleteResponse{Deleted: true, ID: id.String()})
		},
	}
}

func newRecordingListCmd(a *app) *cobra.Command {
	var (
		limit         uint32
		roomName      string
		startingAfter string
		endingBefore  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recordings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := recording.NewList()
			if cmd.Flags().Changed("limit") {
				req.Limit(limit)
			}
			if roomName != "" {
				req.RoomName(roomName)
			}
			if startingAfter != "" {
				id, err := parseID(startingAfter)
				if err != nil {
					return err
				}
				req.StartingAfter(id)
			}
			if endingBefore != "" {
				id, err := parseID(endingBefore)
				if err != nil {
					return err
				}
				req.EndingBefore(id)
			}

			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			list, err := client.ListRecordings(a.commandContext(cmd), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, list)
		},
	}

	cmd.Flags().Uint32Var(&limit, "limit", 0, "maximum number of recordings")
	cmd.Flags().StringVar(&roomName, "room", "", "only recordings of this room")
	cmd.Flags().StringVar(&startingAfter, "starting-after", "", "page after this recording id")
	cmd.Flags().StringVar(&endingBefore, "ending-before", "", "page before this recording id")

	return cmd
}

func newRecordingLinkCmd(a *app) *cobra.Command {
	var validFor uint64

	cmd := &cobra.Command{
		Use:   "link ID",
		Short: "Get a time-limited download link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := recording.NewAccessLink()
			if cmd.Flags().Changed("valid-for") {
				req.ValidForSecs(validFor)
			}

			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			link, err := client.GetRecordingAccessLink(a.commandContext(cmd), id, req)
			if err != nil {
				return err
			}
			return printJSON(cmd, link)
		},
	}

	cmd.Flags().Uint64Var(&validFor, "valid-for", 0, "link lifetime in seconds")

	return cmd
}
