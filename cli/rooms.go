package cli

import (
	"dailyco/configuration"
	"dailyco/daily"
	"dailyco/protocol"
	"dailyco/room"

	"github.com/spf13/cobra"
)

func newRoomsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Create, inspect and delete rooms",
	}
	cmd.AddCommand(newRoomCreateCmd(a))
	cmd.AddCommand(newRoomGetCmd(a))
	cmd.AddCommand(newRoomListCmd(a))
	cmd.AddCommand(newRoomUpdateCmd(a))
	cmd.AddCommand(newRoomDeleteCmd(a))
	return cmd
}

func newRoomCreateCmd(a *app) *cobra.Command {
	var (
		name    string
		privacy string
		sets    []string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a room",
		Long:  `Create a room. Properties are given as repeated --set key=value flags; see "dailyctl fields room".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props := room.NewProperties()
			if err := applySets(props, sets); err != nil {
				return err
			}
			req := room.NewCreate().Properties(props)
			if name != "" {
				req.Name(name)
			}
			if privacy != "" {
				req.Privacy(configuration.RoomPrivacy(privacy))
			}
			if dryRun {
				return printJSON(cmd, req)
			}

			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			r, err := client.CreateRoom(a.commandContext(cmd), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, r)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "room name (random when empty)")
	cmd.Flags().StringVar(&privacy, "privacy", "", "public or private")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "room property as key=value (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the request body instead of sending it")

	return cmd
}

func newRoomGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			r, err := client.GetRoom(a.commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, r)
		},
	}
}

func newRoomListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			rooms, err := client.GetRooms(a.commandContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd, rooms)
		},
	}
}

func newRoomUpdateCmd(a *app) *cobra.Command {
	var (
		privacy string
		sets    []string
	)

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Change a room's privacy or properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props := room.NewProperties()
			if err := applySets(props, sets); err != nil {
				return err
			}
			req := room.NewUpdate().Properties(props)
			if privacy != "" {
				req.Privacy(configuration.RoomPrivacy(privacy))
			}

			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			r, err := client.UpdateRoom(a.commandContext(cmd), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, r)
		},
	}

	cmd.Flags().StringVar(&privacy, "privacy", "", "public or private")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "room property as key=value (repeatable)")

	return cmd
}

func newRoomDeleteCmd(a *app) *cobra.Command {
	var ignoreMissing bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			err = client.DeleteRoom(a.commandContext(cmd), args[0])
			if err != nil && !(ignoreMissing && daily.IsNotFound(err)) {
				return err
			}
			return printJSON(cmd, protocol.DeleteResponse{Deleted: err == nil, Name: args[0]})
		},
	}

	cmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "succeed when the room does not exist")

	return cmd
}
