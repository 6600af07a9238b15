package cli

import (
	"dailyco/meetingtoken"
	"errors"

	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Issue, self-sign and inspect meeting tokens",
	}
	cmd.AddCommand(newTokenCreateCmd(a))
	cmd.AddCommand(newTokenGetCmd(a))
	cmd.AddCommand(newTokenSignCmd(a))
	cmd.AddCommand(newTokenVerifyCmd(a))
	return cmd
}

func tokenBuilder(sets []string) (*meetingtoken.Builder, error) {
	b := meetingtoken.New()
	if err := applySets(b, sets); err != nil {
		return nil, err
	}
	return b, nil
}

func newTokenCreateCmd(a *app) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Ask Daily to issue a meeting token",
		Long:  `Ask Daily to issue a meeting token. Properties are given as repeated --set key=value flags; see "dailyctl fields token".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := tokenBuilder(sets)
			if err != nil {
				return err
			}
			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			token, err := client.CreateMeetingToken(a.commandContext(cmd), b)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]string{"token": token})
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "token property as key=value (repeatable)")

	return cmd
}

func newTokenGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get TOKEN",
		Short: "Validate a token with Daily and show its properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.dailyClient()
			if err != nil {
				return err
			}
			t, err := client.GetMeetingToken(a.commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, t)
		},
	}
}

// signingSecret defaults to the API key, which is what Daily signs with.
func (a *app) signingSecret(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.settings.API.APIKey == "" {
		return "", errors.New("no signing secret; pass --secret or set DAILY_API_KEY")
	}
	return a.settings.API.APIKey, nil
}

func newTokenSignCmd(a *app) *cobra.Command {
	var (
		sets     []string
		domainID string
		secret   string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Self-sign a meeting token offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := tokenBuilder(sets)
			if err != nil {
				return err
			}
			if domainID == "" {
				domainID = a.settings.DomainID
			}
			key, err := a.signingSecret(secret)
			if err != nil {
				return err
			}
			token, err := b.SelfSign(domainID, key)
			if err != nil {
				return err
			}
			a.logger.Debug("self-signed meeting token", "fields", len(b.Bag().Keys()))
			return printJSON(cmd, map[string]string{"token": token})
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "token property as key=value (repeatable)")
	cmd.Flags().StringVar(&domainID, "domain", "", "Daily domain id (default DAILY_DOMAIN_ID)")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (default DAILY_API_KEY)")

	return cmd
}

func newTokenVerifyCmd(a *app) *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "verify TOKEN",
		Short: "Verify a self-signed token offline and show its properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.signingSecret(secret)
			if err != nil {
				return err
			}
			t, domainID, err := meetingtoken.VerifySelfSigned(args[0], key)
			if err != nil {
				return err
			}
			return printJSON(cmd, struct {
				DomainID   string                    `json:"domain_id"`
				Properties meetingtoken.MeetingToken `json:"properties"`
			}{domainID, t})
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (default DAILY_API_KEY)")

	return cmd
}
