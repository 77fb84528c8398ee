package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-portfolio-backend/pkg/client"
	"go-portfolio-backend/pkg/form"
)

func newSubmitCommand() *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a contact form message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := cmd.Flags().GetString("server")
			if err != nil {
				return err
			}

			ctrl := form.NewController(client.New(server))
			ctrl.UpdateField(form.FieldName, name)
			ctrl.UpdateField(form.FieldEmail, email)
			ctrl.UpdateField(form.FieldMessage, message)

			if err := ctrl.Submit(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ctrl.StatusMessage())
				return err
			}

			if errs := ctrl.Errors(); len(errs) > 0 {
				for _, f := range []form.Field{form.FieldName, form.FieldEmail, form.FieldMessage} {
					if msg, ok := errs[f]; ok {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f, msg)
					}
				}
				return fmt.Errorf("validation failed")
			}

			if ctrl.Status() == form.StatusFailed {
				return fmt.Errorf("%s", ctrl.StatusMessage())
			}

			fmt.Fprintln(cmd.OutOrStdout(), ctrl.StatusMessage())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your full name")
	cmd.Flags().StringVar(&email, "email", "", "Your email address")
	cmd.Flags().StringVar(&message, "message", "", "The message to send")
	return cmd
}
