package topicscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/pkg/topics"
)

// NewCmd creates the topics command
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [name]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				list, err := topics.List()
				if err != nil {
					return err
				}
				for _, topic := range list {
					cmd.Println(fmt.Sprintf("%-14s %s", topic.Name, topic.Title))
				}
				return nil
			}

			content, err := topics.Content(args[0])
			if err != nil {
				return err
			}
			cmd.Print(topics.NewGlamourRenderer().Render(content))
			return nil
		},
	}
}
