package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stackplan/stackplan/provider/aws"
	"github.com/stackplan/stackplan/resource"
)

var resourcesCommand = &cobra.Command{
	Use:     "resources",
	Aliases: []string{"res"},
	Short:   "List supported resource types",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reg := &resource.Registry{}
		aws.Register(reg)
		for _, t := range reg.Types() {
			fmt.Println(t)
		}
	},
}

func init() {
	Stackplan.AddCommand(resourcesCommand)
}
