package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RDFacendola/Syntropy-sub001/memfmt"
	"github.com/RDFacendola/Syntropy-sub001/vmem"
)

var pagesizeCmd = &cobra.Command{
	Use:   "pagesize",
	Short: "Print the platform's virtual-memory geometry",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("page size:      %s\n", memfmt.Size(vmem.PageSize()))
		fmt.Printf("page alignment: %d\n", vmem.PageAlignment())
	},
}

func init() {
	rootCmd.AddCommand(pagesizeCmd)
}
