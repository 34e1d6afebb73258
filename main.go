package main

import (
	"github.com/lehigh-university-libraries/bibparse/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/bibparse/format/csv"
	_ "github.com/lehigh-university-libraries/bibparse/format/endnote"
	_ "github.com/lehigh-university-libraries/bibparse/format/pubmed"
	_ "github.com/lehigh-university-libraries/bibparse/format/ris"
)

func main() {
	cmd.Execute()
}
