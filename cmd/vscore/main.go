// vscore scores CVSS v2 vector strings from the command line.
//
//	vscore AV:N/AC:L/Au:N/C:N/I:N/A:C
//	vscore -group environmental -json 'AV:N/.../CDP:H/TD:H/CR:M/IR:M/AR:H'
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"github.com/vulnscale/vulnscale/internal/core/services/scoring"
)

func main() {
	group := flag.String("group", "auto", "Metric group: base, temporal, environmental or auto")
	asJSON := flag.Bool("json", false, "Emit the result as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vscore [-group auto|base|temporal|environmental] [-json] VECTOR")
		os.Exit(2)
	}
	vector := flag.Arg(0)

	if !domain.IsPlausibleVector(vector) {
		fmt.Fprintln(os.Stderr, "vscore: input does not look like a vector string")
		os.Exit(1)
	}

	svc := scoring.NewService(nil, nil)
	assessment, err := svc.Evaluate(vector, cvss.Group(*group))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vscore: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(assessment)
		return
	}

	fmt.Printf("Vector:     %s\n", assessment.Canonical)
	fmt.Printf("Group:      %s\n", assessment.Group)
	fmt.Printf("Base:       %.1f\n", assessment.BaseScore)
	if assessment.TemporalScore != nil {
		fmt.Printf("Temporal:   %.1f\n", *assessment.TemporalScore)
	}
	if assessment.EnvironmentalScore != nil {
		fmt.Printf("Environmental: %.1f\n", *assessment.EnvironmentalScore)
	}
	fmt.Printf("Severity:   %s\n", assessment.Severity)
}
