/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"

	"github.com/notargets/fluxlab/InputParameters"
	"github.com/notargets/fluxlab/convergence"
	"github.com/notargets/fluxlab/model_problems/Burgers1D"
)

// OrderCmd represents the order command
var OrderCmd = &cobra.Command{
	Use:   "order",
	Short: "Order of accuracy study of a batch of schemes",
	Long: `
Runs the order study for every scheme in the list. A scheme that fails to
reach the final time is logged and skipped, the others still run. All studies
can be saved to one CSV file for the convOrder tool,

fluxlab order --schemes godunov,fv-weno5,fd-weno5,dg,dg-tvb --csv study.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		ip, err := processInput(cmd)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("bad input")
		}
		schemes, _ := cmd.Flags().GetString("schemes")
		csvFile, _ := cmd.Flags().GetString("csv")
		reportDir, _ := cmd.Flags().GetString("reportDir")
		studies, err := runBatch(ip, strings.Split(schemes, ","), reportDir)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("order study failed")
		}
		if err = writeStudies(csvFile, studies); err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("write study")
		}
	},
}

func init() {
	rootCmd.AddCommand(OrderCmd)
	addInputFlags(OrderCmd.Flags())
	OrderCmd.Flags().String("schemes", "godunov,fv-weno5,fd-weno5,dg,dg-tvb", "comma separated list of schemes")
	OrderCmd.Flags().String("csv", "", "file to save all studies to")
	OrderCmd.Flags().String("reportDir", "", "directory for one order table per scheme")
}

// runBatch runs every scheme on a copy of ip. Recoverable failures are logged
// and the scheme is dropped from the result.
func runBatch(ip *InputParameters.InputParameters1D, schemes []string, reportDir string) (studies []*convergence.Study, err error) {
	for _, scheme := range schemes {
		var (
			sip = *ip
			c   *Burgers1D.Burgers1D
			cs  *convergence.Study
		)
		sip.Scheme = strings.TrimSpace(scheme)
		if len(reportDir) != 0 {
			sip.ReportFile = filepath.Join(reportDir, "order_"+sip.Scheme+".txt")
		}
		if c, err = Burgers1D.NewBurgers1D(&sip, logger); err != nil {
			return
		}
		fmt.Printf("%s\n", c.Scheme)
		run := func() (err error) {
			cs, err = c.Run(os.Stdout)
			return
		}
		if isPerf() {
			err = countInstructions(run)
		} else {
			err = run()
		}
		if err != nil {
			if Burgers1D.IsRecoverable(err) {
				logger.WithFields(l.StringField("scheme", sip.Scheme), l.ErrorField(err)).Error("skipped")
				err = nil
				continue
			}
			return
		}
		studies = append(studies, cs)
	}
	return
}

func writeStudies(fileName string, studies []*convergence.Study) (err error) {
	var (
		f *os.File
	)
	if len(fileName) == 0 {
		return
	}
	if f, err = os.Create(fileName); err != nil {
		return
	}
	if err = convergence.WriteStudyCSV(f, studies...); err != nil {
		_ = f.Close()
		return
	}
	logger.WithFields(l.StringField("file", fileName), l.IntField("studies", len(studies))).Info("saved")
	return f.Close()
}
