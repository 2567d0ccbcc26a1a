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
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notargets/fluxlab/InputParameters"
	"github.com/notargets/fluxlab/model_problems/Burgers1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Order of accuracy study of one scheme",
	Long: `
Solves the periodic Burgers problem with one scheme on a list of resolutions,
prints the error and order table and optionally exports plot data,

fluxlab 1D --scheme dg -n 2 --resolutions 10,20,40,80`,
	Run: func(cmd *cobra.Command, args []string) {
		ip, err := processInput(cmd)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("bad input")
		}
		ip.Print()
		if err = run1D(ip); err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("1D failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	addInputFlags(OneDCmd.Flags())
	OneDCmd.Flags().StringP("scheme", "s", "dg", "scheme: godunov, fv-weno5, fd-weno5, dg, dg-tvb")
	OneDCmd.Flags().String("report", "", "file to write the order table to")
}

func addInputFlags(fs *pflag.FlagSet) {
	ip := InputParameters.NewInputParameters1D()
	fs.StringP("inputConditionsFile", "I", "", "YAML file of input parameters")
	fs.StringP("integrator", "t", "", "time integrator: euler or rk3, empty for the scheme default")
	fs.String("flux", ip.Flux, "flux: burgers or advection")
	fs.IntP("n", "n", ip.PolynomialOrder, "polynomial degree of the DG schemes")
	fs.IntP("quadrature", "q", ip.QuadratureOrder, "number of Gauss points")
	fs.Float64("tvbM", ip.TVBM, "TVB constant M of the limiter")
	fs.Float64("CFL", 0, "scales the time step of the scheme, 0 keeps the default")
	fs.Float64("finalTime", ip.FinalTime, "end time of the order study")
	fs.Float64("plotTime", ip.PlotTime, "end time of the plot runs")
	fs.String("resolutions", "", "comma separated cell counts, e.g. 10,20,40")
	fs.String("plotResolutions", "", "comma separated cell counts of the plot runs")
	fs.String("exportDir", "", "directory to export plot data to, empty to skip")
	fs.Int("maxIterations", 0, "bound on time steps per run, 0 for the default")
	fs.IntP("parallel", "p", 1, "goroutines used by the DG and WENO kernels")
}

// processInput layers the input file, the config file and the command line,
// later layers win
func processInput(cmd *cobra.Command) (ip *InputParameters.InputParameters1D, err error) {
	var (
		fs   = cmd.Flags()
		data []byte
	)
	ip = InputParameters.NewInputParameters1D()
	if fileName, _ := fs.GetString("inputConditionsFile"); len(fileName) != 0 {
		if data, err = os.ReadFile(fileName); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return
		}
	}
	if viper.IsSet("delimiter") {
		ip.Delimiter = viper.GetString("delimiter")
	}
	if viper.IsSet("resolutions") && !fs.Changed("resolutions") {
		if ip.Resolutions, err = cast.ToIntSliceE(viper.Get("resolutions")); err != nil {
			return
		}
	}
	if fs.Lookup("scheme") != nil && fs.Changed("scheme") {
		ip.Scheme, _ = fs.GetString("scheme")
	}
	if fs.Lookup("report") != nil && fs.Changed("report") {
		ip.ReportFile, _ = fs.GetString("report")
	}
	if fs.Changed("integrator") {
		ip.Integrator, _ = fs.GetString("integrator")
	}
	if fs.Changed("flux") {
		ip.Flux, _ = fs.GetString("flux")
	}
	if fs.Changed("n") {
		ip.PolynomialOrder, _ = fs.GetInt("n")
	}
	if fs.Changed("quadrature") {
		ip.QuadratureOrder, _ = fs.GetInt("quadrature")
	}
	if fs.Changed("tvbM") {
		ip.TVBM, _ = fs.GetFloat64("tvbM")
	}
	if fs.Changed("CFL") {
		ip.CFL, _ = fs.GetFloat64("CFL")
	}
	if fs.Changed("finalTime") {
		ip.FinalTime, _ = fs.GetFloat64("finalTime")
	}
	if fs.Changed("plotTime") {
		ip.PlotTime, _ = fs.GetFloat64("plotTime")
	}
	if fs.Changed("exportDir") {
		ip.ExportDir, _ = fs.GetString("exportDir")
	}
	if fs.Changed("maxIterations") {
		ip.MaxIterations, _ = fs.GetInt("maxIterations")
	}
	if fs.Changed("parallel") {
		ip.ParallelDegree, _ = fs.GetInt("parallel")
	}
	if fs.Changed("resolutions") {
		res, _ := fs.GetString("resolutions")
		if ip.Resolutions, err = parseIntList(res); err != nil {
			return
		}
	}
	if fs.Changed("plotResolutions") {
		res, _ := fs.GetString("plotResolutions")
		if ip.PlotResolutions, err = parseIntList(res); err != nil {
			return
		}
	}
	err = ip.Validate()
	return
}

func parseIntList(list string) (vals []int, err error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' })
	if vals, err = cast.ToIntSliceE(fields); err != nil {
		err = fmt.Errorf("bad list %q: %w", list, err)
	}
	return
}

func run1D(ip *InputParameters.InputParameters1D) (err error) {
	c, err := Burgers1D.NewBurgers1D(ip, logger)
	if err != nil {
		return
	}
	run := func() (err error) {
		_, err = c.Run(os.Stdout)
		return
	}
	if isPerf() {
		return countInstructions(run)
	}
	return run()
}

func isPerf() bool {
	return viper.GetBool("perf")
}
