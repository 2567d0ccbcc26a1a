package Burgers1D

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sgostarter/i/l"

	"github.com/notargets/fluxlab/InputParameters"
	"github.com/notargets/fluxlab/convergence"
	"github.com/notargets/fluxlab/flux"
	"github.com/notargets/fluxlab/geometry1D"
	"github.com/notargets/fluxlab/solver"
	"github.com/notargets/fluxlab/types"
	"github.com/notargets/fluxlab/utils"
)

// Burgers1D runs order and plot tests of one scheme on the periodic problem
// described by the input parameters
type Burgers1D struct {
	ip     *InputParameters.InputParameters1D
	Exact  Exact
	Flux   flux.Flux
	Scheme *Scheme
	logger l.Wrapper
}

func NewBurgers1D(ip *InputParameters.InputParameters1D, logger l.Wrapper) (c *Burgers1D, err error) {
	var (
		st types.SchemeType
		it types.IntegratorType
	)
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	if err = ip.Validate(); err != nil {
		return
	}
	st, _ = ip.SchemeType()
	it, _ = ip.IntegratorType()
	p := ip.BurgersParams
	c = &Burgers1D{
		ip:     ip,
		Exact:  NewExact(p[0], p[1], p[2], p[3], ip.Tolerance),
		logger: logger.WithFields(l.StringField(l.ClsKey, "Burgers1D")),
	}
	switch ip.Flux {
	case "advection":
		c.Flux = flux.Advection{A: ip.AdvectionSpeed}
	default:
		c.Flux = flux.Burgers{}
	}
	if c.Scheme, err = NewScheme(SchemeConfig{
		Type:           st,
		Method:         it,
		N:              ip.PolynomialOrder,
		QuadOrder:      ip.QuadratureOrder,
		TVBM:           ip.TVBM,
		CFL:            ip.CFL,
		ParallelDegree: ip.ParallelDegree,
	}, c.Flux); err != nil {
		return nil, err
	}
	return
}

// Solution is the reference solution at (x, t), the Newton solution for
// Burgers and the translated initial condition for linear advection
func (c *Burgers1D) Solution(t float64) func(x float64) float64 {
	if adv, ok := c.Flux.(flux.Advection); ok {
		return func(x float64) float64 { return c.Exact.Init(x - adv.A*t) }
	}
	return func(x float64) float64 { return c.Exact.Eval(x, t) }
}

func (c *Burgers1D) checkTime(t float64) (err error) {
	if _, ok := c.Flux.(flux.Burgers); !ok {
		return
	}
	_, err = c.Exact.EvalChecked(c.ip.XMin, t)
	return
}

// Solve marches the initial condition on K cells to time tend
func (c *Burgers1D) Solve(K int, tend float64) (u utils.Vector, m *geometry1D.Mesh1D, err error) {
	var (
		s = c.Scheme
	)
	m = geometry1D.NewPeriodicMesh1D(c.ip.XMin, c.ip.XMax, K)
	it := solver.NewIntegrator[utils.Vector, *geometry1D.Mesh1D](s.Op, s.Method)
	if c.ip.MaxIterations > 0 {
		it.MaxIterations = c.ip.MaxIterations
	}
	u, err = it.Run(s.Initialize(c.Exact.Init, m), m, 0, tend)
	return
}

// OrderTest solves on every resolution and collects the errors at FinalTime
func (c *Burgers1D) OrderTest() (cs *convergence.Study, err error) {
	var (
		tend  = c.ip.FinalTime
		exact = c.Solution(tend)
		u     utils.Vector
		m     *geometry1D.Mesh1D
		e     convergence.Norms
	)
	if err = c.checkTime(tend); err != nil {
		return
	}
	cs = convergence.NewStudy(c.Scheme.String(), c.ip.PolynomialOrder)
	for _, K := range c.ip.Resolutions {
		start := time.Now()
		if u, m, err = c.Solve(K, tend); err != nil {
			c.logger.WithFields(l.StringField("scheme", c.Scheme.String()), l.IntField("n", K),
				l.ErrorField(err)).Error("solve failed")
			return
		}
		if e, err = c.Scheme.Errors(u, exact, m); err != nil {
			return
		}
		c.logger.WithFields(l.StringField("scheme", c.Scheme.String()), l.IntField("n", K),
			l.StringField("l2", fmt.Sprintf("%.3e", e.L2)),
			l.StringField("elapsed", time.Since(start).String())).Info("resolution done")
		cs.Add(K, e)
	}
	return
}

// PlotTest solves on every plot resolution and writes x, exact and computed
// columns to one file per resolution in dir
func (c *Burgers1D) PlotTest(dir string) (files []string, err error) {
	var (
		tend  = c.ip.PlotTime
		exact = c.Solution(tend)
		delim = c.ip.DelimiterRune()
	)
	for i, K := range c.ip.PlotResolutions {
		u, m, err := c.Solve(K, tend)
		if err != nil {
			return files, err
		}
		computed := c.Scheme.Sample(u)
		reference := c.Scheme.Reference(exact, m)
		fileName := filepath.Join(dir, fmt.Sprintf("plot_%d.csv", i+1))
		if err = convergence.ExportFile(fileName, delim, m.X, reference, computed); err != nil {
			return files, err
		}
		c.logger.WithFields(l.StringField("file", fileName), l.IntField("n", K)).Info("exported")
		files = append(files, fileName)
	}
	return
}

// Run performs the order test, prints the table to w and, when configured,
// writes the report and plot files
func (c *Burgers1D) Run(w io.Writer) (cs *convergence.Study, err error) {
	if cs, err = c.OrderTest(); err != nil {
		return
	}
	if err = cs.WriteTable(w, ' '); err != nil {
		return
	}
	if err = cs.WriteTableFile(c.ip.ReportFile, c.ip.DelimiterRune()); err != nil {
		return
	}
	if len(c.ip.ExportDir) != 0 {
		if _, err = c.PlotTest(c.ip.ExportDir); err != nil {
			return
		}
	}
	return
}

// IsRecoverable reports errors after which a batch of runs can continue
func IsRecoverable(err error) bool {
	return errors.Is(err, solver.ErrIterationExceeded) || errors.Is(err, ErrPastBreaking)
}
