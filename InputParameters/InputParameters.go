package InputParameters

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/ghodss/yaml"

	"github.com/notargets/fluxlab/types"
)

var ErrInvalidInput = errors.New("invalid input")

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title           string    `yaml:"Title"`
	Scheme          string    `yaml:"Scheme"`
	Integrator      string    `yaml:"Integrator"` // Empty selects the scheme's default
	Flux            string    `yaml:"Flux"`       // burgers or advection
	AdvectionSpeed  float64   `yaml:"AdvectionSpeed"`
	PolynomialOrder int       `yaml:"PolynomialOrder"`
	QuadratureOrder int       `yaml:"QuadratureOrder"`
	Limiter         string    `yaml:"Limiter"` // TVB turns a dg scheme into dg-tvb
	TVBM            float64   `yaml:"TVBM"`
	CFL             float64   `yaml:"CFL"` // Scales the scheme's time step, 0 keeps it
	XMin            float64   `yaml:"XMin"`
	XMax            float64   `yaml:"XMax"`
	FinalTime       float64   `yaml:"FinalTime"`
	PlotTime        float64   `yaml:"PlotTime"`
	Resolutions     []int     `yaml:"Resolutions"`
	PlotResolutions []int     `yaml:"PlotResolutions"`
	MaxIterations   int       `yaml:"MaxIterations"`
	ParallelDegree  int       `yaml:"ParallelDegree"`
	BurgersParams   []float64 `yaml:"BurgersParams"` // a, b, c, d of u0 = a + b·sin(c·x + d)
	Tolerance       float64   `yaml:"Tolerance"`
	Delimiter       string    `yaml:"Delimiter"`
	ReportFile      string    `yaml:"ReportFile"`
	ExportDir       string    `yaml:"ExportDir"`
}

// NewInputParameters1D returns the Burgers order test on [-π, π]
func NewInputParameters1D() *InputParameters1D {
	return &InputParameters1D{
		Title:           "Burgers order test",
		Scheme:          "dg",
		Flux:            "burgers",
		AdvectionSpeed:  1,
		PolynomialOrder: 2,
		QuadratureOrder: 7,
		TVBM:            1,
		XMin:            -math.Pi,
		XMax:            math.Pi,
		FinalTime:       0.5,
		PlotTime:        1.5,
		Resolutions:     []int{10, 20, 40, 80, 160, 320, 640},
		PlotResolutions: []int{20, 80},
		BurgersParams:   []float64{0.5, 1, 1, 0},
		Tolerance:       1.e-10,
		Delimiter:       " ",
	}
}

// Parse overlays the YAML data on the receiver, keys missing from the data
// keep their current values
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// SchemeType resolves the scheme name, folding in the limiter selection
func (ip *InputParameters1D) SchemeType() (st types.SchemeType, err error) {
	if st, err = types.NewSchemeType(ip.Scheme); err != nil {
		return
	}
	if st == types.Scheme_DG && (ip.Limiter == "TVB" || ip.Limiter == "tvb") {
		st = types.Scheme_DG_TVB
	}
	return
}

// IntegratorType resolves the integrator name, empty selects the scheme default
func (ip *InputParameters1D) IntegratorType() (it types.IntegratorType, err error) {
	var (
		st types.SchemeType
	)
	if st, err = ip.SchemeType(); err != nil {
		return
	}
	if len(ip.Integrator) == 0 {
		return st.DefaultIntegrator(), nil
	}
	return types.NewIntegratorType(ip.Integrator)
}

// DelimiterRune is the first character of Delimiter, a space when empty
func (ip *InputParameters1D) DelimiterRune() rune {
	if len(ip.Delimiter) == 0 {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(ip.Delimiter)
	return r
}

func (ip *InputParameters1D) Validate() (err error) {
	var (
		st types.SchemeType
		it types.IntegratorType
	)
	if it, err = ip.IntegratorType(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	st, _ = ip.SchemeType()
	switch {
	case st == types.Scheme_DG_TVB && it != types.Integrator_SSPRK3:
		// The limiter runs between Runge-Kutta stages
		err = fmt.Errorf("%v needs the %v integrator, have %v", st, types.Integrator_SSPRK3, it)
	case len(ip.Resolutions) < 2:
		err = fmt.Errorf("an order study needs at least 2 resolutions, have %d", len(ip.Resolutions))
	case ip.Flux != "burgers" && ip.Flux != "advection":
		err = fmt.Errorf("unknown flux %q", ip.Flux)
	case ip.PolynomialOrder < 0 || ip.PolynomialOrder > 6:
		err = fmt.Errorf("polynomial order %d out of range [0,6]", ip.PolynomialOrder)
	case ip.QuadratureOrder < 1:
		err = fmt.Errorf("quadrature order %d must be positive", ip.QuadratureOrder)
	case !(ip.XMax > ip.XMin):
		err = fmt.Errorf("empty domain [%v, %v]", ip.XMin, ip.XMax)
	case ip.FinalTime < 0:
		err = fmt.Errorf("negative final time %v", ip.FinalTime)
	case len(ip.BurgersParams) != 4:
		err = fmt.Errorf("need 4 Burgers parameters, have %d", len(ip.BurgersParams))
	case ip.TVBM < 0:
		err = fmt.Errorf("negative TVB constant %v", ip.TVBM)
	}
	if err == nil {
		for _, n := range append(append([]int{}, ip.Resolutions...), ip.PlotResolutions...) {
			if n < 1 {
				err = fmt.Errorf("resolution %d must be positive", n)
				break
			}
		}
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Scheme\n", ip.Scheme)
	if len(ip.Integrator) != 0 {
		fmt.Printf("[%s]\t\t\t= Integrator\n", ip.Integrator)
	}
	fmt.Printf("[%s]\t\t\t= Flux\n", ip.Flux)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Quadrature Order\n", ip.QuadratureOrder)
	if len(ip.Limiter) != 0 {
		fmt.Printf("[%s]\t\t\t= Limiter\n", ip.Limiter)
	}
	fmt.Printf("%8.5f\t\t= TVB M\n", ip.TVBM)
	fmt.Printf("[%8.5f,%8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%v\t= Resolutions\n", ip.Resolutions)
	if ip.CFL != 0 {
		fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	}
}
